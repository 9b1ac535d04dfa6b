package material

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Directions are importance-sampled with a cosine-weighted PDF about the
// surface normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Albedo,
		PDF:         core.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns the cosine density cos(θ)/π for the scattered ray
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
