package material

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Schlick's approximation decides probabilistically between reflection and
// refraction unless total internal reflection already forces reflection.
// The outgoing ray is pre-determined, so the scatter bypasses importance
// sampling.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	// Refractive index inverts when the ray is exiting the surface
	ri := d.RefractiveIndex
	if hit.FrontFace {
		ri = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, ri) > rng.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ri)
	}

	return ScatterRecord{
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
		PDF:         core.SpherePDF{},
		SkipPDF:     true,
		SkipPDFRay:  core.NewRay(hit.Point, direction),
	}, true
}

// ScatteringPDF is zero: dielectric scattering is deterministic
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflectance calculates the Fresnel reflectance using Schlick's approximation
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
