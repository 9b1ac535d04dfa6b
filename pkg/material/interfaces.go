package material

import (
	"math/rand"

	"pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter returns how the surface redirects an incoming ray, or false
	// when the ray is absorbed (the path ends after emission only)
	Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool)

	// ScatteringPDF returns the material's own sampling density for a
	// scattered direction (cos(θ)/π for Lambertian). Zero for materials
	// whose scatter bypasses importance sampling.
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray, hit *HitRecord) core.Vec3
}

// ScatterRecord contains the result of material scattering. Specular and
// refractive materials pick their outgoing ray deterministically (given
// randomness already consumed inside Scatter) and set SkipPDF so the
// integrator follows SkipPDFRay without importance-sampling machinery.
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	PDF         core.PDF  // How a secondary direction is chosen
	SkipPDF     bool      // Direction is pre-determined
	SkipPDFRay  core.Ray  // The pre-determined scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, flipped to oppose the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must point away from the surface; it need not be unit length
// for the orientation test, but callers pass unit normals for shading.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
