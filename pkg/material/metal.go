package material

import (
	"math/rand"

	"pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo    core.Vec3 // Metal color
	Fuzziness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with fuzziness clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzziness float64) *Metal {
	if fuzziness > 1.0 {
		fuzziness = 1.0
	}
	if fuzziness < 0.0 {
		fuzziness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzziness: fuzziness}
}

// Scatter implements the Material interface for metal scattering. The
// reflected direction is perturbed by fuzziness; a perturbed ray pointing
// into the surface is absorbed. The direction is pre-determined, so the
// scatter bypasses importance sampling; the sphere PDF is bookkeeping only.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzziness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(rng).Multiply(m.Fuzziness))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		PDF:         core.SpherePDF{},
		SkipPDF:     true,
		SkipPDFRay:  core.NewRay(hit.Point, reflected),
	}, true
}

// ScatteringPDF is zero: metal scattering is deterministic
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}
