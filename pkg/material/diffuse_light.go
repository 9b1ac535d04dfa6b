package material

import (
	"math/rand"

	"pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. Lights are one-sided:
// only the front face emits.
type DiffuseLight struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewDiffuseLight creates a new diffuse light material
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface; lights absorb all incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is zero: lights never scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emit returns the emission color on the front face, zero on the back
func (dl *DiffuseLight) Emit(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return dl.Emission
}
