package material

import (
	"math/rand"

	"pathtracer/pkg/core"
)

// Dummy is a no-op material that absorbs every ray and emits nothing.
// Useful as a placeholder on helper geometry that is never shaded directly,
// such as light-list stand-ins used only for importance sampling.
type Dummy struct{}

// Scatter never scatters
func (Dummy) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is zero
func (Dummy) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}
