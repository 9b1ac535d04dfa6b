package geometry

import (
	"math/rand"

	"pathtracer/pkg/core"
)

// HittablePDF samples directions from a fixed origin toward a target shape,
// typically a known light or a list of lights
type HittablePDF struct {
	target Light
	origin core.Vec3
}

// NewHittablePDF creates a PDF directed at the given target from origin
func NewHittablePDF(target Light, origin core.Vec3) HittablePDF {
	return HittablePDF{target: target, origin: origin}
}

// Value returns the target's solid-angle density for the direction
func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate returns a direction toward a random point on the target
func (p HittablePDF) Generate(rng *rand.Rand) core.Vec3 {
	return p.target.Random(p.origin, rng)
}
