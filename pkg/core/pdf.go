package core

import (
	"math"
	"math/rand"
)

// PDF is a sampling strategy over direction space: Value reports the
// probability density of a given direction, Generate draws one.
type PDF interface {
	Value(direction Vec3) float64
	Generate(rng *rand.Rand) Vec3
}

// SpherePDF is uniform over the full sphere of directions. It serves as a
// neutral default for deterministic scatter events whose density is never
// consulted for weighting.
type SpherePDF struct{}

// Value returns the uniform density 1/(4π)
func (SpherePDF) Value(direction Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform random direction
func (SpherePDF) Generate(rng *rand.Rand) Vec3 {
	return RandomUnitVector(rng)
}

// CosinePDF is cosine-weighted over the hemisphere about a surface normal
type CosinePDF struct {
	basis ONB
}

// NewCosinePDF creates a cosine-weighted PDF about the normal w
func NewCosinePDF(w Vec3) CosinePDF {
	return CosinePDF{basis: NewONB(w)}
}

// Value returns cos(θ)/π relative to the stored basis, floored at zero
func (p CosinePDF) Value(direction Vec3) float64 {
	cosineTheta := direction.Normalize().Dot(p.basis.W)
	return math.Max(0, cosineTheta/math.Pi)
}

// Generate draws a cosine-weighted hemisphere direction in the stored basis
func (p CosinePDF) Generate(rng *rand.Rand) Vec3 {
	return p.basis.Transform(RandomCosineDirection(rng))
}

// MixturePDF combines two strategies with fixed equal weight. The 50/50
// split is a variance-reduction heuristic; any positive-density mixture
// keeps the estimator unbiased.
type MixturePDF struct {
	a, b PDF
}

// NewMixturePDF creates an equal-weight mixture of two PDFs
func NewMixturePDF(a, b PDF) MixturePDF {
	return MixturePDF{a: a, b: b}
}

// Value returns the unweighted average of both child densities
func (p MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.a.Value(direction) + 0.5*p.b.Value(direction)
}

// Generate flips a fair coin to decide which child draws the direction
func (p MixturePDF) Generate(rng *rand.Rand) Vec3 {
	if rng.Float64() < 0.5 {
		return p.a.Generate(rng)
	}
	return p.b.Generate(rng)
}
