package integrator

import (
	"fmt"
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// PathTracer implements the recursive Monte-Carlo light transport
// estimator, combining emitted and scattered radiance with mixture
// importance sampling toward known lights
type PathTracer struct {
	Background core.Vec3 // Radiance returned on scene miss
}

// NewPathTracer creates a path tracer with the given background color
func NewPathTracer(background core.Vec3) *PathTracer {
	return &PathTracer{Background: background}
}

// RayColor computes the radiance carried back along a ray. Recursion is
// bounded only by depth; there is no Russian-roulette termination.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hittable, lights geometry.Light, depth int, rng *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return pt.Background
	}

	emitted := emittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, rng)
	if !didScatter {
		return emitted
	}

	// Deterministic scattering is its own importance sample with
	// implicit weight 1: no PDF division
	if scatter.SkipPDF {
		incoming := pt.RayColor(scatter.SkipPDFRay, world, lights, depth-1, rng)
		return assertFinite(emitted.Add(scatter.Attenuation.MultiplyVec(incoming)))
	}

	// Mix light-directed sampling with the material's own strategy.
	// Without known lights the material PDF stands alone.
	samplePDF := scatter.PDF
	if lights != nil {
		lightPDF := geometry.NewHittablePDF(lights, hit.Point)
		samplePDF = core.NewMixturePDF(lightPDF, scatter.PDF)
	}

	scattered := core.NewRay(hit.Point, samplePDF.Generate(rng))
	pdfValue := samplePDF.Value(scattered.Direction)
	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)

	incoming := pt.RayColor(scattered, world, lights, depth-1, rng)
	scatteredColor := scatter.Attenuation.
		Multiply(scatteringPDF / pdfValue).
		MultiplyVec(incoming)

	return assertFinite(emitted.Add(scatteredColor))
}

// emittedLight returns the emission from the hit material, if any
func emittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, hit)
	}
	return core.Vec3{}
}

// assertFinite surfaces NaN/Infinity radiance as a model error instead of
// silently clamping it; non-finite values indicate a PDF or density bug
func assertFinite(c core.Vec3) core.Vec3 {
	if !c.IsFinite() {
		panic(fmt.Sprintf("integrator: non-finite radiance %+v", c))
	}
	return c
}
