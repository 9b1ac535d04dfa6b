package scene

import (
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
	"pathtracer/pkg/renderer"
)

// NewBallsScene creates a field of random small spheres around three large
// ones, under a sky background, with thin-lens defocus
func NewBallsScene() *Scene {
	config := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      1200,
		SamplesPerPixel: 500,
		MaxDepth:        50,
		VFov:            20.0,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
	}
	s := NewScene(config)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	rng := rand.New(rand.NewSource(7))
	randomColor := func(min, max float64) core.Vec3 {
		r := func() float64 { return min + (max-min)*rng.Float64() }
		return core.NewVec3(r(), r(), r())
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch chooseMat := rng.Float64(); {
			case chooseMat < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				mat = material.NewMetal(randomColor(0.5, 1.0), 0.5*rng.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
