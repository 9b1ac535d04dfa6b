package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
	"pathtracer/pkg/renderer"
)

// NewSimpleLightScene creates two lambertian spheres lit by a single quad
// area light against a black background
func NewSimpleLightScene() *Scene {
	config := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20.0,
		LookFrom:        core.NewVec3(26, 3, 6),
		LookAt:          core.NewVec3(0, 2, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDistance:   10.0,
		Background:      core.NewVec3(0, 0, 0),
	}
	s := NewScene(config)

	gray := material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, gray))
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, gray))

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.AddLight(geometry.NewQuad(
		core.NewVec3(3, 1, -2),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		light,
	))

	return s
}
