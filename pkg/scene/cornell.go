package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
	"pathtracer/pkg/renderer"
)

// NewCornellBoxScene creates the classic Cornell box: five walls, a ceiling
// area light, and two rotated boxes
func NewCornellBoxScene() *Scene {
	config := renderer.CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      600,
		SamplesPerPixel: 200,
		MaxDepth:        50,
		VFov:            40.0,
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDistance:   10.0,
		Background:      core.NewVec3(0, 0, 0),
	}
	s := NewScene(config)

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	s.Add(geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	s.Add(geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	// Ceiling light faces down into the box
	s.AddLight(geometry.NewQuad(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		light,
	))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)))

	return s
}
