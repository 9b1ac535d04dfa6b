package scene

import (
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/renderer"
)

// condenseThreshold is the world size above which Render builds a BVH.
// Smaller worlds stay as a linear list; the tree overhead is not worth it.
const condenseThreshold = 10

// Scene bundles the world geometry, the list of known lights used for
// importance sampling, and the camera configuration. Assemble it fully
// before rendering: inserting primitives concurrently with rendering is
// undefined.
type Scene struct {
	World  *geometry.ObjectList
	Lights *geometry.ObjectList
	Camera renderer.CameraConfig
}

// NewScene creates an empty scene with the given camera configuration
func NewScene(camera renderer.CameraConfig) *Scene {
	return &Scene{
		World:  geometry.NewObjectList(),
		Lights: geometry.NewObjectList(),
		Camera: camera,
	}
}

// Add inserts a primitive into the world
func (s *Scene) Add(obj geometry.Hittable) {
	s.World.Add(obj)
}

// AddLight inserts a shape into the world and registers it as a sampling
// target for the integrator
func (s *Scene) AddLight(light geometry.Light) {
	s.World.Add(light)
	s.Lights.Add(light)
}

// Condense builds the BVH over the world. Call once, after all insertions.
func (s *Scene) Condense() {
	s.World.Condense()
}

// Render condenses large worlds and traces the image, returning the RGB
// pixel buffer
func (s *Scene) Render(opts ...renderer.Option) []byte {
	if s.World.Len() > condenseThreshold {
		s.Condense()
	}
	var lights geometry.Light
	if s.Lights.Len() > 0 {
		lights = s.Lights
	}
	camera := renderer.NewCamera(s.Camera)
	return renderer.NewRenderer(camera, opts...).Render(s.World, lights)
}
