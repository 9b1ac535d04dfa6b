package geometry

import (
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Hittable is the intersection protocol shared by every primitive kind:
// Sphere, Triangle, Quad, Translate, RotateY, BVHNode and ObjectList.
// The set is closed; operations dispatch over exactly these implementors.
type Hittable interface {
	// Hit tests the ray against the object within the parameter interval
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)

	// BoundingBox returns the precomputed world-space bounds
	BoundingBox() core.AABB
}

// Light extends Hittable for shapes that can be importance-sampled toward,
// such as area lights. Implemented by Sphere, Quad and ObjectList.
type Light interface {
	Hittable

	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin toward this shape
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward a random point on
	// this shape
	Random(origin core.Vec3, rng *rand.Rand) core.Vec3
}
