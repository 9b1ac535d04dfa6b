package geometry

import (
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Triangle represents a flat-shaded triangle defined by three vertices.
// The vertices must not be collinear.
type Triangle struct {
	A, B, C  core.Vec3
	Material material.Material

	bbox core.AABB
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c core.Vec3, mat material.Material) *Triangle {
	bbox := core.NewAABBFromPoints(a, b).Merge(core.NewAABBFromPoints(a, c))
	return &Triangle{A: a, B: b, C: c, Material: mat, bbox: bbox}
}

// Hit tests if a ray intersects with the triangle using Möller–Trumbore
func (tr *Triangle) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	e1 := tr.B.Subtract(tr.A)
	e2 := tr.C.Subtract(tr.A)

	rayCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(rayCrossE2)

	// Near-parallel rays never hit
	if math.Abs(det) < 1e-8 {
		return nil, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(tr.A)
	u := invDet * s.Dot(rayCrossE2)
	if u < 0 || u > 1 {
		return nil, false
	}

	sCrossE1 := s.Cross(e1)
	v := invDet * ray.Direction.Dot(sCrossE1)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := invDet * e2.Dot(sCrossE1)
	if !rayT.Contains(t) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: tr.Material,
	}
	// Flat geometric normal, not interpolated
	hit.SetFaceNormal(ray, e1.Cross(e2).Normalize())

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}
