package geometry

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Quad represents a bounded planar patch defined by a corner and two edge
// vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Material material.Material

	normal core.Vec3 // Unit plane normal (U × V normalized)
	d      float64   // Plane offset constant: normal · corner
	w      core.Vec3 // n/(n·n), cached for the (α,β) interior test
	area   float64   // |U × V|
	bbox   core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	bbox := core.NewAABBFromPoints(corner, corner.Add(u).Add(v)).
		Merge(core.NewAABBFromPoints(corner.Add(u), corner.Add(v)))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Multiply(1.0 / n.Dot(n)),
		area:     n.Length(),
		bbox:     bbox,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denom := q.normal.Dot(ray.Direction)

	// Parallel to the plane
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if !rayT.Contains(t) {
		return nil, false
	}

	// Interior test in the quad's local (α,β) basis
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue returns the solid-angle density of sampling the given direction
// from origin toward the quad
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	hit, isHit := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return 0
	}

	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.normal) / direction.Length())

	return distSquared / (cosine * q.area)
}

// Random returns a direction from origin toward a uniform random point on
// the quad's surface
func (q *Quad) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	p := q.Corner.
		Add(q.U.Multiply(rng.Float64())).
		Add(q.V.Multiply(rng.Float64()))
	return p.Subtract(origin)
}
