package geometry

import (
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Translate wraps an object shifted by a fixed offset. Rays are moved into
// the child's local frame before delegating; hit points move back out.
type Translate struct {
	object Hittable
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslate creates a translated instance of the given object
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		object: object,
		offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit delegates to the child in its local frame
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	localRay := core.NewRay(ray.Origin.Subtract(t.offset), ray.Direction)

	hit, isHit := t.object.Hit(localRay, rayT)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.offset)
	return hit, true
}

// BoundingBox returns the offset bounds, precomputed at construction
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY wraps an object rotated by a fixed angle about the Y axis
type RotateY struct {
	object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY creates an instance of the given object rotated by angle
// degrees about the Y axis
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180.0
	r := &RotateY{
		object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Rotate all 8 corners of the child's box and bound them
	childBox := object.BoundingBox()
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, x := range [2]float64{childBox.X.Min, childBox.X.Max} {
		for _, y := range [2]float64{childBox.Y.Min, childBox.Y.Max} {
			for _, z := range [2]float64{childBox.Z.Min, childBox.Z.Max} {
				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(min, max)

	return r
}

// worldToObject rotates a vector by -θ about Y
func (r *RotateY) worldToObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// objectToWorld rotates a vector by +θ about Y
func (r *RotateY) objectToWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into the child's frame, delegates, and rotates the
// resulting point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	localRay := core.NewRay(r.worldToObject(ray.Origin), r.worldToObject(ray.Direction))

	hit, isHit := r.object.Hit(localRay, rayT)
	if !isHit {
		return nil, false
	}

	hit.Point = r.objectToWorld(hit.Point)
	hit.Normal = r.objectToWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the rotated bounds, precomputed at construction
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
