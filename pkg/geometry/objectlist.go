package geometry

import (
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// ObjectList owns a sequence of hittables plus a cached merged bounding box,
// rebuilt incrementally as objects are added
type ObjectList struct {
	Objects []Hittable

	bbox core.AABB
}

// NewObjectList creates an empty object list
func NewObjectList(objects ...Hittable) *ObjectList {
	list := &ObjectList{bbox: core.EmptyAABB}
	for _, obj := range objects {
		list.Add(obj)
	}
	return list
}

// Add appends an object and merges its bounds into the cached box
func (ol *ObjectList) Add(obj Hittable) {
	ol.Objects = append(ol.Objects, obj)
	ol.bbox = ol.bbox.Merge(obj.BoundingBox())
}

// Len returns the number of objects in the list
func (ol *ObjectList) Len() int {
	return len(ol.Objects)
}

// Condense replaces the list contents with a single BVH node over them.
// Must be called after all insertions and before the first ray is traced.
func (ol *ObjectList) Condense() {
	node := NewBVHNode(ol.Objects)
	ol.Objects = []Hittable{node}
	ol.bbox = node.BoundingBox()
}

// Hit tests the ray against every object, keeping the nearest hit
func (ol *ObjectList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, obj := range ol.Objects {
		if hit, isHit := obj.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the cached merged bounds of all objects
func (ol *ObjectList) BoundingBox() core.AABB {
	return ol.bbox
}

// PDFValue averages the densities of the contained lights. Every object in
// the list must implement Light.
func (ol *ObjectList) PDFValue(origin, direction core.Vec3) float64 {
	if len(ol.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(ol.Objects))
	sum := 0.0
	for _, obj := range ol.Objects {
		sum += weight * obj.(Light).PDFValue(origin, direction)
	}
	return sum
}

// Random picks a uniform random contained light and samples it
func (ol *ObjectList) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	obj := ol.Objects[rng.Intn(len(ol.Objects))]
	return obj.(Light).Random(origin, rng)
}
