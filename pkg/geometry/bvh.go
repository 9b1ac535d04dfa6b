package geometry

import (
	"sort"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// BVHNode is a node in a bounding volume hierarchy: a binary tree over
// primitives built by recursive median split on the longest axis of the
// merged bounds. Balanced by count, not by volume; adversarial inputs can
// degrade toward O(n) depth, which is accepted (no surface-area heuristic).
type BVHNode struct {
	left  Hittable
	right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a BVH over the given objects. The list must be
// non-empty; an empty list is a fatal construction error.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: object list for BVH must be non-empty")
	}

	// Sorting below reorders the slice; keep the caller's intact
	objects = append([]Hittable(nil), objects...)
	return buildBVH(objects)
}

func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, obj := range objects {
		bbox = bbox.Merge(obj.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}
	switch len(objects) {
	case 1:
		// Both children alias the single leaf; harmless shared
		// reference to an immutable object
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		axis := bbox.LongestAxis()
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].BoundingBox().AxisInterval(axis).Min <
				objects[j].BoundingBox().AxisInterval(axis).Min
		})
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid])
		node.right = buildBVH(objects[mid:])
	}
	return node
}

// Hit tests the ray against the node's box, then both children, tightening
// the search interval with the left child's hit so the right traversal can
// prune anything farther than the best hit found so far
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, rayT)
	if hitLeft {
		rayT.Max = leftHit.T
	}

	if rightHit, hitRight := n.right.Hit(ray, rayT); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the precomputed merged bounds
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
