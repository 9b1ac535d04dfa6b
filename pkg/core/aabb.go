package core

// AABB represents an axis-aligned bounding box as three coordinate intervals
type AABB struct {
	X, Y, Z Interval
}

// minAxisSize is the minimum thickness of any AABB axis. Exactly-zero-size
// boxes (flat primitives like axis-aligned quads) can reject in-plane rays
// under floating point, so thinner axes are padded up to this size.
const minAxisSize = 1e-4

// EmptyAABB bounds nothing; it is the identity for Merge
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from axis intervals, padding degenerate axes
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB bounding two arbitrary points, ordering
// each axis independently
func NewAABBFromPoints(a, b Vec3) AABB {
	mk := func(a, b float64) Interval {
		if a <= b {
			return Interval{Min: a, Max: b}
		}
		return Interval{Min: b, Max: a}
	}
	return NewAABB(mk(a.X, b.X), mk(a.Y, b.Y), mk(a.Z, b.Z))
}

func (box AABB) padToMinimums() AABB {
	if box.X.Size() < minAxisSize {
		box.X = box.X.Expand(minAxisSize)
	}
	if box.Y.Size() < minAxisSize {
		box.Y = box.Y.Expand(minAxisSize)
	}
	if box.Z.Size() < minAxisSize {
		box.Z = box.Z.Expand(minAxisSize)
	}
	return box
}

// AxisInterval returns the interval for the given axis (0=X, 1=Y, 2=Z)
func (box AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return box.X
	case 1:
		return box.Y
	default:
		return box.Z
	}
}

// Hit tests the ray against the box with the slab method, narrowing rayT
// axis by axis and rejecting as soon as the interval empties. The reciprocal
// of each direction component is taken once; negative directions are handled
// by ordering the two candidate roots, not by branching on sign.
func (box AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := box.AxisInterval(axis)
		adInv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * adInv
		t1 := (ax.Max - origin) * adInv
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Merge returns the smallest box containing both inputs
func (box AABB) Merge(other AABB) AABB {
	return AABB{
		X: box.X.Merge(other.X),
		Y: box.Y.Merge(other.Y),
		Z: box.Z.Merge(other.Z),
	}
}

// Offset returns the box translated by the given offset
func (box AABB) Offset(offset Vec3) AABB {
	return AABB{
		X: box.X.Offset(offset.X),
		Y: box.Y.Offset(offset.Y),
		Z: box.Z.Offset(offset.Z),
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) of maximum extent.
// Ties go to the first maximum in x,y,z order.
func (box AABB) LongestAxis() int {
	axis := 0
	size := box.X.Size()
	if box.Y.Size() > size {
		axis = 1
		size = box.Y.Size()
	}
	if box.Z.Size() > size {
		axis = 2
	}
	return axis
}
