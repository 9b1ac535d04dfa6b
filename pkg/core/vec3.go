package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector. It doubles as a point and as a linear RGB
// color; points are never normalized.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. The result is
// non-finite for a zero vector; callers must guarantee non-degenerate input.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// NearZero returns true if the vector is close to zero in all dimensions
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// Axis returns the component for the given axis (0=X, 1=Y, 2=Z)
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// IsFinite returns true if all components are finite numbers
func (v Vec3) IsFinite() bool {
	finite := func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// Reflect returns the reflection of the vector off a surface with normal n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract returns the refraction of the (unit) vector through a surface with
// normal n using Snell's law with the given refraction ratio
func (v Vec3) Refract(n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(rng *rand.Rand) Vec3 {
	z := 1.0 - 2.0*rng.Float64()
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * rng.Float64()
	return Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// RandomCosineDirection generates a cosine-weighted direction about +Z,
// for use with an orthonormal basis
func RandomCosineDirection(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	phi := 2.0 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)
	return Vec3{
		X: math.Cos(phi) * sqrtR2,
		Y: math.Sin(phi) * sqrtR2,
		Z: math.Sqrt(1.0 - r2),
	}
}

// RandomInUnitDisk generates a random point in the unit disk (for defocus)
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomToSphere generates a direction inside the cone subtended by a sphere
// of the given radius at squared distance distSquared, in basis-local
// coordinates with +Z toward the sphere center
func RandomToSphere(radius, distSquared float64, rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1.0 + r2*(math.Sqrt(1.0-radius*radius/distSquared)-1.0)

	phi := 2.0 * math.Pi * r1
	sinTheta := math.Sqrt(1.0 - z*z)
	return Vec3{
		X: math.Cos(phi) * sinTheta,
		Y: math.Sin(phi) * sinTheta,
		Z: z,
	}
}
