package geometry

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material

	bbox core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic with b = -2h: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest root within the accepted range, falling back to the far root
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the inverse solid angle the sphere subtends at origin.
// Only valid for origins outside the sphere.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, isHit := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1))); !isHit {
		return 0
	}

	distSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)

	return 1.0 / solidAngle
}

// Random returns a direction from origin toward a random point on the
// sphere, sampled uniformly within the subtended cone
func (s *Sphere) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	uvw := core.NewONB(toCenter)
	return uvw.Transform(core.RandomToSphere(s.Radius, toCenter.LengthSquared(), rng))
}
