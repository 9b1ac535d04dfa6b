package geometry

import (
	"math"
	"testing"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Dummy{})
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))

	// A ray at the original position now misses
	if hit, isHit := moved.Hit(core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)), testRayT); isHit {
		t.Errorf("Expected miss at original position, got t=%f", hit.T)
	}

	// A ray at the translated position hits, with the hit point in world space
	hit, isHit := moved.Hit(core.NewRay(core.NewVec3(5, 0, 3), core.NewVec3(0, 0, -1)), testRayT)
	if !isHit {
		t.Fatal("Expected hit at translated position")
	}
	want := core.NewVec3(5, 0, 1)
	if diff := hit.Point.Subtract(want); diff.Length() > 1e-9 {
		t.Errorf("Hit point = %v, want %v", hit.Point, want)
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Dummy{})
	moved := NewTranslate(sphere, core.NewVec3(5, -2, 3))
	box := moved.BoundingBox()

	if box.X.Min != 4 || box.X.Max != 6 {
		t.Errorf("X interval [%v, %v], want [4, 6]", box.X.Min, box.X.Max)
	}
	if box.Y.Min != -3 || box.Y.Max != -1 {
		t.Errorf("Y interval [%v, %v], want [-3, -1]", box.Y.Min, box.Y.Max)
	}
	if box.Z.Min != 2 || box.Z.Max != 4 {
		t.Errorf("Z interval [%v, %v], want [2, 4]", box.Z.Min, box.Z.Max)
	}
}

func TestRotateY_Hit(t *testing.T) {
	// Sphere at +x, rotated 90 degrees about Y: +x maps to -z
	sphere := NewSphere(core.NewVec3(4, 0, 0), 1.0, material.Dummy{})
	rotated := NewRotateY(sphere, 90)

	hit, isHit := rotated.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), testRayT)
	if !isHit {
		t.Fatal("Expected hit along -z after rotation")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("t = %v, want 3", hit.T)
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if diff := hit.Normal.Subtract(wantNormal); diff.Length() > 1e-9 {
		t.Errorf("Normal = %v, want %v", hit.Normal, wantNormal)
	}

	// The original +x position is now empty
	if hit, isHit := rotated.Hit(core.NewRay(core.NewVec3(8, 0, 0), core.NewVec3(-1, 0, 0)), testRayT); isHit {
		t.Errorf("Expected miss at unrotated position, got t=%f", hit.T)
	}
}

func TestRotateY_BoundingBox(t *testing.T) {
	// Box spanning [0,2] in x and [0,1] in z, rotated 90 degrees:
	// x extent becomes z extent and vice versa
	quadBox := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 1), material.Dummy{})
	rotated := NewRotateY(quadBox, 90)
	box := rotated.BoundingBox()

	if math.Abs(box.X.Size()-1.0) > 1e-6 {
		t.Errorf("Rotated X size = %v, want 1", box.X.Size())
	}
	if math.Abs(box.Z.Size()-2.0) > 1e-6 {
		t.Errorf("Rotated Z size = %v, want 2", box.Z.Size())
	}
	if math.Abs(box.Y.Size()-1.0) > 1e-6 {
		t.Errorf("Y size = %v, want 1 (unchanged)", box.Y.Size())
	}
}

func TestRotateY_ComposedWithTranslate(t *testing.T) {
	// The Cornell box arrangement: rotate about the origin, then offset
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), material.Dummy{})
	placed := NewTranslate(NewRotateY(box, 90), core.NewVec3(10, 0, 0))

	// After a 90 degree rotation the unit box occupies x in [0,1], z in [-1,0];
	// translated, its center sits at (10.5, 0.5, -0.5)
	hit, isHit := placed.Hit(core.NewRay(core.NewVec3(10.5, 0.5, 5), core.NewVec3(0, 0, -1)), testRayT)
	if !isHit {
		t.Fatal("Expected hit on the placed box")
	}
	if math.Abs(hit.T-5.0) > 1e-6 {
		t.Errorf("t = %v, want 5", hit.T)
	}
}
