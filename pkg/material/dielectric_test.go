package material

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
)

func TestDielectric_Scatter_AlwaysScatters(t *testing.T) {
	mat := NewDielectric(1.5)
	hit := testHitRecord(core.NewVec3(0, 0, 1))
	rng := rand.New(rand.NewSource(42))
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := mat.Scatter(rayIn, hit, rng)
		if !didScatter {
			t.Fatal("Glass must always scatter")
		}
		if !scatter.SkipPDF {
			t.Fatal("Glass scattering must bypass the PDF path")
		}
		want := core.NewVec3(1, 1, 1)
		if scatter.Attenuation != want {
			t.Fatalf("Attenuation = %v, want %v", scatter.Attenuation, want)
		}
	}
}

func TestDielectric_Scatter_NormalIncidenceRefractsStraight(t *testing.T) {
	mat := NewDielectric(1.5)
	hit := testHitRecord(core.NewVec3(0, 0, 1))
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	rng := rand.New(rand.NewSource(42))

	// At normal incidence Schlick reflectance is only ~4%, so most rays
	// refract straight through
	refracted := 0
	for i := 0; i < 1000; i++ {
		scatter, _ := mat.Scatter(rayIn, hit, rng)
		dir := scatter.SkipPDFRay.Direction.Normalize()
		if diff := dir.Subtract(core.NewVec3(0, 0, -1)); diff.Length() < 1e-9 {
			refracted++
		}
	}
	if refracted < 900 {
		t.Errorf("Only %d/1000 rays refracted straight through at normal incidence", refracted)
	}
}

func TestDielectric_Scatter_TotalInternalReflection(t *testing.T) {
	mat := NewDielectric(1.5)

	// Exiting glass at 60 degrees: sin(60)*1.5 > 1, refraction impossible
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1.0,
		FrontFace: false,
	}
	incoming := core.NewVec3(math.Sin(math.Pi/3), 0, -math.Cos(math.Pi/3))
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), incoming)
	rng := rand.New(rand.NewSource(42))

	want := incoming.Reflect(hit.Normal).Normalize()
	for i := 0; i < 100; i++ {
		scatter, _ := mat.Scatter(rayIn, hit, rng)
		got := scatter.SkipPDFRay.Direction.Normalize()
		if diff := got.Subtract(want); diff.Length() > 1e-9 {
			t.Fatalf("Expected total internal reflection %v, got %v", want, got)
		}
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// Normal incidence for n=1.5: r0 = ((1-1.5)/(1+1.5))^2 = 0.04
	got := reflectance(1.0, 1.0/1.5)
	r0 := math.Pow((1-1.0/1.5)/(1+1.0/1.5), 2)
	if math.Abs(got-r0) > 1e-9 {
		t.Errorf("reflectance(1, 1/1.5) = %v, want %v", got, r0)
	}

	// Grazing incidence approaches full reflection
	if got := reflectance(0.0, 1.0/1.5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("reflectance(0, 1/1.5) = %v, want 1", got)
	}
}
