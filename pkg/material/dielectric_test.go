package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	dielectric := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	for i := 0; i < 20; i++ {
		scatter, didScatter := dielectric.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}
		if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected white attenuation, got %v", scatter.Attenuation)
		}
	}
}

func TestDielectric_HeadOnRefraction(t *testing.T) {
	// Head-on incidence: Schlick reflectance is r0, which is 0 for a ratio
	// of 1, so the ray always refracts straight through
	dielectric := NewDielectric(1.0)
	random := rand.New(rand.NewSource(42))

	direction := core.NewVec3(0, 0, -1)
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), direction)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	for i := 0; i < 20; i++ {
		scatter, _ := dielectric.Scatter(rayIn, hit, random)
		got := scatter.Scattered.Direction.Normalize()
		if got.Subtract(direction).Length() > 1e-9 {
			t.Fatalf("Index ratio 1 should pass the ray through unchanged, got %v", got)
		}
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	// Exiting glass at a grazing angle: sinθ > 1/1.5, Snell's law has no
	// solution and the ray must reflect regardless of the random draw
	dielectric := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	direction := core.NewVec3(0.8, 0, -0.6)
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), direction)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: false, // exiting the medium
	}

	expected := core.NewVec3(0.8, 0, 0.6)
	for i := 0; i < 20; i++ {
		scatter, didScatter := dielectric.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}
		if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
		}
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// Normal incidence equals r0
	ri := 1.5
	r0 := math.Pow((1-ri)/(1+ri), 2)
	if got := Reflectance(1.0, ri); math.Abs(got-r0) > 1e-12 {
		t.Errorf("Expected r0=%f at normal incidence, got %f", r0, got)
	}

	// Grazing incidence reflects everything
	if got := Reflectance(0.0, ri); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", got)
	}

	// Reflectance grows monotonically toward grazing angles
	if Reflectance(0.5, ri) <= Reflectance(0.9, ri) {
		t.Error("Reflectance should increase as the angle becomes more grazing")
	}
}
