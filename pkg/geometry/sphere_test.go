package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// stubMaterial absorbs everything; geometry tests only need a material handle
type stubMaterial struct{}

func (stubMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

var searchInterval = core.NewInterval(0.001, math.Inf(1))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, searchInterval); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_AimedAtCenter(t *testing.T) {
	// A ray aimed exactly at the center always hits, with the normal
	// anti-parallel to the ray direction
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, stubMaterial{})
	direction := core.NewVec3(0, 0, -1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), direction)

	hit, isHit := sphere.Hit(ray, searchInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	if dot := hit.Normal.Dot(direction); math.Abs(dot+1) > 1e-9 {
		t.Errorf("Normal should be anti-parallel to ray direction, dot=%f", dot)
	}
	if !hit.FrontFace {
		t.Error("Hit from outside should be a front face hit")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, searchInterval)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Tangent(t *testing.T) {
	// Closest approach distance equals the radius: discriminant ~ 0,
	// at most one accepted root
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{})
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, searchInterval)
	if !isHit {
		t.Fatal("Expected tangent hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	tolerance := 1e-6
	if math.Abs(hit.Point.X-expectedPoint.X) > tolerance ||
		math.Abs(hit.Point.Y-expectedPoint.Y) > tolerance ||
		math.Abs(hit.Point.Z-expectedPoint.Z) > tolerance {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_IntervalBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, stubMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Near root at t=1, far root at t=3

	if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5)); isHit {
		t.Errorf("Both roots beyond max, expected miss, got t=%f", hit.T)
	}

	// Near root excluded, far root accepted
	hit, isHit := sphere.Hit(ray, core.NewInterval(2, 4))
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected t=3, got t=%f", hit.T)
	}

	// Surrounds is strict: a root exactly on the interval edge is rejected
	if hit, isHit := sphere.Hit(ray, core.NewInterval(1, 3)); isHit {
		t.Errorf("Roots on interval edges should be rejected, got t=%f", hit.T)
	}
}

func TestSphere_Hit_RecordsMaterial(t *testing.T) {
	mat := stubMaterial{}
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, searchInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != mat {
		t.Error("Hit record should carry the sphere's material")
	}
}
