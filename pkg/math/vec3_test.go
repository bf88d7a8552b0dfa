package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLerpVec3(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{10, 20, 30}

	result := LerpVec3(a, b, 0.5)
	expected := mgl32.Vec3{5, 10, 15}

	for i := 0; i < 3; i++ {
		if math.Abs(float64(result[i]-expected[i])) > 0.001 {
			t.Errorf("LerpVec3 component %d: expected %v, got %v", i, expected[i], result[i])
		}
	}
}

func TestLerpSlice(t *testing.T) {
	got := LerpSlice(nil, []float32{0, 1}, []float32{1, 3}, 0.5)
	if len(got) != 2 || got[0] != 0.5 || got[1] != 2 {
		t.Errorf("LerpSlice: got %v, want [0.5 2]", got)
	}
}

func TestHermiteVec3(t *testing.T) {
	p0 := mgl32.Vec3{0, 0, 0}
	p1 := mgl32.Vec3{1, 0, 0}
	// Linear tangents reproduce a straight line.
	m := mgl32.Vec3{1, 0, 0}

	got := HermiteVec3(p0, m, p1, m, 0.25)
	if !ApproxEqualVec3(got, mgl32.Vec3{0.25, 0, 0}, 1e-6) {
		t.Errorf("HermiteVec3 with linear tangents: got %v, want (0.25, 0, 0)", got)
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := mgl32.Vec3{1, 5, -3}
	b := mgl32.Vec3{2, -1, 0}

	if got := MinVec3(a, b); got != (mgl32.Vec3{1, -1, -3}) {
		t.Errorf("MinVec3: got %v", got)
	}
	if got := MaxVec3(a, b); got != (mgl32.Vec3{2, 5, 0}) {
		t.Errorf("MaxVec3: got %v", got)
	}
}

func TestNormalizeOr(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	if got := NormalizeOr(mgl32.Vec3{}, up); got != up {
		t.Errorf("zero vector should use fallback, got %v", got)
	}
	if got := NormalizeOr(mgl32.Vec3{3, 0, 4}, up); !ApproxEqualVec3(got, mgl32.Vec3{0.6, 0, 0.8}, 1e-6) {
		t.Errorf("NormalizeOr: got %v", got)
	}
}

func TestVec3FromFloat64(t *testing.T) {
	fallback := mgl32.Vec3{1, 1, 1}
	if got := Vec3FromFloat64([]float64{1, 2}, fallback); got != fallback {
		t.Errorf("short input should return fallback, got %v", got)
	}
	if got := Vec3FromFloat64([]float64{1, 2, 3}, fallback); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Vec3FromFloat64: got %v", got)
	}
}

func TestHermite(t *testing.T) {
	if got := Hermite(2, 0, 5, 0, 0); got != 2 {
		t.Errorf("Hermite at t=0: got %v, want 2", got)
	}
	if got := Hermite(2, 0, 5, 0, 1); got != 5 {
		t.Errorf("Hermite at t=1: got %v, want 5", got)
	}
	if got := Hermite(2, 0, 5, 0, 0.5); math.Abs(float64(got-3.5)) > 1e-6 {
		t.Errorf("Hermite at t=0.5: got %v, want 3.5", got)
	}
}
