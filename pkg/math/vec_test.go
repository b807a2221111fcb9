package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	got := v.Length()
	want := float32(7)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeTiny(t *testing.T) {
	// Below the epsilon the vector comes back untouched, not zeroed.
	tests := []Vec3{
		{},
		{0.000001, 0, 0},
		{0, -0.000005, 0.000002},
	}
	for _, v := range tests {
		if got := v.Normalize(); got != v {
			t.Errorf("Normalize(%v) = %v, want unchanged", v, got)
		}
	}
}

func TestVec3Negate(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got := v.Negate(); got != (Vec3{-1, 2, -3}) {
		t.Errorf("Vec3.Negate() = %v", got)
	}
	if got := v.Add(v.Negate()); got != (Vec3{}) {
		t.Errorf("v + -v = %v, want zero", got)
	}
}
