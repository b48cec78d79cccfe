package math

import (
	gomath "math"
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

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	// Zero vector stays zero instead of producing NaN
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", z)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 2, 2}
	if got := a.Distance(b); got != 3 {
		t.Errorf("Vec3.Distance() = %v, want 3", got)
	}
}

func TestMat4IdentityMul(t *testing.T) {
	m := Perspective(1.0, 16.0/9.0, 1, 3000)
	got := Identity().Mul(m)
	if got != m {
		t.Errorf("Identity().Mul(m) changed the matrix")
	}
}

func TestMat4Row(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = float32(i)
	}
	// Column-major: row 1 is elements 1, 5, 9, 13
	got := m.Row(1)
	want := Vec4{1, 5, 9, 13}
	if got != want {
		t.Errorf("Mat4.Row(1) = %v, want %v", got, want)
	}
}

func TestLookAtTransformsEyeToOrigin(t *testing.T) {
	eye := Vec3{10, 20, 30}
	view := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	p := view.MulVec4(Vec4{eye.X, eye.Y, eye.Z, 1})
	for i := 0; i < 3; i++ {
		if gomath.Abs(float64(p[i])) > 1e-4 {
			t.Errorf("view * eye = %v, want origin", p)
			break
		}
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(1), float32(100)
	proj := Perspective(gomath.Pi/4, 1, near, far)

	// Points on the near and far planes map to NDC z = -1 and +1
	pn := proj.MulVec4(Vec4{0, 0, -near, 1})
	if z := pn[2] / pn[3]; z < -1.001 || z > -0.999 {
		t.Errorf("near plane NDC z = %v, want -1", z)
	}
	pf := proj.MulVec4(Vec4{0, 0, -far, 1})
	if z := pf[2] / pf[3]; z < 0.999 || z > 1.001 {
		t.Errorf("far plane NDC z = %v, want 1", z)
	}
}
