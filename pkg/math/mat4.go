package math

import (
	"errors"

	"github.com/chewxy/math32"
)

// Epsilon is the smallest length Normalize will rescale and the smallest
// sine Perspective accepts for half the field of view.
const Epsilon float32 = 0.00001

// ErrDomain reports a degenerate input to a projection builder.
var ErrDomain = errors.New("degenerate projection parameters")

// Mat4 is a 4x4 matrix stored as four rows x, y, z, w of four floats each.
// The w row holds the translation. In memory this is the same layout OpenGL
// calls column-major, so it can be uploaded without a transpose.
//
//	x: [m0  m1  m2  m3 ]
//	y: [m4  m5  m6  m7 ]
//	z: [m8  m9  m10 m11]
//	w: [m12 m13 m14 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Row returns row i (0=x, 1=y, 2=z, 3=w).
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// SetRow replaces row i.
func (m *Mat4) SetRow(i int, v Vec4) {
	m[i*4], m[i*4+1], m[i*4+2], m[i*4+3] = v[0], v[1], v[2], v[3]
}

// Mul returns m * other: other is applied in the local space of m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row*4+col] =
				m[0*4+col]*other[row*4+0] +
					m[1*4+col]*other[row*4+1] +
					m[2*4+col]*other[row*4+2] +
					m[3*4+col]*other[row*4+3]
		}
	}
	return result
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j*4+i] = m[i*4+j]
		}
	}
	return t
}

// ApproxEqual reports whether every component of m and other differs by at
// most tol.
func (m Mat4) ApproxEqual(other Mat4, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view volume boundaries,
// near and far the depth range.
func Ortho(left, right, bottom, top, near, far float32) (Mat4, error) {
	if right == left || top == bottom || far == near {
		return Mat4{}, ErrDomain
	}

	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}, nil
}

// Perspective returns a right-handed perspective projection matrix.
// fovY is the full vertical field of view in degrees, aspect is width/height.
// A field of view that is a multiple of 180 degrees is rejected.
func Perspective(fovY, aspect, near, far float32) (Mat4, error) {
	if aspect <= 0 || near == far {
		return Mat4{}, ErrDomain
	}

	half := DegToRad(fovY) / 2
	sin, cos := math32.Sin(half), math32.Cos(half)
	if math32.Abs(sin) < Epsilon || math32.Abs(cos) < Epsilon {
		return Mat4{}, ErrDomain
	}

	cot := cos / sin
	dz := 1.0 / (near - far)

	return Mat4{
		cot / aspect, 0, 0, 0,
		0, cot, 0, 0,
		0, 0, (far + near) * dz, -1,
		0, 0, 2 * far * near * dz, 0,
	}, nil
}

// LookAtBasis returns the rotation part of a view matrix: the columns hold
// side, true up and the negated forward direction.
func LookAtBasis(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	side := forward.Cross(up).Normalize()
	lup := side.Cross(forward)

	m := Identity()
	m[0], m[4], m[8] = side.X, side.Y, side.Z
	m[1], m[5], m[9] = lup.X, lup.Y, lup.Z
	m[2], m[6], m[10] = -forward.X, -forward.Y, -forward.Z
	return m
}

// LookAt returns a view matrix looking from eye to center with up direction.
// The eye translation is applied after the basis change.
func LookAt(eye, center, up Vec3) Mat4 {
	ieye := eye.Negate()
	return LookAtBasis(eye, center, up).Mul(Translate(ieye.X, ieye.Y, ieye.Z))
}

// FastInverse inverts a rigid transform: the upper 3x3 block must be a pure
// rotation and the w row a translation. Scale or shear gives a wrong result.
func FastInverse(m Mat4) Mat4 {
	inv := Identity()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[r*4+c] = m[c*4+r]
		}
	}

	t := Vec3{-m[12], -m[13], -m[14]}
	for r := 0; r < 3; r++ {
		inv[12+r] = m[r*4]*t.X + m[r*4+1]*t.Y + m[r*4+2]*t.Z
	}
	return inv
}

// FullInverse inverts m through a copy using the same rigid-transform
// algorithm as FastInverse. It is not a general inverse.
func FullInverse(m Mat4) Mat4 {
	t := m
	return FastInverse(t)
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if v[3] != 0 && v[3] != 1 {
		return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return Vec3{v[0], v[1], v[2]}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	v := m.MulVec4(Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// MulVec4 multiplies the matrix by a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}
