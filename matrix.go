package pixmath

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Mat2 is a 2x2 matrix in row-major order: element (r, c) is m[r*2+c].
type Mat2 [4]float64

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{
		1, 0,
		0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat2) At(r, c int) float64 {
	return m[r*2+c]
}

// Set sets the element at row r, column c.
func (m *Mat2) Set(r, c int, v float64) {
	m[r*2+c] = v
}

// Mul multiplies two matrices (m * o).
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

// MulVec2 applies the matrix to a column vector.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[2]*v.X + m[3]*v.Y,
	}
}

// ApproxEqual returns true if every element of two matrices is within
// epsilon.
func (m Mat2) ApproxEqual(o Mat2, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) >= epsilon {
			return false
		}
	}
	return true
}

// Mat4 is a 4x4 matrix in row-major order: element (r, c) is m[r*4+c].
//
// Vectors transform as columns, v' = m * v, so the translation of an
// affine transform lives in column 3 (m[3], m[7], m[11]) and composed
// transforms apply right to left.
type Mat4 [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// Set sets the element at row r, column c.
func (m *Mat4) Set(r, c int, v float64) {
	m[r*4+c] = v
}

// Mul multiplies two matrices (m * o).
func (m Mat4) Mul(o Mat4) Mat4 {
	var p Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * o[k*4+c]
			}
			p[r*4+c] = sum
		}
	}
	return p
}

// MulVec4 applies the matrix to a homogeneous column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies the matrix to a 3D point (w = 1), dividing by
// the resulting w when it is nonzero.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	h := m.MulVec4(v.Vec4(1))
	if h.W != 0 && h.W != 1 {
		return Vec3{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}
	}
	return h.Vec3()
}

// TransformDir applies the matrix to a direction (w = 0), ignoring
// translation.
func (m Mat4) TransformDir(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var p Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p[c*4+r] = m[r*4+c]
		}
	}
	return p
}

// ApproxEqual returns true if every element of two matrices is within
// epsilon.
func (m Mat4) ApproxEqual(o Mat4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) >= epsilon {
			return false
		}
	}
	return true
}

// Right returns the matrix's right basis vector (first column).
func (m Mat4) Right() Vec3 {
	return Vec3{X: m[0], Y: m[4], Z: m[8]}
}

// Up returns the matrix's up basis vector (second column).
func (m Mat4) Up() Vec3 {
	return Vec3{X: m[1], Y: m[5], Z: m[9]}
}

// Forward returns the matrix's forward basis vector (negated third
// column; the camera convention looks down -Z).
func (m Mat4) Forward() Vec3 {
	return Vec3{X: -m[2], Y: -m[6], Z: -m[10]}
}

// Translation returns the matrix's translation (fourth column).
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[3], Y: m[7], Z: m[11]}
}

// Scaling returns the matrix's diagonal scale factors.
func (m Mat4) Scaling() Vec3 {
	return Vec3{X: m[0], Y: m[5], Z: m[10]}
}

// F64 returns the matrix as a golang.org/x/image/math/f64 value.
// Both types are row-major, so this is a direct copy.
func (m Mat4) F64() f64.Mat4 {
	return f64.Mat4(m)
}

// Mat4FromF64 converts a golang.org/x/image/math/f64 matrix.
func Mat4FromF64(m f64.Mat4) Mat4 {
	return Mat4(m)
}
