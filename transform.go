package pixmath

import (
	"fmt"
	"math"
)

// unitTolerance is how far a required unit vector's length may stray
// from 1 before the call is treated as a contract violation.
const unitTolerance = 1e-3

func assertUnit(v Vec3, fn string) {
	if math.Abs(v.Length()-1) > unitTolerance {
		panic(fmt.Sprintf("pixmath: %s: vector %+v is not unit length", fn, v))
	}
}

// Rotate creates a rotation matrix of angle radians about a cardinal
// axis, right-handed (counter-clockwise looking down the axis toward
// the origin). Panics on an invalid axis.
func Rotate(axis Axis, angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	switch axis {
	case AxisX:
		m[5] = c
		m[6] = -s
		m[9] = s
		m[10] = c
	case AxisY:
		m[0] = c
		m[2] = s
		m[8] = -s
		m[10] = c
	case AxisZ:
		m[0] = c
		m[1] = -s
		m[4] = s
		m[5] = c
	default:
		panic(fmt.Sprintf("pixmath: Rotate: invalid axis %d", int(axis)))
	}
	return m
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
	return m
}

// Scale creates a scaling matrix with per-axis factors.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// ScaleAlong creates a matrix scaling by factor k along an arbitrary
// unit axis, leaving the perpendicular plane untouched.
// Panics if the axis is not unit length.
func ScaleAlong(axis Vec3, k float64) Mat4 {
	assertUnit(axis, "ScaleAlong")
	d := k - 1
	m := Identity()
	m[0] = 1 + d*axis.X*axis.X
	m[1] = d * axis.X * axis.Y
	m[2] = d * axis.X * axis.Z
	m[4] = d * axis.Y * axis.X
	m[5] = 1 + d*axis.Y*axis.Y
	m[6] = d * axis.Y * axis.Z
	m[8] = d * axis.Z * axis.X
	m[9] = d * axis.Z * axis.Y
	m[10] = 1 + d*axis.Z*axis.Z
	return m
}

// Shear creates a shear matrix: the coordinate along the given axis is
// offset by s times the next coordinate and t times the one after, in
// cyclic X, Y, Z order (for AxisX: x' = x + s*y + t*z).
// Panics on an invalid axis.
func Shear(axis Axis, s, t float64) Mat4 {
	m := Identity()
	switch axis {
	case AxisX:
		m[1] = s
		m[2] = t
	case AxisY:
		m[6] = s
		m[4] = t
	case AxisZ:
		m[8] = s
		m[9] = t
	default:
		panic(fmt.Sprintf("pixmath: Shear: invalid axis %d", int(axis)))
	}
	return m
}

// Project creates a matrix projecting onto the plane through the
// origin perpendicular to the unit normal n (I - n*nT). Projection is
// idempotent: applying it twice changes nothing further.
// Panics if n is not unit length.
func Project(n Vec3) Mat4 {
	assertUnit(n, "Project")
	m := Identity()
	m[0] = 1 - n.X*n.X
	m[1] = -n.X * n.Y
	m[2] = -n.X * n.Z
	m[4] = -n.Y * n.X
	m[5] = 1 - n.Y*n.Y
	m[6] = -n.Y * n.Z
	m[8] = -n.Z * n.X
	m[9] = -n.Z * n.Y
	m[10] = 1 - n.Z*n.Z
	return m
}

// Reflect creates a mirror matrix about the cardinal plane
// perpendicular to the given axis, offset by k from the origin
// (the axis coordinate maps to 2k - coordinate).
// Panics on an invalid axis.
func Reflect(axis Axis, k float64) Mat4 {
	m := Identity()
	switch axis {
	case AxisX:
		m[0] = -1
		m[3] = 2 * k
	case AxisY:
		m[5] = -1
		m[7] = 2 * k
	case AxisZ:
		m[10] = -1
		m[11] = 2 * k
	default:
		panic(fmt.Sprintf("pixmath: Reflect: invalid axis %d", int(axis)))
	}
	return m
}

// ReflectPlane creates a mirror matrix about the arbitrary plane
// through the origin with unit normal n (I - 2*n*nT).
// Panics if n is not unit length.
func ReflectPlane(n Vec3) Mat4 {
	assertUnit(n, "ReflectPlane")
	m := Identity()
	m[0] = 1 - 2*n.X*n.X
	m[1] = -2 * n.X * n.Y
	m[2] = -2 * n.X * n.Z
	m[4] = -2 * n.Y * n.X
	m[5] = 1 - 2*n.Y*n.Y
	m[6] = -2 * n.Y * n.Z
	m[8] = -2 * n.Z * n.X
	m[9] = -2 * n.Z * n.Y
	m[10] = 1 - 2*n.Z*n.Z
	return m
}

// LookAt creates a right-handed view matrix for a camera at eye
// looking toward center, with the given approximate up direction.
//
// If center - eye is parallel to up the basis degenerates to zero
// vectors; the result is undefined and no guard is applied.
func LookAt(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	side := forward.Cross(up.Normalize()).Normalize()
	u := side.Cross(forward)

	m := Identity()
	m[0] = side.X
	m[1] = side.Y
	m[2] = side.Z
	m[3] = -side.Dot(eye)
	m[4] = u.X
	m[5] = u.Y
	m[6] = u.Z
	m[7] = -u.Dot(eye)
	m[8] = -forward.X
	m[9] = -forward.Y
	m[10] = -forward.Z
	m[11] = forward.Dot(eye)
	return m
}

// Frustum creates an off-center perspective projection matrix from six
// clip-plane parameters, mapping the frustum to OpenGL clip space with
// depth in [-1, 1]. Panics if near or far is negative.
func Frustum(left, right, bottom, top, near, far float64) Mat4 {
	if near < 0 || far < 0 {
		panic(fmt.Sprintf("pixmath: Frustum: near (%g) and far (%g) must be non-negative", near, far))
	}
	var m Mat4
	m[0] = 2 * near / (right - left)
	m[2] = (right + left) / (right - left)
	m[5] = 2 * near / (top - bottom)
	m[6] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / (far - near)
	m[11] = -2 * far * near / (far - near)
	m[14] = -1
	return m
}

// Perspective creates a symmetric perspective projection matrix.
// fovy is the vertical field of view in degrees; aspect is width over
// height. Depth maps to OpenGL clip space in [-1, 1].
func Perspective(fovy, aspect, near, far float64) Mat4 {
	half := fovy * math.Pi / 360
	s, c := math.Sincos(half)
	cot := c / s

	var m Mat4
	m[0] = cot / aspect
	m[5] = cot
	m[10] = -(far + near) / (far - near)
	m[11] = -2 * far * near / (far - near)
	m[14] = -1
	return m
}

// Ortho creates an orthographic projection matrix from six clip-plane
// parameters, mapping the box to OpenGL clip space with depth in
// [-1, 1].
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	m := Identity()
	m[0] = 2 / (right - left)
	m[3] = -(right + left) / (right - left)
	m[5] = 2 / (top - bottom)
	m[7] = -(top + bottom) / (top - bottom)
	m[10] = -2 / (far - near)
	m[11] = -(far + near) / (far - near)
	return m
}

// Basis creates a matrix whose columns are the given direction
// vectors, so that Right, Up and the third column map to xdir, ydir
// and zdir. The directions are assumed orthonormal; this is not
// checked.
func Basis(xdir, ydir, zdir Vec3) Mat4 {
	m := Identity()
	m[0] = xdir.X
	m[4] = xdir.Y
	m[8] = xdir.Z
	m[1] = ydir.X
	m[5] = ydir.Y
	m[9] = ydir.Z
	m[2] = zdir.X
	m[6] = zdir.Y
	m[10] = zdir.Z
	return m
}

// Shadow creates a planar projection matrix flattening geometry onto
// the plane (given as a homogeneous plane equation) as seen from the
// homogeneous light position: d*I - light*planeT with d = plane.light.
// The result is rank-deficient on purpose.
func Shadow(plane, light Vec4) Mat4 {
	d := plane.Dot(light)
	l := [4]float64{light.X, light.Y, light.Z, light.W}
	p := [4]float64{plane.X, plane.Y, plane.Z, plane.W}

	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v := -l[r] * p[c]
			if r == c {
				v += d
			}
			m[r*4+c] = v
		}
	}
	return m
}

// nearParallel is the |z| threshold past which FromDirection's
// reference axis (0, 0, 1) is too close to the target direction to
// produce a usable cross product.
const nearParallel = 0.999999999

// FromDirection creates an orthonormal basis matrix whose Z axis is
// the given direction, via Gram-Schmidt against the reference axis
// (0, 0, 1). When the direction is nearly parallel to the reference,
// the X axis is used as the reference instead.
func FromDirection(zdir Vec3) Mat4 {
	z := zdir.Normalize()
	ref := Vec3{Z: 1}
	if math.Abs(z.Z) >= nearParallel {
		ref = Vec3{X: 1}
	}
	x := ref.Cross(z).Normalize()
	y := z.Cross(x)
	return Basis(x, y, z)
}

// RotationBetween creates the matrix of the shortest-arc rotation
// taking the direction of source to the direction of target.
func RotationBetween(source, target Vec3) Mat4 {
	return QuatBetween(source, target).Mat4()
}

// Rotate2 creates a 2x2 rotation matrix of angle radians,
// counter-clockwise.
func Rotate2(angle float64) Mat2 {
	s, c := math.Sincos(angle)
	return Mat2{
		c, -s,
		s, c,
	}
}

// Outer creates the 2x2 outer (tensor) product of two vectors,
// a * bT.
func Outer(a, b Vec2) Mat2 {
	return Mat2{
		a.X * b.X, a.X * b.Y,
		a.Y * b.X, a.Y * b.Y,
	}
}
