package pixmath

import "math"

// gimbalLockThreshold bounds |cos(Y)| below which the X and Z Euler
// angles become degenerate and only their sum is recoverable.
const gimbalLockThreshold = 0.001

// FromEuler creates a rotation matrix from Euler angles in radians,
// composed intrinsically in X, Y, Z order (equivalent to
// Rotate(AxisX, v.X) * Rotate(AxisY, v.Y) * Rotate(AxisZ, v.Z)).
func FromEuler(angles Vec3) Mat4 {
	sx, cx := math.Sincos(angles.X)
	sy, cy := math.Sincos(angles.Y)
	sz, cz := math.Sincos(angles.Z)

	m := Identity()
	m[0] = cy * cz
	m[1] = -cy * sz
	m[2] = sy
	m[4] = cx*sz + sx*sy*cz
	m[5] = cx*cz - sx*sy*sz
	m[6] = -sx * cy
	m[8] = sx*sz - cx*sy*cz
	m[9] = sx*cz + cx*sy*sz
	m[10] = cx * cy
	return m
}

// Euler extracts the X, Y, Z Euler angles of a rotation matrix built
// with the FromEuler composition. The Y angle is read back through
// asin, so it lands in [-pi/2, pi/2].
//
// Near gimbal lock (|cos(Y)| <= 0.001) the X and Z rotations collapse
// onto the same axis and only their sum survives in the matrix; X is
// pinned to 0 and Z absorbs the combined angle.
func (m Mat4) Euler() Vec3 {
	y := math.Asin(m[2])
	cy := math.Cos(y)

	if math.Abs(cy) > gimbalLockThreshold {
		inv := 1 / cy
		return Vec3{
			X: math.Atan2(-m[6]*inv, m[10]*inv),
			Y: y,
			Z: math.Atan2(-m[1]*inv, m[0]*inv),
		}
	}
	return Vec3{
		X: 0,
		Y: y,
		Z: math.Atan2(m[4], m[5]),
	}
}
