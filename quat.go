package pixmath

import "math"

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar
// part W.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle creates a quaternion rotating by angle radians
// about the given axis. The axis is normalized first.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Normalize()
	s, c := math.Sincos(angle * 0.5)
	return Quat{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: c}
}

// QuatBetween creates the shortest-arc rotation taking the direction
// of a to the direction of b.
//
// When a and b are antiparallel the rotation axis is degenerate; any
// axis perpendicular to a is valid and one is chosen deterministically.
func QuatBetween(a, b Vec3) Quat {
	u := a.Normalize()
	v := b.Normalize()
	d := u.Dot(v)

	switch {
	case d >= 1-1e-9:
		return QuatIdentity()
	case d <= -1+1e-9:
		// 180 degrees; pick a perpendicular axis, preferring X unless
		// u is nearly the X axis itself.
		axis := Vec3{X: 1}.Cross(u)
		if axis.LengthSq() < 1e-12 {
			axis = Vec3{Y: 1}.Cross(u)
		}
		return QuatFromAxisAngle(axis, math.Pi)
	default:
		c := u.Cross(v)
		q := Quat{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}
		return q.Normalize()
	}
}

// Dot returns the quaternion dot product.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize returns the unit quaternion in the same direction.
// Returns the identity quaternion if q has zero magnitude.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.Dot(q))
	if n == 0 {
		return QuatIdentity()
	}
	return Quat{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// Mat4 converts the quaternion to a rotation matrix. The quaternion is
// normalized first.
func (q Quat) Mat4() Mat4 {
	n := q.Normalize()
	x, y, z, w := n.X, n.Y, n.Z, n.W

	m := Identity()
	m[0] = 1 - 2*y*y - 2*z*z
	m[1] = 2*x*y - 2*z*w
	m[2] = 2*x*z + 2*y*w
	m[4] = 2*x*y + 2*z*w
	m[5] = 1 - 2*x*x - 2*z*z
	m[6] = 2*y*z - 2*x*w
	m[8] = 2*x*z - 2*y*w
	m[9] = 2*y*z + 2*x*w
	m[10] = 1 - 2*x*x - 2*y*y
	return m
}
