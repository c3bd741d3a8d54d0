package pixmath

import "fmt"

// Axis selects one of the three cardinal axes.
type Axis int

const (
	// AxisX is the cardinal X axis.
	AxisX Axis = iota
	// AxisY is the cardinal Y axis.
	AxisY
	// AxisZ is the cardinal Z axis.
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Vec3 returns the unit vector along the axis.
func (a Axis) Vec3() Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: 1}
	case AxisY:
		return Vec3{Y: 1}
	case AxisZ:
		return Vec3{Z: 1}
	default:
		panic(fmt.Sprintf("pixmath: invalid axis %d", int(a)))
	}
}
