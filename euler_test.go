package pixmath

import (
	"math"
	"testing"
)

func TestFromEulerMatchesAxisComposition(t *testing.T) {
	angles := []Vec3{
		{X: 0.3, Y: 0.4, Z: 0.5},
		{X: -1.2, Y: 0.7, Z: 2.1},
		{X: 0, Y: 0, Z: 0},
		{X: math.Pi / 3, Y: -math.Pi / 5, Z: math.Pi},
	}
	for _, a := range angles {
		got := FromEuler(a)
		want := Rotate(AxisX, a.X).Mul(Rotate(AxisY, a.Y)).Mul(Rotate(AxisZ, a.Z))
		if !got.ApproxEqual(want, 1e-12) {
			t.Errorf("FromEuler(%+v) differs from Rx*Ry*Rz composition", a)
		}
	}
}

func TestEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
	}{
		{"reference", V3(0.3, 0.4, 0.5)},
		{"zero", V3(0, 0, 0)},
		{"negative", V3(-0.8, -0.2, -1.1)},
		{"large z", V3(0.1, 0.9, 2.5)},
		{"near lock but outside", V3(0.4, 1.4, -0.3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromEuler(tt.in).Euler()
			if !got.Approx(tt.in, 1e-9) {
				t.Errorf("Euler(FromEuler(%+v)) = %+v", tt.in, got)
			}
		})
	}
}

func TestEulerGimbalLock(t *testing.T) {
	// At pitch +-pi/2 the X and Z rotations act about the same axis,
	// so only their sum survives; the extraction pins X to 0.
	tests := []struct {
		name string
		in   Vec3
	}{
		{"positive lock", V3(0.3, math.Pi/2, 0.5)},
		{"negative lock", V3(-0.2, -math.Pi/2, 0.9)},
		{"lock with zero x", V3(0, math.Pi/2, 1.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromEuler(tt.in).Euler()
			if got.X != 0 {
				t.Errorf("X = %v, want pinned to 0", got.X)
			}
			if math.Abs(got.Y-tt.in.Y) > 1e-9 {
				t.Errorf("Y = %v, want %v", got.Y, tt.in.Y)
			}
			// X folded into Z: the recovered matrix must still equal
			// the original rotation.
			back := FromEuler(got)
			if !back.ApproxEqual(FromEuler(tt.in), 1e-9) {
				t.Errorf("gimbal-lock angles %+v do not reproduce the rotation", got)
			}
		})
	}
}

func TestEulerGimbalSumPreserved(t *testing.T) {
	in := V3(0.3, math.Pi/2, 0.5)
	got := FromEuler(in).Euler()
	// At +pi/2 pitch the matrix only encodes X+Z.
	if math.Abs(got.Z-(in.X+in.Z)) > 1e-9 {
		t.Errorf("Z = %v, want X+Z = %v", got.Z, in.X+in.Z)
	}
}
