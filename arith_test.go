package pixmath

import (
	"math"
	"testing"
)

// testImage fills a width x height image with a deterministic pixel
// pattern so tests can predict any coordinate's value.
func testImage(width, height int, seed float64) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetPixel(x, y, RGBA{
				R: math.Mod(seed+float64(x)*0.13, 1),
				G: math.Mod(seed+float64(y)*0.29, 1),
				B: math.Mod(seed+float64(x+y)*0.07, 1),
				A: math.Mod(seed+float64(x*y)*0.011, 1),
			})
		}
	}
	return img
}

func colorApprox(a, b RGBA, epsilon float64) bool {
	// Exact equality short-circuits so identical infinities compare
	// equal; Inf-Inf is NaN and would fail the epsilon check.
	ch := func(x, y float64) bool {
		return x == y || math.Abs(x-y) < epsilon
	}
	return ch(a.R, b.R) && ch(a.G, b.G) && ch(a.B, b.B) && ch(a.A, b.A)
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic, got none")
		}
	}()
	fn()
}

func TestBinaryOpsPerPixel(t *testing.T) {
	a := testImage(9, 7, 0.2)
	b := testImage(9, 7, 0.55)

	tests := []struct {
		name string
		op   func(a, b *Image, t float64) *Image
		ref  func(x, y RGBA) RGBA
	}{
		{"add", Add, RGBA.Add},
		{"sub", Sub, RGBA.Sub},
		{"mul", Mul, RGBA.Mul},
		{"div", Div, RGBA.Div},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(a, b, 1)
			for y := 0; y < a.Height(); y++ {
				for x := 0; x < a.Width(); x++ {
					want := tt.ref(a.GetPixel(x, y), b.GetPixel(x, y))
					if !colorApprox(got.GetPixel(x, y), want, 1e-12) {
						t.Fatalf("%s at (%d,%d) = %+v, want %+v",
							tt.name, x, y, got.GetPixel(x, y), want)
					}
				}
			}
		})
	}
}

func TestBlendFactorScalesSecondOperand(t *testing.T) {
	a := testImage(5, 5, 0.3)
	b := testImage(5, 5, 0.6)
	const factor = 0.25

	got := Add(a, b, factor)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := a.GetPixel(x, y).Add(b.GetPixel(x, y).Scale(factor))
			if !colorApprox(got.GetPixel(x, y), want, 1e-12) {
				t.Fatalf("Add with t=%v at (%d,%d) = %+v, want %+v",
					factor, x, y, got.GetPixel(x, y), want)
			}
		}
	}
}

func TestAddAllocatesFreshImage(t *testing.T) {
	a := testImage(4, 4, 0.1)
	b := testImage(4, 4, 0.5)
	before := a.Clone()

	got := Add(a, b, 1)
	if got == a || got == b {
		t.Fatalf("Add returned one of its inputs")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a.GetPixel(x, y) != before.GetPixel(x, y) {
				t.Fatalf("Add mutated input a at (%d,%d)", x, y)
			}
		}
	}
}

func TestAddToReturnsAndMutatesTarget(t *testing.T) {
	a := testImage(4, 4, 0.1)
	b := testImage(4, 4, 0.5)
	dst := NewImage(4, 4)

	got := AddTo(dst, a, b, 1)
	if got != dst {
		t.Fatalf("AddTo returned %p, want the target %p", got, dst)
	}
	want := a.GetPixel(2, 3).Add(b.GetPixel(2, 3))
	if !colorApprox(dst.GetPixel(2, 3), want, 1e-12) {
		t.Errorf("AddTo target pixel (2,3) = %+v, want %+v", dst.GetPixel(2, 3), want)
	}
}

func TestInPlaceAliasingTarget(t *testing.T) {
	a := testImage(6, 6, 0.2)
	b := testImage(6, 6, 0.7)
	want := Add(a, b, 1)

	got := AddTo(a, a, b, 1) // dst aliases a
	if got != a {
		t.Fatalf("AddTo did not return the aliased target")
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if !colorApprox(a.GetPixel(x, y), want.GetPixel(x, y), 1e-12) {
				t.Fatalf("aliased AddTo at (%d,%d) = %+v, want %+v",
					x, y, a.GetPixel(x, y), want.GetPixel(x, y))
			}
		}
	}
}

func TestDimensionMismatchPanics(t *testing.T) {
	a := NewImage(4, 4)
	wide := NewImage(5, 4)
	tall := NewImage(4, 5)

	tests := []struct {
		name string
		fn   func()
	}{
		{"add width", func() { Add(a, wide, 1) }},
		{"add height", func() { Add(a, tall, 1) }},
		{"sub", func() { Sub(a, wide, 1) }},
		{"mul", func() { Mul(a, tall, 1) }},
		{"div", func() { Div(a, wide, 1) }},
		{"addTo target", func() { AddTo(wide, a, a, 1) }},
		{"invertTo target", func() { InvertTo(wide, a) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, tt.fn)
		})
	}
}

func TestDivisionByZeroFollowsIEEE(t *testing.T) {
	a := NewImage(1, 1)
	a.SetPixel(0, 0, RGBA{R: 1, G: -1, B: 0, A: 0.5})
	b := NewImage(1, 1)
	b.SetPixel(0, 0, RGBA{R: 0, G: 0, B: 0, A: 0.5})

	got := Div(a, b, 1).GetPixel(0, 0)
	if !math.IsInf(got.R, 1) {
		t.Errorf("1/0 channel = %v, want +Inf", got.R)
	}
	if !math.IsInf(got.G, -1) {
		t.Errorf("-1/0 channel = %v, want -Inf", got.G)
	}
	if !math.IsNaN(got.B) {
		t.Errorf("0/0 channel = %v, want NaN", got.B)
	}
	if got.A != 1 {
		t.Errorf("0.5/0.5 channel = %v, want 1", got.A)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	a := testImage(8, 8, 0.42)

	twice := Invert(Invert(a))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !colorApprox(twice.GetPixel(x, y), a.GetPixel(x, y), 1e-12) {
				t.Fatalf("invert(invert(a)) at (%d,%d) = %+v, want %+v",
					x, y, twice.GetPixel(x, y), a.GetPixel(x, y))
			}
		}
	}
}

func TestInvertIncludesAlpha(t *testing.T) {
	a := NewImage(1, 1)
	a.SetPixel(0, 0, RGBA{R: 0.25, G: 0.5, B: 0.75, A: 0.2})

	got := Invert(a).GetPixel(0, 0)
	want := RGBA{R: 0.75, G: 0.5, B: 0.25, A: 0.8}
	if !colorApprox(got, want, 1e-12) {
		t.Errorf("Invert pixel = %+v, want %+v", got, want)
	}
}

// The parallel row path must be observably identical to the sequential
// one; a large image forces it past the threshold.
func TestParallelMatchesSequential(t *testing.T) {
	const size = 300 // 300*300 > parallelThreshold
	a := testImage(size, size, 0.17)
	b := testImage(size, size, 0.61)

	got := Mul(a, b, 0.5)
	for _, p := range [][2]int{{0, 0}, {size - 1, size - 1}, {137, 251}, {299, 0}} {
		x, y := p[0], p[1]
		want := a.GetPixel(x, y).Mul(b.GetPixel(x, y).Scale(0.5))
		if !colorApprox(got.GetPixel(x, y), want, 1e-12) {
			t.Errorf("parallel Mul at (%d,%d) = %+v, want %+v",
				x, y, got.GetPixel(x, y), want)
		}
	}
}
