package pixmath

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1], but arithmetic on
// colors is not clamped: sums may exceed 1 and differences may go
// negative. Clamping happens only on conversion to 8-bit form.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Add returns the componentwise sum of two colors.
func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Sub returns the componentwise difference of two colors.
func (c RGBA) Sub(o RGBA) RGBA {
	return RGBA{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// Mul returns the componentwise product of two colors.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Div returns the componentwise quotient of two colors.
// Division by a zero component follows IEEE semantics: the result is
// ±Inf or NaN and propagates silently.
func (c RGBA) Div(o RGBA) RGBA {
	return RGBA{R: c.R / o.R, G: c.G / o.G, B: c.B / o.B, A: c.A / o.A}
}

// Scale returns the color with every component multiplied by t.
func (c RGBA) Scale(t float64) RGBA {
	return RGBA{R: c.R * t, G: c.G * t, B: c.B * t, A: c.A * t}
}

// Inverse returns the photographic negative of the color: 1 - v for
// every component, alpha included.
func (c RGBA) Inverse() RGBA {
	return RGBA{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: 1 - c.A}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(o RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Color converts RGBA to the standard color.Color interface,
// clamping each component to [0, 1].
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	n := RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
	// color.RGBA() is alpha-premultiplied; store straight alpha.
	if a != 0 && a != 65535 {
		n.R /= n.A
		n.G /= n.A
		n.B /= n.A
	}
	return n
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Gray        = RGB(0.5, 0.5, 0.5)
	Transparent = RGBA{}
)
