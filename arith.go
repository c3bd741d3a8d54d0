package pixmath

import (
	"fmt"
	"sync"

	"github.com/gogpu/pixmath/internal/rowpool"
)

// parallelThreshold is the pixel count above which elementwise
// operations fan out across rows. Below it the goroutine handoff
// costs more than the arithmetic saves.
const parallelThreshold = 1 << 16

// assertSameSize panics when two images cannot be combined
// elementwise. Mismatched dimensions are a programming error, not
// runtime data, so this is a contract failure rather than an error
// return.
func assertSameSize(a, b *Image, fn string) {
	if a.width != b.width || a.height != b.height {
		panic(fmt.Sprintf("pixmath: %s: image sizes differ (%dx%d vs %dx%d)",
			fn, a.width, a.height, b.width, b.height))
	}
}

var parallelOnce sync.Once

// forEachRow runs fn over every row of an image, in parallel for
// large images. Per-pixel results are identical either way.
func forEachRow(width, height int, fn func(y int)) {
	if width*height >= parallelThreshold {
		parallelOnce.Do(func() {
			Logger().Debug("pixmath: parallel image arithmetic enabled",
				"workers", rowpool.Workers(height))
		})
		rowpool.For(height, fn)
		return
	}
	for y := 0; y < height; y++ {
		fn(y)
	}
}

// combine writes op(a[x,y], b[x,y]*t) into dst for every pixel and
// returns dst. Reading and writing the same pixel is safe even when
// dst aliases a or b.
func combine(dst, a, b *Image, t float64, op func(RGBA, RGBA) RGBA) *Image {
	forEachRow(a.width, a.height, func(y int) {
		for x := 0; x < a.width; x++ {
			dst.SetPixel(x, y, op(a.GetPixel(x, y), b.GetPixel(x, y).Scale(t)))
		}
	})
	return dst
}

// Add returns a new image holding the componentwise sum a + b*t.
// Pass t = 1 for a plain sum. a and b are unmodified.
// Panics if the images differ in size.
func Add(a, b *Image, t float64) *Image {
	assertSameSize(a, b, "Add")
	return combine(a.Clone(), a, b, t, RGBA.Add)
}

// AddTo computes the componentwise sum a + b*t into dst and returns
// dst. Panics if the images differ in size.
func AddTo(dst, a, b *Image, t float64) *Image {
	assertSameSize(a, b, "AddTo")
	assertSameSize(dst, a, "AddTo")
	return combine(dst, a, b, t, RGBA.Add)
}

// Sub returns a new image holding the componentwise difference
// a - b*t. a and b are unmodified.
// Panics if the images differ in size.
func Sub(a, b *Image, t float64) *Image {
	assertSameSize(a, b, "Sub")
	return combine(a.Clone(), a, b, t, RGBA.Sub)
}

// SubTo computes the componentwise difference a - b*t into dst and
// returns dst. Panics if the images differ in size.
func SubTo(dst, a, b *Image, t float64) *Image {
	assertSameSize(a, b, "SubTo")
	assertSameSize(dst, a, "SubTo")
	return combine(dst, a, b, t, RGBA.Sub)
}

// Mul returns a new image holding the componentwise product a * (b*t).
// a and b are unmodified.
// Panics if the images differ in size.
func Mul(a, b *Image, t float64) *Image {
	assertSameSize(a, b, "Mul")
	return combine(a.Clone(), a, b, t, RGBA.Mul)
}

// MulTo computes the componentwise product a * (b*t) into dst and
// returns dst. Panics if the images differ in size.
func MulTo(dst, a, b *Image, t float64) *Image {
	assertSameSize(a, b, "MulTo")
	assertSameSize(dst, a, "MulTo")
	return combine(dst, a, b, t, RGBA.Mul)
}

// Div returns a new image holding the componentwise quotient
// a / (b*t). Zero channels in b produce ±Inf or NaN per IEEE
// semantics; no special casing is applied. a and b are unmodified.
// Panics if the images differ in size.
func Div(a, b *Image, t float64) *Image {
	assertSameSize(a, b, "Div")
	return combine(a.Clone(), a, b, t, RGBA.Div)
}

// DivTo computes the componentwise quotient a / (b*t) into dst and
// returns dst. Panics if the images differ in size.
func DivTo(dst, a, b *Image, t float64) *Image {
	assertSameSize(a, b, "DivTo")
	assertSameSize(dst, a, "DivTo")
	return combine(dst, a, b, t, RGBA.Div)
}

// Invert returns a new image with every channel of every pixel mapped
// to 1 - value, alpha included. a is unmodified.
func Invert(a *Image) *Image {
	return InvertTo(a.Clone(), a)
}

// InvertTo writes the channelwise inverse of a into dst and returns
// dst. Panics if the images differ in size.
func InvertTo(dst, a *Image) *Image {
	assertSameSize(dst, a, "InvertTo")
	forEachRow(a.width, a.height, func(y int) {
		for x := 0; x < a.width; x++ {
			dst.SetPixel(x, y, a.GetPixel(x, y).Inverse())
		}
	})
	return dst
}
