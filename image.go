package pixmath

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Image is a rectangular grid of float-RGBA pixels.
//
// Unlike an 8-bit pixmap, channel values are kept as float64 and are
// not clamped on write, so arithmetic results outside [0, 1] survive
// until the image is converted to an 8/16-bit form.
type Image struct {
	width  int
	height int
	pix    []float64 // RGBA order, 4 floats per pixel
}

// NewImage creates a new transparent image with the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pix:    make([]float64, width*height*4),
	}
}

// Width returns the width of the image in pixels.
func (p *Image) Width() int {
	return p.width
}

// Height returns the height of the image in pixels.
func (p *Image) Height() int {
	return p.height
}

// Pix returns the raw pixel data, 4 float64 per pixel in RGBA order.
func (p *Image) Pix() []float64 {
	return p.pix
}

// SetPixel sets the color of a single pixel.
// Pixels outside the image are silently ignored.
func (p *Image) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.pix[i+0] = c.R
	p.pix[i+1] = c.G
	p.pix[i+2] = c.B
	p.pix[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Pixels outside the image read as Transparent.
func (p *Image) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: p.pix[i+0],
		G: p.pix[i+1],
		B: p.pix[i+2],
		A: p.pix[i+3],
	}
}

// Clear fills the entire image with a color.
func (p *Image) Clear(c RGBA) {
	for i := 0; i < len(p.pix); i += 4 {
		p.pix[i+0] = c.R
		p.pix[i+1] = c.G
		p.pix[i+2] = c.B
		p.pix[i+3] = c.A
	}
}

// Clone returns an independent copy with identical dimensions and
// content.
func (p *Image) Clone() *Image {
	q := NewImage(p.width, p.height)
	copy(q.pix, p.pix)
	return q
}

// ToNRGBA64 converts the image to a 16-bit straight-alpha image,
// clamping each channel to [0, 1].
func (p *Image) ToNRGBA64() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.GetPixel(x, y)
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: uint16(clamp01(c.R) * 65535),
				G: uint16(clamp01(c.G) * 65535),
				B: uint16(clamp01(c.B) * 65535),
				A: uint16(clamp01(c.A) * 65535),
			})
		}
	}
	return img
}

// FromImage creates a float image from any image.Image.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Normalize the source to straight-alpha 16-bit first so that the
	// float conversion below sees one layout regardless of source type.
	tmp := image.NewNRGBA64(image.Rect(0, 0, width, height))
	xdraw.Draw(tmp, tmp.Bounds(), img, bounds.Min, xdraw.Src)

	p := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := tmp.NRGBA64At(x, y)
			p.SetPixel(x, y, RGBA{
				R: float64(c.R) / 65535,
				G: float64(c.G) / 65535,
				B: float64(c.B) / 65535,
				A: float64(c.A) / 65535,
			})
		}
	}
	return p
}

// Resize returns a copy of the image resampled to the given
// dimensions with a Catmull-Rom kernel.
func (p *Image) Resize(width, height int) *Image {
	src := p.ToNRGBA64()
	dst := image.NewNRGBA64(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// SavePNG saves the image to a PNG file, clamping channels to [0, 1].
func (p *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToNRGBA64())
}

// At implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Image) ColorModel() color.Model {
	return color.NRGBA64Model
}
