// Package rgb565 provides the 16-bit color image format used by the ST7789 controller.
//
// Each pixel takes two bytes, sent most significant byte first:
// 5 bits of red, 6 bits of green and 5 bits of blue.
package rgb565

import (
	"image"
	"image/color"
)

// RGB565 is a 16-bit packed color: rrrrrggg gggbbbbb.
type RGB565 struct {
	C uint16
}

// RGBA converts the packed color to 16-bit per channel RGBA.
// Each channel is expanded by replicating its top bits so that full
// intensity maps to 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c.C>>11) & 0x1F
	g6 := uint32(c.C>>5) & 0x3F
	b5 := uint32(c.C) & 0x1F

	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// FromRGB8 packs 8-bit channels, dropping the low bits.
func FromRGB8(r, g, b uint8) RGB565 {
	return RGB565{C: uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)}
}

func toRGB565(c color.Color) color.Color {
	if p, ok := c.(RGB565); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return FromRGB8(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to RGB565. Alpha is discarded, the panel has no
// notion of transparency.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory image of RGB565 pixels laid out exactly as the
// controller expects them on the wire.
type Image struct {
	Pix    []byte          // 2 bytes per pixel, big endian
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates an Image with the given bounds, all black.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel returns Model.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the packed color at (x, y), black when out of bounds.
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB565{}
	}
	i := p.PixOffset(x, y)
	return RGB565{C: uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1])}
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.SetRGB565(x, y, Model.Convert(c).(RGB565))
}

// SetRGB565 stores a packed color without going through the color model.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c.C >> 8)
	p.Pix[i+1] = byte(c.C)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
