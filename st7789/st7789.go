package st7789

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/journeyclock/st7789/rgb565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Controller RAM is 240 columns by 320 rows.
const (
	ramColumns = 240
	ramRows    = 320
)

// Command set subset used by the driver.
const (
	cmdSWRESET = 0x01
	cmdSLPOUT  = 0x11
	cmdNORON   = 0x13
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdCOLMOD  = 0x3A
)

// defaultMaxTx matches the Linux spidev default buffer size.
const defaultMaxTx = 4096

// Opts is the configuration for the ST7789 display.
type Opts struct {
	// Native panel dimensions in pixels
	W int // Width (default: 240, ≤240)
	H int // Height (default: 240, ≤320)

	// Position of the visible area inside the controller RAM
	XOffset int
	YOffset int

	// SPI clock (default: 64MHz)
	Hz physic.Frequency

	// Optional pins
	RST gpio.PinIO  // Reset pin (nil if not used)
	BL  gpio.PinOut // Backlight pin (nil if not used)
}

// Dev is the device handle for the ST7789 display.
type Dev struct {
	// Communication
	c     conn.Conn   // SPI connection
	dc    gpio.PinOut // Data/Command pin
	rst   gpio.PinIO  // Reset pin (optional)
	bl    gpio.PinOut // Backlight pin (optional)
	maxTx int

	// Display geometry
	rect    image.Rectangle
	xOffset int
	yOffset int

	// Pixel buffers
	next *rgb565.Image // Frame being composed
	last *rgb565.Image // Frame currently shown, for differential updates

	// State
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new ST7789 device connected via SPI.
//
// The SPI port is configured in Mode0 with 8-bit words. The dc
// (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults (240x240 panel, 64MHz, no offsets).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	o := *opts
	if o.W == 0 {
		o.W = 240
	}
	if o.H == 0 {
		o.H = 240
	}
	if o.Hz == 0 {
		o.Hz = 64 * physic.MegaHertz
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("st7789: dc pin is required")
	}

	c, err := p.Connect(o.Hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789: connect: %w", err)
	}

	d := newDev(c, dc, &o)
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.H <= 0 {
		return errors.New("st7789: dimensions must be positive")
	}
	if o.XOffset < 0 || o.YOffset < 0 {
		return errors.New("st7789: offsets must not be negative")
	}
	if o.W+o.XOffset > ramColumns {
		return fmt.Errorf("st7789: width %d with x offset %d exceeds %d columns", o.W, o.XOffset, ramColumns)
	}
	if o.H+o.YOffset > ramRows {
		return fmt.Errorf("st7789: height %d with y offset %d exceeds %d rows", o.H, o.YOffset, ramRows)
	}
	return nil
}

func newDev(c conn.Conn, dc gpio.PinOut, o *Opts) *Dev {
	rect := image.Rect(0, 0, o.W, o.H)
	d := &Dev{
		c:       c,
		dc:      dc,
		rst:     o.RST,
		bl:      o.BL,
		maxTx:   defaultMaxTx,
		rect:    rect,
		xOffset: o.XOffset,
		yOffset: o.YOffset,
		next:    rgb565.NewImage(rect),
	}
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		d.maxTx = l.MaxTxSize()
	}
	return d
}

// init resets the controller, sets 16-bit color and turns the panel on.
func (d *Dev) init() error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to pull RST high: %w", err)
		}
		time.Sleep(120 * time.Millisecond)
	}

	if err := d.command(cmdSWRESET); err != nil {
		return err
	}
	time.Sleep(150 * time.Millisecond)

	if err := d.command(cmdSLPOUT); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)

	steps := []struct {
		cmd  byte
		args []byte
	}{
		{cmdCOLMOD, []byte{0x55}}, // 16 bits per pixel
		{cmdMADCTL, []byte{0x08}},
		{cmdCASET, window(d.xOffset, d.xOffset+d.rect.Dx()-1)},
		{cmdRASET, window(d.yOffset, d.yOffset+d.rect.Dy()-1)},
		{cmdINVON, nil}, // IPS panels are wired inverted
		{cmdNORON, nil},
		{cmdDISPON, nil},
		{cmdMADCTL, []byte{0xC0}}, // Row/column order matching the RAM offsets, RGB
	}
	for _, s := range steps {
		if err := d.command(s.cmd, s.args...); err != nil {
			return err
		}
	}

	// Clear panel RAM so that the first differential update has a known base.
	if err := d.writeFullFrame(d.next.Pix); err != nil {
		return err
	}
	d.last = rgb565.NewImage(d.rect)

	if d.bl != nil {
		if err := d.bl.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: failed to turn backlight on: %w", err)
		}
	}
	return nil
}

// window encodes an address window as two big endian 16-bit values.
func window(start, end int) []byte {
	return []byte{byte(start >> 8), byte(start), byte(end >> 8), byte(end)}
}

// command sends a command byte followed by its parameters.
func (d *Dev) command(cmd byte, args ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return d.sendData(args)
}

// sendData sends data bytes, split to fit the bus transfer limit.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := min(len(data), d.maxTx)
		if err := d.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// writeRect writes pixel data to a rectangular region of the display.
func (d *Dev) writeRect(x, y, width, height int, pixels []byte) error {
	x0, y0 := x+d.xOffset, y+d.yOffset
	if err := d.command(cmdCASET, window(x0, x0+width-1)...); err != nil {
		return err
	}
	if err := d.command(cmdRASET, window(y0, y0+height-1)...); err != nil {
		return err
	}
	if err := d.command(cmdRAMWR); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the native bounds of the panel.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws an image onto the display with differential update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7789: halted")
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)
	return d.flush()
}

// Present rotates img counter-clockwise by degrees (0, 90, 180 or 270) and
// shows it. The rotated image must match the panel bounds exactly.
func (d *Dev) Present(img image.Image, degrees int) error {
	if d.halted {
		return errors.New("st7789: halted")
	}
	size, err := rotatedSize(img.Bounds(), degrees)
	if err != nil {
		return err
	}
	if size != d.rect.Size() {
		return fmt.Errorf("st7789: image %v rotated by %d is %v, panel is %v", img.Bounds().Size(), degrees, size, d.rect.Size())
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba, fast := img.(*image.RGBA)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			sx, sy := sourcePoint(x, y, w, h, degrees)
			sx += b.Min.X
			sy += b.Min.Y
			var c rgb565.RGB565
			if fast {
				p := rgba.RGBAAt(sx, sy)
				c = rgb565.FromRGB8(p.R, p.G, p.B)
			} else {
				c = rgb565.Model.Convert(img.At(sx, sy)).(rgb565.RGB565)
			}
			d.next.SetRGB565(x, y, c)
		}
	}
	return d.flush()
}

func rotatedSize(b image.Rectangle, degrees int) (image.Point, error) {
	switch degrees {
	case 0, 180:
		return b.Size(), nil
	case 90, 270:
		return image.Pt(b.Dy(), b.Dx()), nil
	}
	return image.Point{}, fmt.Errorf("st7789: unsupported rotation %d", degrees)
}

// sourcePoint maps a pixel of the rotated image back to the source image
// of size w×h.
func sourcePoint(x, y, w, h, degrees int) (int, int) {
	switch degrees {
	case 90:
		return w - 1 - y, x
	case 180:
		return w - 1 - x, h - 1 - y
	case 270:
		return y, h - 1 - x
	}
	return x, y
}

// flush sends the part of next that differs from what the panel shows.
func (d *Dev) flush() error {
	minCol, maxCol, minRow, maxRow := d.calculateDiff()
	if minCol > maxCol {
		return nil
	}
	changed := d.extractRegion(minCol, maxCol, minRow, maxRow)
	if err := d.writeRect(minCol, minRow, maxCol-minCol+1, maxRow-minRow+1, changed); err != nil {
		return err
	}
	copy(d.last.Pix, d.next.Pix)
	return nil
}

// calculateDiff returns the bounding box, in pixels, of the changes between
// last and next, or (1, 0, 0, 0) when nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minRow, maxRow int) {
	width, height := d.rect.Dx(), d.rect.Dy()
	stride := d.next.Stride

	minCol, maxCol = width, -1
	minRow, maxRow = height, -1
	for y := 0; y < height; y++ {
		row := y * stride
		prev, cur := d.last.Pix[row:row+stride], d.next.Pix[row:row+stride]
		if bytes.Equal(prev, cur) {
			continue
		}
		minRow = min(minRow, y)
		maxRow = max(maxRow, y)
		for x := 0; x < width; x++ {
			if prev[2*x] != cur[2*x] || prev[2*x+1] != cur[2*x+1] {
				minCol = min(minCol, x)
				maxCol = max(maxCol, x)
			}
		}
	}
	if maxCol < 0 {
		return 1, 0, 0, 0
	}
	return minCol, maxCol, minRow, maxRow
}

// extractRegion copies the pixel data of a rectangular region of next.
func (d *Dev) extractRegion(minCol, maxCol, minRow, maxRow int) []byte {
	rowBytes := (maxCol - minCol + 1) * 2
	result := make([]byte, 0, rowBytes*(maxRow-minRow+1))
	for y := minRow; y <= maxRow; y++ {
		start := d.next.PixOffset(minCol, y)
		result = append(result, d.next.Pix[start:start+rowBytes]...)
	}
	return result
}

// Invert toggles color inversion. The panel runs inverted by default
// (see init), so inverting sends INVOFF.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("st7789: halted")
	}
	if invert {
		return d.command(cmdINVOFF)
	}
	return d.command(cmdINVON)
}

// Halt turns the panel and its backlight off.
// After calling Halt, the display will not accept further frames.
func (d *Dev) Halt() error {
	d.halted = true
	err := d.command(cmdDISPOFF)
	if d.bl != nil {
		err = errors.Join(err, d.bl.Out(gpio.Low))
	}
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
