package journeyclock

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/font"
)

// ReferenceGlyph is measured to size both fonts. The fonts are monospace,
// so any glyph gives the column width.
const ReferenceGlyph = 'a'

// ClockLayout is the clock string template, used to center the clock.
const ClockLayout = "03:04"

// ErrEmptyText is returned when there is nothing to scroll.
var ErrEmptyText = errors.New("journeyclock: scroll text is empty")

// ErrNoGlyph is returned when a face cannot measure the reference glyph.
var ErrNoGlyph = errors.New("journeyclock: reference glyph missing from font")

// FontSource yields faces of one typeface at a given pixel size.
type FontSource interface {
	Face(size int) (font.Face, error)
}

// Layout holds everything computed once at startup and needed by every
// tick. It must not be modified after NewLayout returns.
type Layout struct {
	// Canvas size, landscape
	Width  int
	Height int

	// Clock font, fitted in NewLayout
	ClockFace       font.Face
	ClockSize       int
	ClockCharWidth  int
	ClockCharHeight int
	ClockX          float64
	ClockY          float64

	// Scroll text font
	TextFace       font.Face
	TextSize       int
	TextCharWidth  int
	TextCharHeight int
	TextY          float64

	// VisibleChars is the number of text columns that cover the canvas.
	VisibleChars int

	Journey Journey

	text []rune // padded scroll text
}

// NewLayout sizes the fonts for a width×height canvas, pads text and
// checks the journey.
func NewLayout(width, height int, text string, src FontSource, journey Journey) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("journeyclock: invalid canvas size %dx%d", width, height)
	}
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := journey.Validate(); err != nil {
		return nil, err
	}

	l := &Layout{Width: width, Height: height, Journey: journey}

	var err error
	l.TextSize = max(height/6, 1)
	l.TextFace, l.TextCharWidth, l.TextCharHeight, err = openMeasured(src, l.TextSize)
	if err != nil {
		return nil, err
	}
	if l.TextCharWidth <= 0 {
		return nil, fmt.Errorf("journeyclock: text font of size %d has no width", l.TextSize)
	}

	if err := l.fitClock(src); err != nil {
		return nil, err
	}

	l.ClockX = float64(width)/2 - float64(l.ClockCharWidth*len(ClockLayout))/2
	l.ClockY = float64(height)/3 - float64(l.ClockCharHeight)/2

	l.VisibleChars = int(math.Ceil(float64(width) / float64(l.TextCharWidth)))
	l.text = []rune(strings.Repeat(" ", l.VisibleChars-1) + text)
	l.TextY = float64(height)*5/6 - float64(l.TextCharHeight)/2

	return l, nil
}

// fitClock shrinks the clock font one size at a time, starting from a
// third of the height, for as long as the reference glyph is both at least
// a sixth of the height tall and a seventh of the width wide.
func (l *Layout) fitClock(src FontSource) error {
	idealHeight := l.Height / 6
	idealWidth := l.Width / 7

	size := max(l.Height/3, 1)
	face, w, h, err := openMeasured(src, size)
	if err != nil {
		return err
	}
	for h >= idealHeight && w >= idealWidth && size > 1 {
		face.Close()
		size--
		face, w, h, err = openMeasured(src, size)
		if err != nil {
			return err
		}
	}

	l.ClockFace = face
	l.ClockSize = size
	l.ClockCharWidth = w
	l.ClockCharHeight = h
	return nil
}

func openMeasured(src FontSource, size int) (font.Face, int, int, error) {
	face, err := src.Face(size)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("journeyclock: open face of size %d: %w", size, err)
	}
	w, h, err := MeasureGlyph(face, ReferenceGlyph)
	if err != nil {
		face.Close()
		return nil, 0, 0, err
	}
	return face, w, h, nil
}

// MeasureGlyph returns the advance width of r and its height from the top
// of the line (the ascent) down to the lowest point of the glyph.
func MeasureGlyph(face font.Face, r rune) (width, height int, err error) {
	advance, ok := face.GlyphAdvance(r)
	if !ok {
		return 0, 0, ErrNoGlyph
	}
	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return 0, 0, ErrNoGlyph
	}
	return advance.Round(), (face.Metrics().Ascent + bounds.Max.Y).Ceil(), nil
}

// TextLen returns the length of the padded scroll text in characters.
func (l *Layout) TextLen() int {
	return len(l.text)
}

// ScrollText returns the padded scroll text.
func (l *Layout) ScrollText() string {
	return string(l.text)
}

// Close releases both faces.
func (l *Layout) Close() error {
	return errors.Join(l.ClockFace.Close(), l.TextFace.Close())
}
