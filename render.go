package journeyclock

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Ink is the color of the clock and the scroll text.
var Ink = color.RGBA{R: 0xFF, A: 0xFF}

// FontRole selects one of the two faces of a Layout.
type FontRole int

const (
	ClockFont FontRole = iota
	TextFont
)

// DrawText places Text with its top-left corner at (X, Y).
type DrawText struct {
	Font FontRole
	X, Y float64
	Text string
}

// Frame is what one tick draws on a cleared canvas, in order.
type Frame struct {
	Commands []DrawText
}

// Window is the part of the scroll text on screen at some instant.
type Window struct {
	Position float64 // Characters scrolled so far
	Start    int     // First character drawn
	End      int     // One past the last character drawn
	Offset   float64 // Horizontal pixel shift of the first character
}

// ClockString formats t on a 12-hour clock without AM/PM, e.g. "01:05".
func ClockString(t time.Time) string {
	return t.Format(ClockLayout)
}

// ScrollPosition maps journey progress to a character index into a text
// of n characters.
func ScrollPosition(n int, progress float64) float64 {
	return float64(n) * progress
}

// PixelOffset is the leftward shift for the fractional part of the scroll
// position.
func PixelOffset(frac float64, charWidth int) float64 {
	return -(float64(charWidth) * frac)
}

// Window returns the text window at now, or false outside the journey.
// One character past the visible columns is included so that the right
// edge stays covered while shifted, clamped to the end of the text.
func (l *Layout) Window(now time.Time) (Window, bool) {
	if !l.Journey.Contains(now) {
		return Window{}, false
	}
	pos := ScrollPosition(len(l.text), l.Journey.Progress(now))
	whole, frac := math.Modf(pos)

	end := min(int(whole)+l.VisibleChars+1, len(l.text))
	start := min(int(whole), end)
	return Window{
		Position: pos,
		Start:    start,
		End:      end,
		Offset:   PixelOffset(frac, l.TextCharWidth),
	}, true
}

// Tick computes the frame for now. It depends only on l and now.
func (l *Layout) Tick(now time.Time) Frame {
	f := Frame{Commands: []DrawText{{
		Font: ClockFont,
		X:    l.ClockX,
		Y:    l.ClockY,
		Text: ClockString(now),
	}}}
	if w, ok := l.Window(now); ok {
		f.Commands = append(f.Commands, DrawText{
			Font: TextFont,
			X:    w.Offset,
			Y:    l.TextY,
			Text: string(l.text[w.Start:w.End]),
		})
	}
	return f
}

// Draw clears dst to black and renders f onto it.
func (l *Layout) Draw(dst draw.Image, f Frame) {
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	for _, c := range f.Commands {
		face := l.face(c.Font)
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(Ink),
			Face: face,
			Dot: fixed.Point26_6{
				X: toFixed(c.X),
				Y: toFixed(c.Y) + face.Metrics().Ascent,
			},
		}
		d.DrawString(blankControls(c.Text))
	}
}

func (l *Layout) face(r FontRole) font.Face {
	if r == ClockFont {
		return l.ClockFace
	}
	return l.TextFace
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// blankControls keeps one column per character: newlines and tabs are
// drawn as spaces.
func blankControls(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
