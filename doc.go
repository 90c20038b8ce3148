// Package journeyclock renders a clock above a line of text that scrolls
// across a small color display over a long, fixed journey.
//
// The whole text passes the screen exactly once between the start and the
// end of the journey. Its position advances in proportion to the elapsed
// time, with a sub-character pixel shift so that the scroll is smooth even
// when a single character takes hours to cross the screen.
//
// # Layout
//
// NewLayout runs once at startup. It fits the clock font to the canvas,
// centers the "HH:MM" string, measures the text columns and pads the text
// on the left so that the first frame starts blank:
//
//	ff, _ := journeyclock.LoadFontFile("/usr/share/fonts/truetype/liberation2/LiberationMono-Bold.ttf")
//	text, _ := journeyclock.LoadScrollText("lotr.txt")
//	journey, _ := journeyclock.NewJourney(journeyclock.StartNow, time.Now())
//	l, _ := journeyclock.NewLayout(240, 240, text, ff, journey)
//
// # Frames
//
// Tick is a pure function of the layout and the time. It returns the text
// to draw and where; Draw paints it on a canvas:
//
//	frame := l.Tick(time.Now())
//	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
//	l.Draw(canvas, frame)
//
// Run does this every 100ms and hands each canvas to a Display, such as
// an st7789.Dev, rotated by 180 degrees.
//
// # Journeys
//
// The nominal journey runs from Sep 23 08:00 to Mar 25 20:00 of the
// following year. In StartNow mode only its duration is kept and the
// journey starts when the program does; Calendar mode uses the dates.
package journeyclock
