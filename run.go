package journeyclock

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"
)

// Rotation is applied to every frame on its way to the panel.
const Rotation = 180

const defaultInterval = 100 * time.Millisecond

// Display shows a finished frame, rotated counter-clockwise by degrees.
type Display interface {
	Present(img image.Image, degrees int) error
}

// RunOptions tune Run. The zero value is ready to use.
type RunOptions struct {
	Interval time.Duration    // Delay between frames (default 100ms)
	Now      func() time.Time // Clock (default time.Now)
	Logger   *slog.Logger     // Nil discards logs
}

// Run draws and presents a frame at every interval until ctx is done.
// The first presentation error stops the loop and is returned.
func Run(ctx context.Context, l *Layout, d Display, opts RunOptions) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		t := now()
		frame := l.Tick(t)
		l.Draw(canvas, frame)
		if err := d.Present(canvas, Rotation); err != nil {
			return fmt.Errorf("journeyclock: present frame: %w", err)
		}
		if log.Enabled(ctx, slog.LevelDebug) {
			w, ok := l.Window(t)
			log.Debug("frame presented", "clock", ClockString(t), "on_journey", ok, "position", w.Position)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
