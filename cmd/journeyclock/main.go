// Command journeyclock shows the time and a slowly scrolling text on an
// ST7789 panel.
//
// Hardware Setup:
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        3.3V
//	SCK        GPIO11 (SPI0 CLK)
//	MOSI       GPIO10 (SPI0 MOSI)
//	CS         GPIO8 (SPI0 CE0)
//	DC         GPIO25 (configurable)
//	BL         GPIO22 (configurable)
//
// Wiring, font, text and journey mode come from /etc/journeyclock.toml,
// see package config.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/flavioheleno/journeyclock"
	"github.com/flavioheleno/journeyclock/internal/config"
	"github.com/flavioheleno/journeyclock/st7789"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (default "+config.DefaultPath+")")
	verbose := flag.Bool("v", false, "log every frame")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := start(ctx, log, *configPath); err != nil {
		log.Error("journeyclock stopped", "err", err)
		return 1
	}
	return 0
}

func start(ctx context.Context, log *slog.Logger, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ff, err := journeyclock.LoadFontFile(cfg.FontPath)
	if err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	text, err := journeyclock.LoadScrollText(cfg.ResolveTextPath(filepath.Dir(exe)))
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initialize periph.io: %w", err)
	}

	port, err := spireg.Open(cfg.Display.SPI)
	if err != nil {
		return fmt.Errorf("open SPI port: %w", err)
	}
	defer port.Close()

	dc, err := pin(cfg.Display.DC)
	if err != nil {
		return err
	}
	opts := &st7789.Opts{
		W:       cfg.Display.Width,
		H:       cfg.Display.Height,
		XOffset: cfg.Display.XOffset,
		YOffset: cfg.Display.YOffset,
		Hz:      physic.Frequency(cfg.Display.Hz) * physic.Hertz,
	}
	if cfg.Display.Reset != "" {
		if opts.RST, err = pin(cfg.Display.Reset); err != nil {
			return err
		}
	}
	if cfg.Display.Backlight != "" {
		if opts.BL, err = pin(cfg.Display.Backlight); err != nil {
			return err
		}
	}

	dev, err := st7789.NewSPI(port, dc, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Halt(); err != nil {
			log.Warn("halt display", "err", err)
		}
	}()

	// Landscape canvas: the panel's native dimensions swapped.
	width, height := dev.Bounds().Dy(), dev.Bounds().Dx()

	journey, err := journeyclock.NewJourney(cfg.Journey, time.Now())
	if err != nil {
		return err
	}
	layout, err := journeyclock.NewLayout(width, height, text, ff, journey)
	if err != nil {
		return err
	}
	defer layout.Close()

	log.Info("layout ready",
		"display", dev.String(),
		"clock_size", layout.ClockSize,
		"text_size", layout.TextSize,
		"visible_chars", layout.VisibleChars,
		"text_len", layout.TextLen(),
		"journey_mode", cfg.Journey.String(),
		"journey_start", journey.Start.Format(time.RFC3339),
		"journey_end", journey.End.Format(time.RFC3339),
	)

	return journeyclock.Run(ctx, layout, dev, journeyclock.RunOptions{
		Interval: cfg.PollInterval,
		Logger:   log,
	})
}

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %s not found", name)
	}
	return p, nil
}
