package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flavioheleno/journeyclock"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is everything the clock reads at startup.
type Config struct {
	FontPath     string
	TextPath     string
	Journey      journeyclock.JourneyMode
	PollInterval time.Duration
	Display      Display
}

// Display describes the panel wiring.
type Display struct {
	SPI       string // SPI port name, empty for the first one
	DC        string
	Reset     string // Empty when not wired
	Backlight string // Empty when not wired
	Hz        int64
	Width     int // Native panel width
	Height    int // Native panel height
	XOffset   int
	YOffset   int
}

const (
	DefaultPath = "/etc/journeyclock.toml"

	defaultFontPath     = "/usr/share/fonts/truetype/liberation2/LiberationMono-Bold.ttf"
	defaultTextPath     = "files/lotr.txt"
	defaultPollInterval = 100 * time.Millisecond
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		FontPath:     defaultFontPath,
		TextPath:     defaultTextPath,
		Journey:      journeyclock.StartNow,
		PollInterval: defaultPollInterval,
		Display: Display{
			DC:        "GPIO25",
			Backlight: "GPIO22",
			Hz:        64000000,
			Width:     240,
			Height:    240,
			YOffset:   80,
		},
	}
}

type rawConfig struct {
	FontPath       string `toml:"font_path"`
	TextPath       string `toml:"text_path"`
	Journey        string `toml:"journey"`
	PollIntervalMS int    `toml:"poll_interval_ms"`
	Display        struct {
		SPI       *string `toml:"spi"`
		DC        string  `toml:"dc"`
		Reset     *string `toml:"reset"`
		Backlight *string `toml:"backlight"`
		Hz        int64   `toml:"hz"`
		Width     int     `toml:"width"`
		Height    int     `toml:"height"`
		XOffset   *int    `toml:"x_offset"`
		YOffset   *int    `toml:"y_offset"`
	} `toml:"display"`
}

// Load parses the config at path, or DefaultPath when path is empty.
// A missing file yields Default.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.FontPath); v != "" {
		cfg.FontPath = v
	}
	if v := strings.TrimSpace(raw.TextPath); v != "" {
		cfg.TextPath = v
	}
	if v := strings.TrimSpace(raw.Journey); v != "" {
		mode, err := journeyclock.ParseJourneyMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
		cfg.Journey = mode
	}
	if raw.PollIntervalMS < 0 {
		return Config{}, fmt.Errorf("invalid config: poll_interval_ms must be positive, got %d", raw.PollIntervalMS)
	}
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}

	d := &cfg.Display
	rd := raw.Display
	if rd.SPI != nil {
		d.SPI = strings.TrimSpace(*rd.SPI)
	}
	if v := strings.TrimSpace(rd.DC); v != "" {
		d.DC = v
	}
	if rd.Reset != nil {
		d.Reset = strings.TrimSpace(*rd.Reset)
	}
	if rd.Backlight != nil {
		d.Backlight = strings.TrimSpace(*rd.Backlight)
	}
	if rd.Hz != 0 {
		d.Hz = rd.Hz
	}
	if rd.Width != 0 {
		d.Width = rd.Width
	}
	if rd.Height != 0 {
		d.Height = rd.Height
	}
	if rd.XOffset != nil {
		d.XOffset = *rd.XOffset
	}
	if rd.YOffset != nil {
		d.YOffset = *rd.YOffset
	}
	if d.Hz < 0 || d.Width < 0 || d.Height < 0 || d.XOffset < 0 || d.YOffset < 0 {
		return Config{}, errors.New("invalid config: display values must not be negative")
	}

	return cfg, nil
}

// ResolveTextPath returns TextPath, made absolute against dir when relative.
func (c Config) ResolveTextPath(dir string) string {
	if filepath.IsAbs(c.TextPath) {
		return c.TextPath
	}
	return filepath.Join(dir, c.TextPath)
}
