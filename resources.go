package journeyclock

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontFile is a parsed TrueType or OpenType font.
type FontFile struct {
	f *opentype.Font
}

var _ FontSource = (*FontFile)(nil)

// LoadFontFile reads and parses the font at path.
func LoadFontFile(path string) (*FontFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("journeyclock: load font: %w", err)
	}
	return ParseFont(data)
}

// ParseFont parses font data already in memory.
func ParseFont(data []byte) (*FontFile, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("journeyclock: parse font: %w", err)
	}
	return &FontFile{f: f}, nil
}

// Face returns a face where one point is one pixel.
func (ff *FontFile) Face(size int) (font.Face, error) {
	return opentype.NewFace(ff.f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadScrollText reads the whole scroll text at path.
func LoadScrollText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("journeyclock: load scroll text: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("journeyclock: load scroll text %s: %w", path, ErrEmptyText)
	}
	return string(data), nil
}
