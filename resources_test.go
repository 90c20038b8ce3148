package journeyclock

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomonobold"
)

func TestLoadFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomonobold.TTF, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ff, err := LoadFontFile(path)
	if err != nil {
		t.Fatalf("LoadFontFile() error = %v", err)
	}

	small, err := ff.Face(20)
	if err != nil {
		t.Fatal(err)
	}
	large, err := ff.Face(40)
	if err != nil {
		t.Fatal(err)
	}
	sw, sh, err := MeasureGlyph(small, ReferenceGlyph)
	if err != nil {
		t.Fatal(err)
	}
	lw, lh, err := MeasureGlyph(large, ReferenceGlyph)
	if err != nil {
		t.Fatal(err)
	}
	if sw <= 0 || sh <= 0 || lw <= sw || lh <= sh {
		t.Errorf("glyph sizes 20px=%dx%d 40px=%dx%d, want positive and growing", sw, sh, lw, lh)
	}
}

func TestLoadFontFileMissing(t *testing.T) {
	_, err := LoadFontFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFontFile() error = %v, want not exist", err)
	}
}

func TestParseFontInvalid(t *testing.T) {
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Error("ParseFont() should reject garbage")
	}
}

func TestLoadScrollText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(path, []byte("Three Rings\nfor the Elven-kings"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	text, err := LoadScrollText(path)
	if err != nil {
		t.Fatalf("LoadScrollText() error = %v", err)
	}
	if text != "Three Rings\nfor the Elven-kings" {
		t.Errorf("LoadScrollText() = %q", text)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadScrollText(empty); !errors.Is(err, ErrEmptyText) {
		t.Errorf("LoadScrollText(empty) error = %v, want ErrEmptyText", err)
	}

	if _, err := LoadScrollText(filepath.Join(dir, "missing.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadScrollText(missing) error = %v, want not exist", err)
	}
}
