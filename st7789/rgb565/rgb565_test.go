package rgb565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", RGB565{C: 0x0000}, 0, 0, 0},
		{"white", RGB565{C: 0xFFFF}, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", RGB565{C: 0xF800}, 0xFFFF, 0, 0},
		{"green", RGB565{C: 0x07E0}, 0, 0xFFFF, 0},
		{"blue", RGB565{C: 0x001F}, 0, 0, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)", r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  uint16
	}{
		{"passthrough", RGB565{C: 0x1234}, 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"gray", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 0x8C51},
		{"gray16", color.Gray16{Y: 0xFFFF}, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(RGB565)
			if got.C != tt.want {
				t.Errorf("Model.Convert(%v) = %#04x, want %#04x", tt.input, got.C, tt.want)
			}
		})
	}
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x240", image.Rect(0, 0, 240, 240), 480, 115200},
		{"odd width", image.Rect(0, 0, 3, 2), 6, 12},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
		{"empty", image.Rect(0, 0, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImageByteOrder(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 1))
	img.SetRGB565(0, 0, RGB565{C: 0xF800})
	img.SetRGB565(1, 0, RGB565{C: 0x07E0})

	want := []byte{0xF8, 0x00, 0x07, 0xE0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %#02x, want %#02x", i, img.Pix[i], b)
		}
	}
}

func TestImageSetAt(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.White)

	c, ok := img.At(1, 1).(RGB565)
	if !ok {
		t.Fatalf("At(1, 1) returned %T, want RGB565", img.At(1, 1))
	}
	if c.C != 0xFFFF {
		t.Errorf("At(1, 1) = %#04x, want 0xffff", c.C)
	}
	if got := img.RGB565At(0, 0); got.C != 0 {
		t.Errorf("RGB565At(0, 0) = %#04x, want 0", got.C)
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))

	img.SetRGB565(-1, 0, RGB565{C: 0xFFFF})
	img.SetRGB565(2, 0, RGB565{C: 0xFFFF})
	img.Set(0, 2, color.White)

	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = %#02x after out-of-bounds writes, want 0", i, b)
		}
	}
	if got := img.RGB565At(5, 5); got.C != 0 {
		t.Errorf("RGB565At(5, 5) = %#04x, want 0", got.C)
	}
}

func TestImageOffsetRect(t *testing.T) {
	img := NewImage(image.Rect(100, 50, 102, 52))
	img.SetRGB565(101, 51, RGB565{C: 0xABCD})

	if off := img.PixOffset(101, 51); off != 6 {
		t.Errorf("PixOffset(101, 51) = %d, want 6", off)
	}
	if got := img.RGB565At(101, 51); got.C != 0xABCD {
		t.Errorf("RGB565At(101, 51) = %#04x, want 0xabcd", got.C)
	}
}

func TestImageDrawCompat(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x00, 0x00, 0xFF, 0xFF}), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGB565At(x, y); got.C != 0x001F {
				t.Fatalf("RGB565At(%d, %d) = %#04x, want 0x001f", x, y, got.C)
			}
		}
	}
}
