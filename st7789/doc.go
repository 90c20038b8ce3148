// Package st7789 controls a Sitronix ST7789 TFT LCD controller via SPI.
//
// The ST7789 drives 16-bit color panels of up to 240×320 pixels. Common
// breakouts expose a 240×240 or 135×240 window of the controller RAM, so
// the visible area is described by its size and its offset inside the RAM.
// This driver implements the display.Drawer interface from periph.io.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//	BL          → Optional: GPIO for the backlight
//
// # Basic Usage
//
//	host.Init()
//	port, _ := spireg.Open("")
//	dev, _ := st7789.NewSPI(port, gpioreg.ByName("GPIO25"), &st7789.Opts{
//		W:       240,
//		H:       240,
//		YOffset: 80,
//		BL:      gpioreg.ByName("GPIO22"),
//	})
//	defer dev.Halt()
//
//	img := image.NewRGBA(dev.Bounds())
//	// ... draw ...
//	dev.Present(img, 180)
//
// # Drawing Modes
//
// Draw composes src into the frame like draw.Draw does. Present replaces
// the whole frame with an image rotated counter-clockwise by 0, 90, 180 or
// 270 degrees. Both push only the smallest rectangle that changed since the
// previous frame.
//
// # Colors
//
// Pixels are RGB565, see package rgb565. Standard Go colors are converted
// automatically.
//
// # Datasheet
//
// https://www.rhydolabz.com/documents/33/ST7789.pdf
package st7789
