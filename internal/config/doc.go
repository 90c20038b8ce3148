// Package config loads the optional TOML file that wires the clock to its
// hardware and resources.
//
// Every key is optional and blank values keep their defaults:
//
//	font_path        = "/usr/share/fonts/truetype/liberation2/LiberationMono-Bold.ttf"
//	text_path        = "files/lotr.txt"   # relative to the executable
//	journey          = "now"              # or "calendar"
//	poll_interval_ms = 100
//
//	[display]
//	spi       = ""        # first SPI port
//	dc        = "GPIO25"
//	reset     = ""        # not wired
//	backlight = "GPIO22"
//	hz        = 64000000
//	width     = 240
//	height    = 240
//	x_offset  = 0
//	y_offset  = 80
//
// A missing file is not an error. Malformed TOML and unknown journey
// modes are.
package config
