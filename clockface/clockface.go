// Package clockface draws clock readings onto a pixel display as two text lines: time above date.
package clockface

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/ajanata/drivers/ds3231"
)

type Face struct {
	display    drivers.Displayer
	font       *tinyfont.Font
	foreground color.RGBA
	background color.RGBA
}

type Config struct {
	// Font defaults to proggy TinySZ8pt7b, which fits a 128x32 OLED.
	Font       *tinyfont.Font
	Foreground color.RGBA
	Background color.RGBA
}

func New(display drivers.Displayer) *Face {
	return &Face{
		display:    display,
		font:       &proggy.TinySZ8pt7b,
		foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (f *Face) Configure(c Config) {
	if c.Font != nil {
		f.font = c.Font
	}
	if c.Foreground != (color.RGBA{}) {
		f.foreground = c.Foreground
	}
	f.background = c.Background
}

// Draw clears the display, writes the time and date centered horizontally and pushes the frame to the panel.
func (f *Face) Draw(fields ds3231.Fields) error {
	w, h := f.display.Size()
	for x := int16(0); x < w; x++ {
		for y := int16(0); y < h; y++ {
			f.display.SetPixel(x, y, f.background)
		}
	}

	text := fields.String()
	line := int16(f.font.YAdvance)
	// "HH:MM:SS DD/MM/YY" splits after the time
	f.writeCentered(text[:8], line)
	f.writeCentered(text[9:], 2*line)
	return f.display.Display()
}

func (f *Face) writeCentered(s string, y int16) {
	w, _ := f.display.Size()
	_, outer := tinyfont.LineWidth(f.font, s)
	x := (w - int16(outer)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(f.display, f.font, x, y, s, f.foreground)
}
