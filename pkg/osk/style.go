package osk

import (
	"fmt"
	"image/color"
)

// Font names the typeface used for key captions. An empty Path means the
// host's default font.
type Font struct {
	Path string
	Size int
}

// Style is the appearance shared by every rendered key. Changing it never
// recompiles the layout.
type Style struct {
	BackColor    color.RGBA // keyboard background
	KeyBackColor color.RGBA // key fill
	ForeColor    color.RGBA // key caption
	BorderColor  color.RGBA
	Font         Font
}

func DefaultStyle() Style {
	return Style{
		BackColor:    HexToColor(0x000000),
		KeyBackColor: HexToColor(0x32323C),
		ForeColor:    HexToColor(0xFFFFFF),
		BorderColor:  HexToColor(0x464650),
		Font:         Font{Size: 44},
	}
}

func HexToColor(hex uint32) color.RGBA {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ColorToHex formats c as #RRGGBB.
func ColorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
