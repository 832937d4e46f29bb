package attr

import (
	"fmt"
	"strings"

	"pkt.systems/mosaic/internal/errs"
)

// Color is one of the 16 named ANSI colours, or Default/Transparent.
type Color uint8

// Named colours, in the conventional PC text-mode order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White

	Default     Color = 0x10
	Transparent Color = 0x20
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan", "lightred", "lightmagenta", "yellow", "white",
}

// palette16 is the reference 0xARGB value of each named colour.
var palette16 = [16]uint16{
	0xf000, 0xf008, 0xf080, 0xf088, 0xf800, 0xf808, 0xf880, 0xfaaa,
	0xf555, 0xf55f, 0xf5f5, 0xf5ff, 0xff55, 0xff5f, 0xfff5, 0xffff,
}

// palette14 is palette16 reduced to the 14-bit field layout. It is computed
// once at package initialisation.
var palette14 = func() [16]uint16 {
	var out [16]uint16
	for i, c := range palette16 {
		out[i] = reduce(c)
	}
	return out
}()

// Valid reports whether c is a named colour, Default or Transparent.
func (c Color) Valid() bool {
	return c < 0x10 || c == Default || c == Transparent
}

// ARGB16 returns the reference 0xARGB value of an ANSI colour. Default and
// Transparent have no fixed value and return 0.
func (c Color) ARGB16() uint16 {
	if c < 0x10 {
		return palette16[c]
	}
	return 0
}

// RGB12 returns the reference 0xRGB value of an ANSI colour.
func (c Color) RGB12() uint16 {
	return c.ARGB16() & 0x0fff
}

func (c Color) String() string {
	switch {
	case c < 0x10:
		return colorNames[c]
	case c == Default:
		return "default"
	case c == Transparent:
		return "transparent"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor looks up a colour by its case-insensitive name.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "default":
		return Default, nil
	case "transparent":
		return Transparent, nil
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q: %w", name, errs.ErrInvalidArgument)
}
