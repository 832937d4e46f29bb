// Package attr implements the packed 32-bit cell attribute.
//
// Layout, most significant bit first:
//
//	31..18  background: 3 bits alpha, 4 red, 4 green, 3 blue
//	17..4   foreground: same 14-bit layout
//	 3..0   style flags (bold, italic, underline, blink)
//
// A 14-bit colour field whose value is 0x40|n holds the named ANSI colour n
// (including Default and Transparent); any other value is a truecolour.
// The bit layout is a stable interchange format and must not change.
package attr

// Attr is a packed cell attribute.
type Attr uint32

// Style is a set of style flags stored in the low 4 bits of an Attr.
type Style uint32

// Style flags.
const (
	Bold      Style = 0x01
	Italic    Style = 0x02
	Underline Style = 0x04
	Blink     Style = 0x08

	StyleMask Style = 0x0f
)

const (
	ansiFlag   = 0x40
	fieldMask  = 0x3fff
	fgShift    = 4
	bgShift    = 18
	colorsMask = ^Attr(StyleMask)
)

// DefaultAttr is the attribute of a freshly created canvas.
var DefaultAttr = PackANSI(Default, Transparent, 0)

// PackANSI builds an attribute from two named colours. Invalid colours are
// replaced with Default.
func PackANSI(fg, bg Color, style Style) Attr {
	if !fg.Valid() {
		fg = Default
	}
	if !bg.Valid() {
		bg = Default
	}
	return Attr(uint32(bg|ansiFlag)<<bgShift | uint32(fg|ansiFlag)<<fgShift | uint32(style&StyleMask))
}

// PackARGB builds an attribute from two 16-bit 0xARGB colours. Each colour is
// reduced to the 14-bit field layout; values below 0x100 are nudged so they
// cannot collide with the named colour range.
func PackARGB(fg, bg uint16, style Style) Attr {
	return Attr(uint32(reduce(bg))<<bgShift | uint32(reduce(fg))<<fgShift | uint32(style&StyleMask))
}

func reduce(argb uint16) uint16 {
	if argb < 0x100 {
		argb += 0x100
	}
	return (argb>>1)&0x7ff | (argb>>13)<<11
}

// expand widens a 14-bit field back to 0xARGB, replicating the top alpha
// bit into the low alpha bit.
func expand(field uint16) uint16 {
	a := field >> 11 & 0x7
	return (a<<1|a>>2)<<12 | (field<<1)&0x0fff
}

// Merge applies next on top of prev. A style-only value (below 0x10) keeps
// the colour bits of prev and replaces its style flags; anything else
// replaces prev wholesale.
func Merge(prev, next Attr) Attr {
	if next.StyleOnly() {
		return prev&colorsMask | next
	}
	return next
}

// StyleOnly reports whether a carries no colour bits.
func (a Attr) StyleOnly() bool {
	return a < 0x10
}

// Fg returns the 14-bit foreground field.
func (a Attr) Fg() uint16 {
	return uint16(a>>fgShift) & fieldMask
}

// Bg returns the 14-bit background field.
func (a Attr) Bg() uint16 {
	return uint16(a>>bgShift) & fieldMask
}

// Style returns the style flags.
func (a Attr) Style() Style {
	return Style(a) & StyleMask
}

// WithStyle returns a with its style flags replaced.
func (a Attr) WithStyle(s Style) Attr {
	return a&colorsMask | Attr(s&StyleMask)
}

// Swap exchanges the foreground and background fields.
func (a Attr) Swap() Attr {
	return Attr(a.Fg())<<bgShift | Attr(a.Bg())<<fgShift | a&Attr(StyleMask)
}

// ANSIFg returns the foreground as a named colour. Truecolour values are
// mapped to their nearest ANSI colour; the result may be Default or
// Transparent.
func (a Attr) ANSIFg() Color {
	return NearestANSI(a.Fg())
}

// ANSIBg returns the background as a named colour, see ANSIFg.
func (a Attr) ANSIBg() Color {
	return NearestANSI(a.Bg())
}

// ANSI returns the foreground and background as plain ANSI indices. Default
// and Transparent resolve to LightGray for the foreground and Black for the
// background.
func (a Attr) ANSI() (fg, bg Color) {
	fg = a.ANSIFg()
	if fg >= Default {
		fg = LightGray
	}
	bg = a.ANSIBg()
	if bg >= Default {
		bg = Black
	}
	return fg, bg
}

// ANSIByte packs ANSI into a single byte, background in the high nibble.
func (a Attr) ANSIByte() uint8 {
	fg, bg := a.ANSI()
	return uint8(fg) | uint8(bg)<<4
}

// RGB12Fg returns the foreground as 0xRGB.
func (a Attr) RGB12Fg() uint16 {
	return rgb12(a.Fg(), LightGray)
}

// RGB12Bg returns the background as 0xRGB.
func (a Attr) RGB12Bg() uint16 {
	return rgb12(a.Bg(), Black)
}

func rgb12(field uint16, def Color) uint16 {
	if c, ok := named(field); ok {
		switch c {
		case Default:
			return palette16[def] & 0x0fff
		case Transparent:
			return 0x0fff
		}
		return palette16[c] & 0x0fff
	}
	return (field << 1) & 0x0fff
}

// ARGB64 returns both colours with 8 bits per channel, in the order
// background alpha, red, green, blue, then foreground alpha, red, green,
// blue. Transparent is fully transparent white.
func (a Attr) ARGB64() [8]uint8 {
	var out [8]uint8
	bg := argb16(a.Bg(), Black)
	fg := argb16(a.Fg(), LightGray)
	for i := 0; i < 4; i++ {
		shift := uint(12 - 4*i)
		out[i] = nibble8(bg >> shift)
		out[4+i] = nibble8(fg >> shift)
	}
	return out
}

func argb16(field uint16, def Color) uint16 {
	if c, ok := named(field); ok {
		switch c {
		case Default:
			return palette16[def]
		case Transparent:
			return 0x0fff
		}
		return palette16[c]
	}
	return expand(field)
}

func nibble8(v uint16) uint8 {
	n := uint8(v & 0xf)
	return n<<4 | n
}

// named decodes a field holding a named colour.
func named(field uint16) (Color, bool) {
	switch {
	case field >= ansiFlag && field < ansiFlag|0x10:
		return Color(field ^ ansiFlag), true
	case field == uint16(Default|ansiFlag):
		return Default, true
	case field == uint16(Transparent|ansiFlag):
		return Transparent, true
	}
	return 0, false
}

// NearestANSI maps a 14-bit colour field to a named colour. Named fields are
// decoded directly, nearly transparent values yield Transparent, and
// everything else is matched against the reference palette by unweighted
// squared distance over 4-bit channels.
func NearestANSI(field uint16) Color {
	if c, ok := named(field); ok {
		return c
	}
	if field < 0x0fff {
		return Transparent
	}
	best := Default
	dist := 0x3fff
	for i, ref := range palette14 {
		d := sq(int(ref>>7&0xf) - int(field>>7&0xf))
		d += sq(int(ref>>3&0xf) - int(field>>3&0xf))
		d += sq(int(ref<<1&0xf) - int(field<<1&0xf))
		if d < dist {
			dist = d
			best = Color(i)
		}
	}
	return best
}

func sq(v int) int {
	return v * v
}
