package dither

import "golang.org/x/text/encoding/charmap"

// Glyph ramps, from empty to full.
var (
	asciiGlyphs = []uint32{' ', '.', ':', ';', 't', '%', 'S', 'X', '@', '8', '?'}

	shadesGlyphs = cp437(0x20, 0xfa, 0xb0, 0xb1, 0xb2)

	blocksGlyphs = []uint32{' ', '▄', '█'}
)

func cp437(codes ...byte) []uint32 {
	out := make([]uint32, len(codes))
	for i, b := range codes {
		out[i] = uint32(charmap.CodePage437.DecodeByte(b))
	}
	return out
}

func glyphs(c Charset) []uint32 {
	switch c {
	case CharsetShades:
		return shadesGlyphs
	case CharsetBlocks:
		return blocksGlyphs
	}
	return asciiGlyphs
}
