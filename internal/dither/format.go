package dither

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"pkt.systems/mosaic/internal/errs"
)

// Format describes the layout of a source bitmap.
//
// With all masks zero and BPP of 8 or less the pixels are palette indices.
// Otherwise every pixel is a BPP-bit integer and each channel is extracted
// with its mask. Pixels narrower than a byte are packed most significant bit
// first.
type Format struct {
	BPP    int
	Width  int
	Height int
	// Pitch is the number of bytes per row. Zero means tightly packed.
	Pitch int

	RMask uint32
	GMask uint32
	BMask uint32
	AMask uint32

	// ByteOrder applies to 16, 24 and 32-bit pixels. Nil means little
	// endian.
	ByteOrder binary.ByteOrder
}

// channel extracts a mask from a pixel value and scales it to 12 bits.
type channel struct {
	mask  uint32
	shift int
	max   uint32
}

func newChannel(mask uint32) channel {
	if mask == 0 {
		return channel{}
	}
	shift := bits.TrailingZeros32(mask)
	return channel{mask: mask, shift: shift, max: mask >> shift}
}

func (c channel) value(v uint32) int {
	if c.max == 0 {
		return 0
	}
	return int(uint64((v&c.mask)>>c.shift) * 0xfff / uint64(c.max))
}

// layout is a validated Format.
type layout struct {
	Format
	palette  bool
	rowBytes int
	bigEnd   bool
	r, g, b  channel
	a        channel
}

func validBPP(bpp int) bool {
	switch bpp {
	case 1, 2, 4, 8, 16, 24, 32:
		return true
	}
	return false
}

func contiguous(mask uint32) bool {
	if mask == 0 {
		return true
	}
	m := mask >> bits.TrailingZeros32(mask)
	return m&(m+1) == 0
}

func newLayout(f Format) (layout, error) {
	if !validBPP(f.BPP) {
		return layout{}, fmt.Errorf("bits per pixel %d: %w", f.BPP, errs.ErrInvalidArgument)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return layout{}, fmt.Errorf("bitmap size %dx%d: %w", f.Width, f.Height, errs.ErrInvalidArgument)
	}
	l := layout{Format: f}
	l.rowBytes = (f.Width*f.BPP + 7) / 8
	if l.Pitch == 0 {
		l.Pitch = l.rowBytes
	}
	if l.Pitch < l.rowBytes {
		return layout{}, fmt.Errorf("pitch %d shorter than row of %d bytes: %w", f.Pitch, l.rowBytes, errs.ErrInvalidArgument)
	}
	if l.ByteOrder == nil {
		l.ByteOrder = binary.LittleEndian
	}
	var probe [2]byte
	l.ByteOrder.PutUint16(probe[:], 1)
	l.bigEnd = probe[1] == 1

	masks := [...]uint32{f.RMask, f.GMask, f.BMask, f.AMask}
	limit := uint32(1<<f.BPP - 1)
	if f.BPP == 32 {
		limit = ^uint32(0)
	}
	masked := false
	for _, m := range masks {
		if !contiguous(m) || m&^limit != 0 {
			return layout{}, fmt.Errorf("channel mask %#x for %d bits per pixel: %w", m, f.BPP, errs.ErrInvalidArgument)
		}
		masked = masked || m != 0
	}
	if !masked {
		if f.BPP > 8 {
			return layout{}, fmt.Errorf("%d bits per pixel without channel masks: %w", f.BPP, errs.ErrInvalidArgument)
		}
		l.palette = true
	}
	l.r, l.g, l.b, l.a = newChannel(f.RMask), newChannel(f.GMask), newChannel(f.BMask), newChannel(f.AMask)
	return l, nil
}

// size returns the minimum buffer length for a bitmap.
func (l *layout) size() int {
	return l.Pitch*(l.Height-1) + l.rowBytes
}

// hasAlpha reports whether transparent pixels are possible.
func (l *layout) hasAlpha() bool {
	return l.palette || l.a.mask != 0
}

// pixel returns the raw value of the pixel at (x, y).
func (l *layout) pixel(pixels []byte, x, y int) uint32 {
	row := pixels[y*l.Pitch:]
	switch l.BPP {
	case 1, 2, 4:
		bit := x * l.BPP
		shift := 8 - l.BPP - bit%8
		return uint32(row[bit/8]>>shift) & (1<<l.BPP - 1)
	case 8:
		return uint32(row[x])
	case 16:
		return uint32(l.ByteOrder.Uint16(row[x*2:]))
	case 24:
		p := row[x*3 : x*3+3]
		if l.bigEnd {
			return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
		return uint32(p[2])<<16 | uint32(p[1])<<8 | uint32(p[0])
	default:
		return l.ByteOrder.Uint32(row[x*4:])
	}
}
