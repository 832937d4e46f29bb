package dither

import (
	"encoding/binary"
	"image"
	"image/draw"
)

// RGBA32 is the format produced by FromImage: 32-bit little-endian pixels
// with red in the lowest byte and alpha in the highest.
func RGBA32(width, height int) Format {
	return Format{
		BPP:       32,
		Width:     width,
		Height:    height,
		Pitch:     width * 4,
		RMask:     0x000000ff,
		GMask:     0x0000ff00,
		BMask:     0x00ff0000,
		AMask:     0xff000000,
		ByteOrder: binary.LittleEndian,
	}
}

// FromImage converts img to a non-premultiplied RGBA pixel buffer and the
// matching format.
func FromImage(img image.Image) (Format, []byte) {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == b.Dx()*4 {
		return RGBA32(b.Dx(), b.Dy()), n.Pix
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return RGBA32(b.Dx(), b.Dy()), dst.Pix
}
