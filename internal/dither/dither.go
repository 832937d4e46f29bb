// Package dither converts bitmaps into coloured glyphs on a canvas.
//
// A Dither holds the source bitmap layout and the rendering options. It is
// configured once and may then be applied to any number of canvases. Setters
// validate their input and leave the previous configuration untouched on
// error.
package dither

import (
	"fmt"
	"math"

	"pkt.systems/mosaic/internal/errs"
)

// PaletteSize is the number of entries of each palette table.
const PaletteSize = 256

// Dither is a configured bitmap converter.
type Dither struct {
	layout layout

	red, green, blue, alpha [PaletteSize]uint16

	gamma    float64
	gammaTab [4096]uint16
	invert   bool

	brightness float64
	contrast   float64

	antialias Antialias
	colorMode ColorMode
	charset   Charset
	algorithm Algorithm
	seed      uint64
}

// New creates a Dither for bitmaps of the given format with default
// options: prefilter antialiasing, full16 colour, ascii glyphs and
// Floyd-Steinberg dithering. Palette formats start with a grey ramp.
func New(f Format) (*Dither, error) {
	l, err := newLayout(f)
	if err != nil {
		return nil, err
	}
	d := &Dither{
		layout:     l,
		brightness: 1,
		contrast:   1,
		antialias:  DefaultAntialias,
		colorMode:  DefaultColorMode,
		charset:    DefaultCharset,
		algorithm:  DefaultAlgorithm,
	}
	for i := range PaletteSize {
		v := uint16(i * 0xfff / (PaletteSize - 1))
		d.red[i], d.green[i], d.blue[i], d.alpha[i] = v, v, v, 0xfff
	}
	d.setGamma(1)
	return d, nil
}

// Format returns the bitmap format, with Pitch and ByteOrder resolved.
func (d *Dither) Format() Format {
	return d.layout.Format
}

// SetPalette installs the colour tables used by palette formats. Each table
// must hold PaletteSize 12-bit values.
func (d *Dither) SetPalette(red, green, blue, alpha []uint32) error {
	if !d.layout.palette {
		return fmt.Errorf("set palette on a %d-bit masked format: %w", d.layout.BPP, errs.ErrInvalidArgument)
	}
	tables := [4][]uint32{red, green, blue, alpha}
	for _, t := range tables {
		if len(t) != PaletteSize {
			return fmt.Errorf("palette table has %d entries, want %d: %w", len(t), PaletteSize, errs.ErrInvalidArgument)
		}
		for i, v := range t {
			if v > 0xfff {
				return fmt.Errorf("palette entry %d = %#x exceeds 0xfff: %w", i, v, errs.ErrInvalidArgument)
			}
		}
	}
	for i := range PaletteSize {
		d.red[i] = uint16(red[i])
		d.green[i] = uint16(green[i])
		d.blue[i] = uint16(blue[i])
		d.alpha[i] = uint16(alpha[i])
	}
	return nil
}

// Palette returns copies of the four palette tables.
func (d *Dither) Palette() (red, green, blue, alpha []uint32) {
	red, green, blue, alpha = make([]uint32, PaletteSize), make([]uint32, PaletteSize), make([]uint32, PaletteSize), make([]uint32, PaletteSize)
	for i := range PaletteSize {
		red[i], green[i], blue[i], alpha[i] = uint32(d.red[i]), uint32(d.green[i]), uint32(d.blue[i]), uint32(d.alpha[i])
	}
	return red, green, blue, alpha
}

// SetGamma sets the gamma correction. A negative value also inverts the
// output colours.
func (d *Dither) SetGamma(g float64) error {
	if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("gamma %v: %w", g, errs.ErrInvalidArgument)
	}
	d.invert = g < 0
	d.setGamma(math.Abs(g))
	return nil
}

func (d *Dither) setGamma(g float64) {
	d.gamma = g
	for i := range d.gammaTab {
		v := 4096 * math.Pow(float64(i)/4096, 1/g)
		d.gammaTab[i] = uint16(min(v, 4095))
	}
}

// Gamma returns the gamma correction, negative when inverting.
func (d *Dither) Gamma() float64 {
	if d.invert {
		return -d.gamma
	}
	return d.gamma
}

// Invert reports whether output colours are inverted.
func (d *Dither) Invert() bool {
	return d.invert
}

// SetBrightness sets the brightness multiplier. 1 is neutral.
func (d *Dither) SetBrightness(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
		return fmt.Errorf("brightness %v: %w", b, errs.ErrInvalidArgument)
	}
	d.brightness = b
	return nil
}

// Brightness returns the brightness multiplier.
func (d *Dither) Brightness() float64 {
	return d.brightness
}

// SetContrast sets the contrast multiplier around mid grey. 1 is neutral.
func (d *Dither) SetContrast(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return fmt.Errorf("contrast %v: %w", c, errs.ErrInvalidArgument)
	}
	d.contrast = c
	return nil
}

// Contrast returns the contrast multiplier.
func (d *Dither) Contrast() float64 {
	return d.contrast
}

// SetSeed seeds the random dithering algorithm.
func (d *Dither) SetSeed(seed uint64) {
	d.seed = seed
}

// Seed returns the random dithering seed.
func (d *Dither) Seed() uint64 {
	return d.seed
}

// SetAntialias selects the sampling mode.
func (d *Dither) SetAntialias(a Antialias) error {
	if !valid(antialiasChoices, a) {
		return fmt.Errorf("antialias mode %d: %w", a, errs.ErrInvalidArgument)
	}
	d.antialias = a
	return nil
}

// SetAntialiasName selects the sampling mode by key.
func (d *Dither) SetAntialiasName(name string) error {
	a, err := ParseAntialias(name)
	if err != nil {
		return err
	}
	d.antialias = a
	return nil
}

// Antialias returns the sampling mode.
func (d *Dither) Antialias() Antialias {
	return d.antialias
}

// SetColorMode selects the colour mode.
func (d *Dither) SetColorMode(m ColorMode) error {
	if !valid(colorChoices, m) {
		return fmt.Errorf("colour mode %d: %w", m, errs.ErrInvalidArgument)
	}
	d.colorMode = m
	return nil
}

// SetColorModeName selects the colour mode by key.
func (d *Dither) SetColorModeName(name string) error {
	m, err := ParseColorMode(name)
	if err != nil {
		return err
	}
	d.colorMode = m
	return nil
}

// ColorMode returns the colour mode.
func (d *Dither) ColorMode() ColorMode {
	return d.colorMode
}

// SetCharset selects the glyph ramp.
func (d *Dither) SetCharset(c Charset) error {
	if !valid(charsetChoices, c) {
		return fmt.Errorf("charset %d: %w", c, errs.ErrInvalidArgument)
	}
	d.charset = c
	return nil
}

// SetCharsetName selects the glyph ramp by key.
func (d *Dither) SetCharsetName(name string) error {
	c, err := ParseCharset(name)
	if err != nil {
		return err
	}
	d.charset = c
	return nil
}

// Charset returns the glyph ramp.
func (d *Dither) Charset() Charset {
	return d.charset
}

// SetAlgorithm selects the dithering algorithm.
func (d *Dither) SetAlgorithm(a Algorithm) error {
	if !valid(algorithmChoices, a) {
		return fmt.Errorf("algorithm %d: %w", a, errs.ErrInvalidArgument)
	}
	d.algorithm = a
	return nil
}

// SetAlgorithmName selects the dithering algorithm by key.
func (d *Dither) SetAlgorithmName(name string) error {
	a, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	d.algorithm = a
	return nil
}

// Algorithm returns the dithering algorithm.
func (d *Dither) Algorithm() Algorithm {
	return d.algorithm
}
