package dither

import (
	"fmt"
	"strings"

	"pkt.systems/mosaic/internal/errs"
)

// Antialias selects how source pixels are sampled for a cell.
type Antialias int

const (
	// AntialiasNone samples the pixel nearest to the cell centre.
	AntialiasNone Antialias = iota
	// AntialiasPrefilter averages every pixel under the cell.
	AntialiasPrefilter
)

// ColorMode selects the colours available to the output.
type ColorMode int

const (
	ColorMono ColorMode = iota
	ColorGray
	Color8
	Color16
	ColorFullGray
	ColorFull8
	ColorFull16
)

// Charset selects the glyph ramp.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetShades
	CharsetBlocks
)

// Algorithm selects the dithering method.
type Algorithm int

const (
	AlgorithmNone Algorithm = iota
	AlgorithmOrdered2
	AlgorithmOrdered4
	AlgorithmOrdered8
	AlgorithmRandom
	AlgorithmFSteinberg
)

// Option is a selectable value and its human readable description.
type Option struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

type choice[T comparable] struct {
	key   string
	desc  string
	value T
}

var antialiasChoices = []choice[Antialias]{
	{"none", "No antialiasing", AntialiasNone},
	{"prefilter", "Prefilter", AntialiasPrefilter},
}

var colorChoices = []choice[ColorMode]{
	{"mono", "white on black", ColorMono},
	{"gray", "grayscale on black", ColorGray},
	{"8", "8 colours on black", Color8},
	{"16", "16 colours on black", Color16},
	{"fullgray", "full grayscale", ColorFullGray},
	{"full8", "full 8 colours", ColorFull8},
	{"full16", "full 16 colours", ColorFull16},
}

var charsetChoices = []choice[Charset]{
	{"ascii", "plain ASCII", CharsetASCII},
	{"shades", "CP437 shades", CharsetShades},
	{"blocks", "Unicode blocks", CharsetBlocks},
}

var algorithmChoices = []choice[Algorithm]{
	{"none", "no dithering", AlgorithmNone},
	{"ordered2", "2x2 ordered dithering", AlgorithmOrdered2},
	{"ordered4", "4x4 ordered dithering", AlgorithmOrdered4},
	{"ordered8", "8x8 ordered dithering", AlgorithmOrdered8},
	{"random", "random dithering", AlgorithmRandom},
	{"fstein", "Floyd-Steinberg dithering", AlgorithmFSteinberg},
}

// Defaults applied by New and selected by the "default" key.
const (
	DefaultAntialias = AntialiasPrefilter
	DefaultColorMode = ColorFull16
	DefaultCharset   = CharsetASCII
	DefaultAlgorithm = AlgorithmFSteinberg
)

func lookup[T comparable](kind string, table []choice[T], def T, name string) (T, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "default") {
		return def, nil
	}
	for _, c := range table {
		if strings.EqualFold(c.key, name) {
			return c.value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q: %w", kind, name, errs.ErrInvalidArgument)
}

func keyOf[T comparable](table []choice[T], v T) string {
	for _, c := range table {
		if c.value == v {
			return c.key
		}
	}
	return fmt.Sprintf("unknown(%d)", any(v))
}

func valid[T comparable](table []choice[T], v T) bool {
	for _, c := range table {
		if c.value == v {
			return true
		}
	}
	return false
}

func list[T comparable](table []choice[T]) []Option {
	out := make([]Option, 0, len(table))
	for _, c := range table {
		out = append(out, Option{Key: c.key, Description: c.desc})
	}
	return out
}

// ParseAntialias looks up an antialiasing mode by key.
func ParseAntialias(name string) (Antialias, error) {
	return lookup("antialias mode", antialiasChoices, DefaultAntialias, name)
}

// ParseColorMode looks up a colour mode by key.
func ParseColorMode(name string) (ColorMode, error) {
	return lookup("colour mode", colorChoices, DefaultColorMode, name)
}

// ParseCharset looks up a glyph set by key.
func ParseCharset(name string) (Charset, error) {
	return lookup("charset", charsetChoices, DefaultCharset, name)
}

// ParseAlgorithm looks up a dithering algorithm by key.
func ParseAlgorithm(name string) (Algorithm, error) {
	return lookup("algorithm", algorithmChoices, DefaultAlgorithm, name)
}

// AntialiasOptions lists the antialiasing modes.
func AntialiasOptions() []Option { return list(antialiasChoices) }

// ColorModeOptions lists the colour modes.
func ColorModeOptions() []Option { return list(colorChoices) }

// CharsetOptions lists the glyph sets.
func CharsetOptions() []Option { return list(charsetChoices) }

// AlgorithmOptions lists the dithering algorithms.
func AlgorithmOptions() []Option { return list(algorithmChoices) }

func (a Antialias) String() string { return keyOf(antialiasChoices, a) }
func (m ColorMode) String() string { return keyOf(colorChoices, m) }
func (c Charset) String() string   { return keyOf(charsetChoices, c) }
func (a Algorithm) String() string { return keyOf(algorithmChoices, a) }
