// Package mosaic is a text-grid compositing engine. Programs draw characters
// with colour attributes into a Canvas, composite canvases onto each other,
// convert bitmaps into coloured glyphs with a Dither, and ask the canvas
// which rectangles changed since the last display refresh.
//
// The package re-exports the engine types from its internal packages and adds
// image loading, configuration and terminal rendering helpers.
package mosaic

import (
	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/canvas"
	"pkt.systems/mosaic/internal/dirty"
	"pkt.systems/mosaic/internal/dither"
)

// Canvas is a grid of cells holding one or more frames.
type Canvas = canvas.Canvas

// CanvasOption configures a Canvas at creation.
type CanvasOption = canvas.Option

// Attr is a packed cell attribute: two colours and style flags.
type Attr = attr.Attr

// Color is an ANSI colour index, Default or Transparent.
type Color = attr.Color

// Style is a set of style flags.
type Style = attr.Style

// Rect is a dirty rectangle in cell coordinates.
type Rect = dirty.Rect

// Dither converts bitmaps into glyphs on a canvas.
type Dither = dither.Dither

// Format describes the memory layout of a bitmap.
type Format = dither.Format

// DitherOption is a selectable dither setting and its description.
type DitherOption = dither.Option

// Colours.
const (
	Black        = attr.Black
	Blue         = attr.Blue
	Green        = attr.Green
	Cyan         = attr.Cyan
	Red          = attr.Red
	Magenta      = attr.Magenta
	Brown        = attr.Brown
	LightGray    = attr.LightGray
	DarkGray     = attr.DarkGray
	LightBlue    = attr.LightBlue
	LightGreen   = attr.LightGreen
	LightCyan    = attr.LightCyan
	LightRed     = attr.LightRed
	LightMagenta = attr.LightMagenta
	Yellow       = attr.Yellow
	White        = attr.White
	Default      = attr.Default
	Transparent  = attr.Transparent
)

// Style flags.
const (
	Bold      = attr.Bold
	Italic    = attr.Italic
	Underline = attr.Underline
	Blink     = attr.Blink
)

const (
	// Continuation marks the right half of a fullwidth character.
	Continuation = canvas.Continuation
	// MaxDirtyRects is the number of dirty rectangles a canvas keeps.
	MaxDirtyRects = dirty.MaxRects
)

// NewCanvas creates a canvas of width x height cells filled with spaces.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	return canvas.New(width, height, opts...)
}

// WithLogger makes the canvas log lifecycle events to logger.
var WithLogger = canvas.WithLogger

// NewDither creates a Dither for bitmaps of the given format.
func NewDither(f Format) (*Dither, error) {
	return dither.New(f)
}

// RGBA32 returns the 32-bit RGBA format of a width x height bitmap.
func RGBA32(width, height int) Format {
	return dither.RGBA32(width, height)
}

// PackANSI packs two ANSI colours and a style into an Attr.
func PackANSI(fg, bg Color, style Style) Attr {
	return attr.PackANSI(fg, bg, style)
}

// PackARGB packs two 16-bit 0xARGB colours and a style into an Attr.
func PackARGB(fg, bg uint16, style Style) Attr {
	return attr.PackARGB(fg, bg, style)
}

// ParseColor returns the colour with the given name.
func ParseColor(name string) (Color, error) {
	return attr.ParseColor(name)
}

// IsFullwidth reports whether ch occupies two cells.
func IsFullwidth(ch uint32) bool {
	return canvas.IsFullwidth(ch)
}
