// Package render writes canvases to ANSI terminals. It reads the raw cell
// arrays and the dirty rectangle list the same way a display driver does.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/canvas"
	"pkt.systems/mosaic/internal/dirty"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiHome        = "\x1b[H"
	ansiReset       = "\x1b[0m"
)

// Source is the canvas surface read by the renderer. *canvas.Canvas
// implements it.
type Source interface {
	Size() (int, int)
	Chars() []uint32
	Attrs() []attr.Attr
	DirtyRects() []dirty.Rect
	ClearDirty()
}

// Options controls the colour encoding.
type Options struct {
	// TrueColor emits 24-bit SGR colours instead of the 16 ANSI colours.
	TrueColor bool
}

// Canvas repaints the whole canvas.
func Canvas(w io.Writer, src Source, opts Options) error {
	if src == nil {
		return nil
	}
	var b strings.Builder
	b.WriteString(ansiReset + ansiClearScreen + ansiHome)
	width, height := src.Size()
	for y := 0; y < height; y++ {
		writeSpan(&b, src, opts, 0, y, width)
	}
	b.WriteString(ansiReset)
	_, err := io.WriteString(w, b.String())
	return err
}

// Dirty repaints only the dirty rectangles of the canvas and then clears
// them.
func Dirty(w io.Writer, src Source, opts Options) error {
	if src == nil {
		return nil
	}
	rects := src.DirtyRects()
	if len(rects) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(ansiReset)
	for _, r := range rects {
		for y := r.Y; y < r.Y+r.H; y++ {
			writeSpan(&b, src, opts, r.X, y, r.W)
		}
	}
	b.WriteString(ansiReset)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	src.ClearDirty()
	return nil
}

// writeSpan writes n cells of row y starting at column x. A span starting
// on the right half of a fullwidth character is widened to include its left
// half.
func writeSpan(b *strings.Builder, src Source, opts Options, x, y, n int) {
	width, _ := src.Size()
	chars, attrs := src.Chars(), src.Attrs()
	row := y * width
	end := min(x+n, width)
	if x >= end {
		return
	}
	if x > 0 && chars[row+x] == canvas.Continuation {
		x--
	}
	fmt.Fprintf(b, "\x1b[%d;%dH", y+1, x+1)
	var current attr.Attr
	first := true
	for cx := x; cx < end; cx++ {
		ch := chars[row+cx]
		if ch == canvas.Continuation {
			continue
		}
		if a := attrs[row+cx]; first || a != current {
			b.WriteString(sgr(a, opts))
			current, first = a, false
		}
		r := rune(ch)
		if ch < 0x20 || ch == 0x7f || !utf8.ValidRune(r) {
			r = ' '
		}
		b.WriteRune(r)
	}
}

// sgrColor maps an ANSI colour index to the low digit of its SGR code.
var sgrColor = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

func sgr(a attr.Attr, opts Options) string {
	codes := []string{"0"}
	s := a.Style()
	if s&attr.Bold != 0 {
		codes = append(codes, "1")
	}
	if s&attr.Italic != 0 {
		codes = append(codes, "3")
	}
	if s&attr.Underline != 0 {
		codes = append(codes, "4")
	}
	if s&attr.Blink != 0 {
		codes = append(codes, "5")
	}
	codes = append(codes, colorCode(true, a, opts)...)
	codes = append(codes, colorCode(false, a, opts)...)
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCode(fg bool, a attr.Attr, opts Options) []string {
	c := a.ANSIBg()
	if fg {
		c = a.ANSIFg()
	}
	if c == attr.Default || c == attr.Transparent {
		if fg {
			return []string{"39"}
		}
		return []string{"49"}
	}
	if opts.TrueColor {
		v := a.RGB12Bg()
		if fg {
			v = a.RGB12Fg()
		}
		code := "48"
		if fg {
			code = "38"
		}
		return []string{
			code, "2",
			strconv.Itoa(int(v>>8&0xf) * 0x11),
			strconv.Itoa(int(v>>4&0xf) * 0x11),
			strconv.Itoa(int(v&0xf) * 0x11),
		}
	}
	base := 40
	if fg {
		base = 30
	}
	if c >= 8 {
		base += 60
	}
	return []string{strconv.Itoa(base + sgrColor[c&7])}
}
