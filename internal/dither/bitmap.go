package dither

import (
	"math"

	"pkt.systems/mosaic/internal/attr"
)

// Target is the surface Bitmap draws on. *canvas.Canvas implements it.
type Target interface {
	Size() (int, int)
	Attr() attr.Attr
	SetAttr(a attr.Attr)
	SetColorANSI(fg, bg attr.Color) error
	PutChar(x, y int, ch uint32) int
}

type rgb [3]int

// ansiRGB holds the 16 ANSI colours as 12-bit channels.
var ansiRGB = func() (out [16]rgb) {
	for i := range out {
		v := int(attr.Color(i).RGB12())
		out[i] = rgb{(v >> 8 & 0xf) * 0x111, (v >> 4 & 0xf) * 0x111, (v & 0xf) * 0x111}
	}
	return out
}()

// ansiWeight biases the distance of each ANSI colour. Black is penalised so
// dark colours keep some hue.
var ansiWeight = [16]int{2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

var (
	monoColors     = []int{15}
	grayColors     = []int{8, 7, 15}
	ansi8Colors    = []int{1, 2, 3, 4, 5, 6, 7}
	ansi16Colors   = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	fullGrayColors = []int{0, 8, 7, 15}
	full8Colors    = []int{0, 1, 2, 3, 4, 5, 6, 7}
	full16Colors   = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
)

// palette returns the candidate colours of a mode, whether the mode works
// on luminance only, and whether both colours are chosen freely. The other
// modes draw their foreground on a black background.
func (m ColorMode) palette() (colors []int, gray, full bool) {
	switch m {
	case ColorMono:
		return monoColors, true, false
	case ColorGray:
		return grayColors, true, false
	case Color8:
		return ansi8Colors, false, false
	case Color16:
		return ansi16Colors, false, false
	case ColorFullGray:
		return fullGrayColors, true, true
	case ColorFull8:
		return full8Colors, false, true
	}
	return full16Colors, false, true
}

func nearest(colors []int, c rgb, exclude int) int {
	best, bestDist := -1, 0
	for _, i := range colors {
		if i == exclude {
			continue
		}
		p := ansiRGB[i]
		dist := ansiWeight[i] * (sq(c[0]-p[0]) + sq(c[1]-p[1]) + sq(c[2]-p[2]))
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return exclude
	}
	return best
}

// Bitmap draws pixels, laid out as the Dither's format, into the cell
// rectangle (x, y, w, h) of t, scaling the bitmap to fit. Each cell gets one
// glyph and an ANSI colour pair. Cells outside t are skipped, and cells whose
// sampled alpha is below one half are left untouched. The current attribute
// of t is restored afterwards. A short pixel buffer or an empty rectangle
// draws nothing.
func (d *Dither) Bitmap(t Target, x, y, w, h int, pixels []byte) {
	if d == nil || t == nil || w <= 0 || h <= 0 || len(pixels) < d.layout.size() {
		return
	}
	cw, ch := t.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, cw), min(y+h, ch)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	saved := t.Attr()
	defer t.SetAttr(saved)

	ramp := glyphs(d.charset)
	n := len(ramp)
	colors, gray, full := d.colorMode.palette()
	th := newThresholder(d.algorithm, d.seed)
	fstein := d.algorithm == AlgorithmFSteinberg

	// Error rows for Floyd-Steinberg, offset by one so below-left and
	// below-right never fall outside.
	cur := make([]rgb, x1-x0+2)
	next := make([]rgb, x1-x0+2)

	for cy := y0; cy < y1; cy++ {
		var carry rgb
		for cx := x0; cx < x1; cx++ {
			col := cx - x0 + 1
			c, ok := d.sample(pixels, cx-x, cy-y, w, h)
			if !ok {
				carry = rgb{}
				continue
			}
			if gray {
				l := (c[0]*299 + c[1]*587 + c[2]*114) / 1000
				c = rgb{l, l, l}
			}
			if fstein {
				for k := range c {
					c[k] += cur[col][k] + carry[k]
				}
			} else {
				c = perturb(c, th, cx, cy)
			}

			var fg, bg, idx int
			var shown rgb
			if full {
				bg = nearest(colors, c, -1)
				fg = nearest(colors, c, bg)
				fc, bc := ansiRGB[fg], ansiRGB[bg]
				span := 2*n - 1
				best := -1
				for i := 0; i < n; i++ {
					dist := 0
					for k := range c {
						dist += abs(c[k]*span - (i*fc[k] + (span-i)*bc[k]))
					}
					if best < 0 || dist < best {
						best, idx = dist, i
					}
				}
				for k := range c {
					shown[k] = (idx*fc[k] + (span-idx)*bc[k]) / span
				}
			} else {
				level := clampInt(max(c[0], c[1], c[2]), 0, 0xfff)
				target := c
				if level > 0 && !gray {
					for k := range target {
						target[k] = target[k] * 0xfff / level
					}
				}
				bg = 0
				fg = nearest(colors, target, -1)
				idx = min(level*n/0x1000, n-1)
				fc := ansiRGB[fg]
				for k := range c {
					shown[k] = fc[k] * idx / max(n-1, 1)
				}
			}

			if fstein {
				for k := range c {
					e := c[k] - shown[k]
					carry[k] = e * 7 / 16
					next[col-1][k] += e * 3 / 16
					next[col][k] += e * 5 / 16
					next[col+1][k] += e / 16
				}
			}

			if d.invert {
				fg, bg = 15-fg, 15-bg
			}
			_ = t.SetColorANSI(attr.Color(fg), attr.Color(bg))
			t.PutChar(cx, cy, ramp[idx])
		}
		cur, next = next, cur
		clear(next)
	}
}

// perturb adds a threshold offset to each channel, drawing a separate
// threshold per channel.
func perturb(c rgb, th thresholder, x, y int) rgb {
	for k := range c {
		c[k] += (th.next(x, y) - 0x80) * 4
	}
	return c
}

// sample returns the colour of the source area under cell (cx, cy) of a
// w x h cell grid, and false when the area is transparent.
func (d *Dither) sample(pixels []byte, cx, cy, w, h int) (rgb, bool) {
	l := &d.layout
	fromX, toX := cx*l.Width/w, (cx+1)*l.Width/w
	fromY, toY := cy*l.Height/h, (cy+1)*l.Height/h
	if toX == fromX {
		toX++
	}
	if toY == fromY {
		toY++
	}

	var sum [4]int
	if d.antialias == AntialiasPrefilter {
		dots := 0
		for py := fromY; py < toY; py++ {
			for px := fromX; px < toX; px++ {
				p := d.rgba(pixels, px, py)
				for k := range sum {
					sum[k] += p[k]
				}
				dots++
			}
		}
		for k := range sum {
			sum[k] /= dots
		}
	} else {
		sum = d.rgba(pixels, (fromX+toX)/2, (fromY+toY)/2)
	}

	if l.hasAlpha() && sum[3] < 0x800 {
		return rgb{}, false
	}
	c := rgb{sum[0], sum[1], sum[2]}
	if d.brightness != 1 || d.contrast != 1 {
		for k := range c {
			v := (float64(c[k])-0x800)*d.contrast + 0x800
			c[k] = int(math.Round(v * d.brightness))
		}
	}
	return c, true
}

// rgba reads one pixel as gamma-corrected 12-bit channels.
func (d *Dither) rgba(pixels []byte, x, y int) [4]int {
	l := &d.layout
	v := l.pixel(pixels, x, y)
	var r, g, b, a int
	if l.palette {
		r, g, b, a = int(d.red[v]), int(d.green[v]), int(d.blue[v]), int(d.alpha[v])
	} else {
		r, g, b = l.r.value(v), l.g.value(v), l.b.value(v)
		a = 0xfff
		if l.a.mask != 0 {
			a = l.a.value(v)
		}
	}
	return [4]int{
		int(d.gammaTab[clampInt(r, 0, 0xfff)]),
		int(d.gammaTab[clampInt(g, 0, 0xfff)]),
		int(d.gammaTab[clampInt(b, 0, 0xfff)]),
		a,
	}
}

func sq(v int) int {
	return v * v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
