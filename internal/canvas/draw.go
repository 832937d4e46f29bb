package canvas

import (
	"fmt"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/errs"
)

// PutChar writes ch at (x, y) with the current attribute and returns the
// number of cells ch occupies. Writing onto either half of an existing
// fullwidth pair blanks the other half. A fullwidth character that would
// not fit in the last column is replaced with a space. Coordinates outside
// the canvas and the Continuation marker itself are ignored.
func (c *Canvas) PutChar(x, y int, ch uint32) int {
	if ch == Continuation {
		return 1
	}
	fullwidth := IsFullwidth(ch)
	width := 1
	if fullwidth {
		width = 2
	}
	if y < 0 || y >= c.height || x >= c.width || c.width == 0 {
		return width
	}
	if x == -1 && fullwidth {
		x, ch, fullwidth = 0, ' ', false
	} else if x < 0 {
		return width
	}

	i := x + y*c.width
	a := c.curattr
	xmin, xmax := x, x
	changed := c.chars[i] != ch || c.attrs[i] != a

	if x > 0 && c.chars[i] == Continuation {
		c.chars[i-1] = ' '
		xmin--
		changed = true
	}

	if fullwidth {
		if x+1 == c.width {
			ch = ' '
			changed = xmin != x || c.chars[i] != ch || c.attrs[i] != a
		} else {
			xmax++
			if x+2 < c.width && c.chars[i+2] == Continuation {
				c.chars[i+2] = ' '
				xmax++
				changed = true
			}
			if c.chars[i+1] != Continuation || c.attrs[i+1] != a {
				changed = true
			}
			c.chars[i+1] = Continuation
			c.attrs[i+1] = a
		}
	} else if x+1 < c.width && c.chars[i+1] == Continuation {
		c.chars[i+1] = ' '
		xmax++
		changed = true
	}

	c.chars[i] = ch
	c.attrs[i] = a

	if changed {
		c.markDirty(xmin, y, xmax-xmin+1, 1)
	}
	return width
}

// PutStr writes s starting at (x, y) and returns its width in cells.
// Characters falling outside the canvas are not written but still count
// toward the returned width.
func (c *Canvas) PutStr(x, y int, s string) int {
	total := 0
	for _, r := range s {
		ch := uint32(r)
		w := CharWidth(ch)
		if y >= 0 && y < c.height && x >= -1 && x < c.width {
			c.PutChar(x, y, ch)
		}
		x += w
		total += w
	}
	return total
}

// Printf formats according to format and writes the result with PutStr.
func (c *Canvas) Printf(x, y int, format string, args ...any) int {
	return c.PutStr(x, y, fmt.Sprintf(format, args...))
}

// Char returns the character at (x, y), or a space outside the canvas.
func (c *Canvas) Char(x, y int) uint32 {
	if !c.inside(x, y) {
		return ' '
	}
	return c.chars[x+y*c.width]
}

// AttrAt returns the attribute at (x, y), or zero outside the canvas.
func (c *Canvas) AttrAt(x, y int) attr.Attr {
	if !c.inside(x, y) {
		return 0
	}
	return c.attrs[x+y*c.width]
}

// PutAttr sets the attribute of one cell. A style-only value keeps the
// cell's colours. The other half of a fullwidth pair gets the same
// attribute.
func (c *Canvas) PutAttr(x, y int, a attr.Attr) {
	if !c.inside(x, y) {
		return
	}
	i := x + y*c.width
	a = attr.Merge(c.attrs[i], a)
	xmin, xmax := x, x
	if x > 0 && c.chars[i] == Continuation {
		c.attrs[i-1] = a
		xmin--
	} else if x+1 < c.width && c.chars[i+1] == Continuation {
		c.attrs[i+1] = a
		xmax++
	}
	if c.attrs[i] != a || xmin != xmax {
		c.markDirty(xmin, y, xmax-xmin+1, 1)
	}
	c.attrs[i] = a
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Attr returns the current drawing attribute.
func (c *Canvas) Attr() attr.Attr {
	return c.curattr
}

// SetAttr sets the current drawing attribute. A style-only value keeps the
// current colours.
func (c *Canvas) SetAttr(a attr.Attr) {
	c.curattr = attr.Merge(c.curattr, a)
}

// UnsetAttr clears style flags from the current attribute.
func (c *Canvas) UnsetAttr(s attr.Style) {
	c.curattr = c.curattr.WithStyle(c.curattr.Style() &^ s)
}

// ToggleAttr flips style flags in the current attribute.
func (c *Canvas) ToggleAttr(s attr.Style) {
	c.curattr = c.curattr.WithStyle(c.curattr.Style() ^ s)
}

// SetColorANSI sets the current colours from two named colours, keeping the
// style flags.
func (c *Canvas) SetColorANSI(fg, bg attr.Color) error {
	if !fg.Valid() || !bg.Valid() {
		return fmt.Errorf("ansi colours %d/%d: %w", uint8(fg), uint8(bg), errs.ErrInvalidArgument)
	}
	c.curattr = attr.PackANSI(fg, bg, c.curattr.Style())
	return nil
}

// SetColorARGB sets the current colours from two 16-bit 0xARGB values,
// keeping the style flags.
func (c *Canvas) SetColorARGB(fg, bg uint16) {
	c.curattr = attr.PackARGB(fg, bg, c.curattr.Style())
}

// GotoXY moves the cursor.
func (c *Canvas) GotoXY(x, y int) {
	f := c.frames[c.frame]
	f.x, f.y = x, y
}

// WhereX returns the cursor column.
func (c *Canvas) WhereX() int {
	return c.frames[c.frame].x
}

// WhereY returns the cursor row.
func (c *Canvas) WhereY() int {
	return c.frames[c.frame].y
}

// SetHandle sets the handle, the point of the canvas that Blit aligns with
// the destination coordinates.
func (c *Canvas) SetHandle(x, y int) {
	f := c.frames[c.frame]
	f.handleX, f.handleY = x, y
}

// HandleX returns the handle column.
func (c *Canvas) HandleX() int {
	return c.frames[c.frame].handleX
}

// HandleY returns the handle row.
func (c *Canvas) HandleY() int {
	return c.frames[c.frame].handleY
}

// Clear fills the canvas with spaces at the current attribute.
func (c *Canvas) Clear() {
	fill(c.chars, c.attrs, c.curattr)
	c.markDirty(0, 0, c.width, c.height)
}

// FillRect writes ch over the given rectangle with the current attribute.
func (c *Canvas) FillRect(x, y, w, h int, ch uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.width), min(y+h, c.height)
	step := CharWidth(ch)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx += step {
			c.PutChar(xx, yy, ch)
		}
	}
}

// Invert swaps the foreground and background of every cell.
func (c *Canvas) Invert() {
	for i, a := range c.attrs {
		c.attrs[i] = a.Swap()
	}
	c.markDirty(0, 0, c.width, c.height)
}
