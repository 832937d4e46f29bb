package canvas

import (
	"fmt"
	"slices"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/errs"
)

// grid is a view of one frame's cell arrays.
type grid struct {
	width  int
	height int
	chars  []uint32
	attrs  []attr.Attr
}

func (c *Canvas) grid() grid {
	return grid{width: c.width, height: c.height, chars: c.chars, attrs: c.attrs}
}

// Blit copies the active frame of src onto c so that the handle of src
// lands on (x, y). When mask is non-nil it must have the same size as src
// and only cells whose mask character is not a space are copied. Fullwidth
// pairs cut by the copy are blanked on both canvases' edges. Only cells
// whose content changed are marked dirty.
func (c *Canvas) Blit(x, y int, src, mask *Canvas) error {
	if src == nil {
		return fmt.Errorf("blit: nil source: %w", errs.ErrInvalidArgument)
	}
	if mask != nil && (mask.width != src.width || mask.height != src.height) {
		return fmt.Errorf("blit: mask %dx%d does not match source %dx%d: %w",
			mask.width, mask.height, src.width, src.height, errs.ErrInvalidArgument)
	}
	s := src.grid()
	if src == c {
		s.chars = slices.Clone(s.chars)
		s.attrs = slices.Clone(s.attrs)
	}
	var maskChars []uint32
	if mask != nil {
		maskChars = mask.chars
		if mask == c {
			maskChars = slices.Clone(maskChars)
		}
	}
	dst := c.grid()
	copyGrid(dst, x-src.HandleX(), y-src.HandleY(), s, maskChars, c.markDirty)
	return nil
}

// copyGrid copies src into dst with the top-left corner of src at (x, y),
// then repairs fullwidth pairs along the edges of every touched row. When
// mark is non-nil it receives one rectangle per changed row, or one per
// changed cell when masked.
func copyGrid(dst grid, x, y int, src grid, mask []uint32, mark func(x, y, w, h int)) {
	startX, startY := max(0, -x), max(0, -y)
	endX, endY := min(src.width, dst.width-x), min(src.height, dst.height-y)
	if startX >= endX || startY >= endY {
		return
	}

	// Row span that may change: the copied columns plus one on each side
	// for pair repair.
	lo := max(x+startX-1, 0)
	hi := min(x+endX+1, dst.width)
	oldChars := make([]uint32, hi-lo)
	oldAttrs := make([]attr.Attr, hi-lo)

	for j := startY; j < endY; j++ {
		row := (y + j) * dst.width
		copy(oldChars, dst.chars[row+lo:row+hi])
		copy(oldAttrs, dst.attrs[row+lo:row+hi])

		for i := startX; i < endX; i++ {
			si := i + j*src.width
			if mask != nil && mask[si] == ' ' {
				continue
			}
			di := row + x + i
			dst.chars[di] = src.chars[si]
			dst.attrs[di] = src.attrs[si]
		}
		repairRow(dst.chars[row:row+dst.width], lo, hi)

		if mark == nil {
			continue
		}
		first, last := -1, -1
		for k := lo; k < hi; k++ {
			if dst.chars[row+k] == oldChars[k-lo] && dst.attrs[row+k] == oldAttrs[k-lo] {
				continue
			}
			if mask != nil {
				mark(k, y+j, 1, 1)
				continue
			}
			if first < 0 {
				first = k
			}
			last = k
		}
		if first >= 0 {
			mark(first, y+j, last-first+1, 1)
		}
	}
}

// repairRow blanks dangling halves of fullwidth pairs in row[lo:hi].
func repairRow(row []uint32, lo, hi int) {
	for k := lo; k < hi; k++ {
		switch ch := row[k]; {
		case ch == Continuation:
			if k == 0 || !IsFullwidth(row[k-1]) {
				row[k] = ' '
			}
		case IsFullwidth(ch):
			if k+1 >= len(row) || row[k+1] != Continuation {
				row[k] = ' '
			}
		}
	}
}

// SetBoundaries crops or extends every frame to a w x h canvas whose origin
// is the point (x, y) of the current one. Cursor and handle positions follow
// the content. A managed canvas cannot be reframed.
func (c *Canvas) SetBoundaries(x, y, w, h int) error {
	if c.managed {
		return fmt.Errorf("set canvas boundaries: %w", errs.ErrBusy)
	}
	if err := checkSize(w, h); err != nil {
		return err
	}
	c.saveFrame()

	frames := make([]*frame, len(c.frames))
	for n, f := range c.frames {
		nf := &frame{
			width:   w,
			height:  h,
			chars:   make([]uint32, w*h),
			attrs:   make([]attr.Attr, w*h),
			curattr: f.curattr,
			x:       clamp(f.x-x, 0, max(w-1, 0)),
			y:       clamp(f.y-y, 0, max(h-1, 0)),
			handleX: f.handleX - x,
			handleY: f.handleY - y,
			name:    f.name,
		}
		fill(nf.chars, nf.attrs, f.curattr)
		copyGrid(
			grid{width: w, height: h, chars: nf.chars, attrs: nf.attrs},
			-x, -y,
			grid{width: f.width, height: f.height, chars: f.chars, attrs: f.attrs},
			nil, nil,
		)
		frames[n] = nf
	}
	c.frames = frames
	c.loadFrame()

	c.dirty.Resize(w, h)
	c.dirty.Clear()
	c.markDirty(0, 0, w, h)
	c.logger.Debug("canvas boundaries set", "x", x, "y", y, "width", w, "height", h)
	return nil
}
