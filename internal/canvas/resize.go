package canvas

import (
	"fmt"
	"slices"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/errs"
)

// Resize changes the size of every frame, keeping the overlapping content.
// New cells are spaces at each frame's current attribute, and the newly
// exposed regions are marked dirty. A managed canvas may refuse the resize
// with ErrBusy.
func (c *Canvas) Resize(width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	if c.managed && c.allowResize != nil && !c.allowResize() {
		return fmt.Errorf("resize canvas: %w", errs.ErrBusy)
	}
	c.resize(width, height)
	return nil
}

func (c *Canvas) resize(width, height int) {
	oldWidth, oldHeight := c.width, c.height
	if width == oldWidth && height == oldHeight {
		return
	}
	c.saveFrame()

	c.width, c.height = width, height
	c.dirty.Resize(width, height)

	for _, f := range c.frames {
		f.resize(oldWidth, oldHeight, width, height)
		f.x = clamp(f.x, 0, max(width-1, 0))
		f.y = clamp(f.y, 0, max(height-1, 0))
	}

	if width > oldWidth {
		c.markDirty(oldWidth, 0, width-oldWidth, oldHeight)
	}
	if height > oldHeight {
		c.markDirty(0, oldHeight, oldWidth, height-oldHeight)
	}
	if width > oldWidth && height > oldHeight {
		c.markDirty(oldWidth, oldHeight, width-oldWidth, height-oldHeight)
	}

	c.loadFrame()
	c.logger.Debug("canvas resized", "width", width, "height", height, "old_width", oldWidth, "old_height", oldHeight)
}

// resize relocates the frame content in place. The backing arrays grow
// before rows move and shrink after, and rows are copied bottom-up when
// lines get longer and top-down when they get shorter so that no row is
// overwritten before it has been moved.
func (f *frame) resize(oldWidth, oldHeight, width, height int) {
	oldSize, size := oldWidth*oldHeight, width*height

	if size > oldSize {
		f.chars = slices.Grow(f.chars, size-len(f.chars))[:size]
		f.attrs = slices.Grow(f.attrs, size-len(f.attrs))[:size]
	}

	lines := min(height, oldHeight)
	switch {
	case width > oldWidth:
		for y := lines - 1; y >= 0; y-- {
			copy(f.chars[y*width:y*width+oldWidth], f.chars[y*oldWidth:y*oldWidth+oldWidth])
			copy(f.attrs[y*width:y*width+oldWidth], f.attrs[y*oldWidth:y*oldWidth+oldWidth])
			fill(f.chars[y*width+oldWidth:(y+1)*width], f.attrs[y*width+oldWidth:(y+1)*width], f.curattr)
		}
	case width < oldWidth:
		for y := 0; y < lines; y++ {
			split := width > 0 && f.chars[y*oldWidth+width] == Continuation
			if y > 0 {
				copy(f.chars[y*width:(y+1)*width], f.chars[y*oldWidth:y*oldWidth+width])
				copy(f.attrs[y*width:(y+1)*width], f.attrs[y*oldWidth:y*oldWidth+width])
			}
			if split {
				f.chars[(y+1)*width-1] = ' '
			}
		}
	}

	if height > oldHeight {
		fill(f.chars[oldHeight*width:size], f.attrs[oldHeight*width:size], f.curattr)
	}

	if size < oldSize {
		f.chars = slices.Clip(f.chars[:size])
		f.attrs = slices.Clip(f.attrs[:size])
	}

	f.width, f.height = width, height
}

func fill(chars []uint32, attrs []attr.Attr, a attr.Attr) {
	for i := range chars {
		chars[i] = ' '
		attrs[i] = a
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
