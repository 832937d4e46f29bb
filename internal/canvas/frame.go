package canvas

import (
	"fmt"
	"slices"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/errs"
)

type frame struct {
	width   int
	height  int
	chars   []uint32
	attrs   []attr.Attr
	curattr attr.Attr

	x, y             int
	handleX, handleY int

	name string
}

func frameName(n int) string {
	return fmt.Sprintf("frame#%08x", n)
}

// saveFrame writes the cached state back to the active frame record.
func (c *Canvas) saveFrame() {
	f := c.frames[c.frame]
	f.width = c.width
	f.height = c.height
	f.curattr = c.curattr
}

// loadFrame refreshes the cached view from the active frame record.
func (c *Canvas) loadFrame() {
	f := c.frames[c.frame]
	c.width = f.width
	c.height = f.height
	c.chars = f.chars
	c.attrs = f.attrs
	c.curattr = f.curattr
}

func (c *Canvas) validFrame(id int) error {
	if id < 0 || id >= len(c.frames) {
		return fmt.Errorf("frame %d of %d: %w", id, len(c.frames), errs.ErrInvalidArgument)
	}
	return nil
}

// FrameCount returns the number of frames.
func (c *Canvas) FrameCount() int {
	return len(c.frames)
}

// Frame returns the index of the active frame.
func (c *Canvas) Frame() int {
	return c.frame
}

// SetFrame makes frame id active. Switching frames marks the whole canvas
// dirty.
func (c *Canvas) SetFrame(id int) error {
	if err := c.validFrame(id); err != nil {
		return err
	}
	if id == c.frame {
		return nil
	}
	c.saveFrame()
	c.frame = id
	c.loadFrame()
	c.markDirty(0, 0, c.width, c.height)
	return nil
}

// FrameName returns the name of the active frame.
func (c *Canvas) FrameName() string {
	return c.frames[c.frame].name
}

// SetFrameName renames the active frame.
func (c *Canvas) SetFrameName(name string) error {
	if name == "" {
		return fmt.Errorf("frame name is empty: %w", errs.ErrInvalidArgument)
	}
	c.frames[c.frame].name = name
	return nil
}

// CreateFrame inserts a copy of the active frame at position id. Indices
// below zero or beyond the last frame are clamped.
func (c *Canvas) CreateFrame(id int) error {
	id = clamp(id, 0, len(c.frames))
	c.saveFrame()
	cur := c.frames[c.frame]
	c.autoinc++
	f := &frame{
		width:   cur.width,
		height:  cur.height,
		chars:   slices.Clone(cur.chars),
		attrs:   slices.Clone(cur.attrs),
		curattr: cur.curattr,
		x:       cur.x,
		y:       cur.y,
		handleX: cur.handleX,
		handleY: cur.handleY,
		name:    frameName(c.autoinc),
	}
	c.frames = slices.Insert(c.frames, id, f)
	if c.frame >= id {
		c.frame++
	}
	c.logger.Debug("frame created", "frame", id, "name", f.name, "count", len(c.frames))
	return nil
}

// FreeFrame removes frame id. The last remaining frame cannot be freed.
func (c *Canvas) FreeFrame(id int) error {
	if err := c.validFrame(id); err != nil {
		return err
	}
	if len(c.frames) == 1 {
		return fmt.Errorf("free last frame: %w", errs.ErrInvalidArgument)
	}
	c.saveFrame()
	c.frames = slices.Delete(c.frames, id, id+1)
	switch {
	case c.frame > id:
		c.frame--
	case c.frame == id:
		c.frame = 0
		c.loadFrame()
		c.markDirty(0, 0, c.width, c.height)
	}
	c.logger.Debug("frame freed", "frame", id, "count", len(c.frames))
	return nil
}
