package canvas

import "pkt.systems/mosaic/internal/dirty"

// markDirty records a region, ignoring regions that clip to nothing.
func (c *Canvas) markDirty(x, y, w, h int) {
	_ = c.dirty.Add(x, y, w, h)
}

// DirtyCount returns the number of dirty rectangles.
func (c *Canvas) DirtyCount() int {
	return c.dirty.Count()
}

// DirtyRect returns the i-th dirty rectangle.
func (c *Canvas) DirtyRect(i int) (x, y, w, h int, err error) {
	r, err := c.dirty.Rect(i)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return r.X, r.Y, r.W, r.H, nil
}

// DirtyRects returns a copy of every dirty rectangle.
func (c *Canvas) DirtyRects() []dirty.Rect {
	return c.dirty.Rects()
}

// AddDirty marks a region as dirty. Regions outside the canvas are
// rejected with ErrInvalidArgument.
func (c *Canvas) AddDirty(x, y, w, h int) error {
	return c.dirty.Add(x, y, w, h)
}

// ClearDirty forgets every dirty rectangle. Drivers call it after a render
// pass.
func (c *Canvas) ClearDirty() {
	c.dirty.Clear()
}

// DisableDirty suspends dirty tracking. Calls nest.
func (c *Canvas) DisableDirty() {
	c.dirty.Disable()
}

// EnableDirty undoes one DisableDirty.
func (c *Canvas) EnableDirty() error {
	return c.dirty.Enable()
}
