// Package canvas implements the cell grid: a canvas owns one or more frames
// of characters and packed attributes, tracks dirty regions, and provides
// the drawing and compositing primitives.
//
// A Canvas is not safe for concurrent use. Slices returned by Chars and
// Attrs are invalidated by Resize, SetBoundaries and frame switches.
package canvas

import (
	"fmt"
	"io"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/dirty"
	"pkt.systems/mosaic/internal/errs"
	"pkt.systems/pslog"
)

// MaxCells bounds width*height for a single frame.
const MaxCells = 1 << 28

// Canvas is a grid of cells with one or more frames.
type Canvas struct {
	frames  []*frame
	frame   int
	autoinc int

	// Cached view of the active frame.
	width   int
	height  int
	chars   []uint32
	attrs   []attr.Attr
	curattr attr.Attr

	dirty *dirty.Tracker

	managed     bool
	owner       any
	allowResize func() bool

	logger pslog.Logger
}

// Option configures a Canvas at creation time.
type Option func(*Canvas)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger pslog.Logger) Option {
	return func(c *Canvas) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a width x height canvas with a single frame filled with
// spaces at the default attribute (default foreground, transparent
// background).
func New(width, height int, opts ...Option) (*Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	c := &Canvas{
		curattr: attr.DefaultAttr,
		dirty:   dirty.New(0, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}
	c.frames = []*frame{{curattr: c.curattr, name: frameName(0)}}
	c.loadFrame()
	c.resize(width, height)
	c.logger.Debug("canvas created", "width", width, "height", height)
	return c, nil
}

func checkSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("canvas size %dx%d: %w", width, height, errs.ErrInvalidArgument)
	}
	if width != 0 && height > MaxCells/width {
		return fmt.Errorf("canvas size %dx%d: %w", width, height, errs.ErrOutOfMemory)
	}
	return nil
}

func discardLogger() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns the canvas width and height.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Chars returns the character array of the active frame, row-major.
func (c *Canvas) Chars() []uint32 {
	return c.chars
}

// Attrs returns the attribute array of the active frame, row-major.
func (c *Canvas) Attrs() []attr.Attr {
	return c.attrs
}

// Manage marks the canvas as owned by a display driver. owner identifies
// the holder and must be comparable; allowResize, when non-nil, is consulted
// by Resize and may refuse it.
func (c *Canvas) Manage(owner any, allowResize func() bool) error {
	if c.managed {
		return fmt.Errorf("manage canvas: %w", errs.ErrBusy)
	}
	c.managed = true
	c.owner = owner
	c.allowResize = allowResize
	c.logger.Debug("canvas managed")
	return nil
}

// Unmanage releases a canvas previously passed to Manage by the same owner.
func (c *Canvas) Unmanage(owner any) error {
	if !c.managed || c.owner != owner {
		return fmt.Errorf("unmanage canvas: not held by caller: %w", errs.ErrInvalidArgument)
	}
	c.managed = false
	c.owner = nil
	c.allowResize = nil
	c.logger.Debug("canvas unmanaged")
	return nil
}

// Managed reports whether a driver holds the canvas.
func (c *Canvas) Managed() bool {
	return c.managed
}

// Close releases the frames. The canvas must not be used afterwards.
func (c *Canvas) Close() error {
	if c.managed {
		return fmt.Errorf("close canvas: %w", errs.ErrBusy)
	}
	c.frames = nil
	c.chars = nil
	c.attrs = nil
	c.width, c.height = 0, 0
	c.dirty = dirty.New(0, 0)
	return nil
}
