package mosaic

import (
	"io"

	"pkt.systems/mosaic/internal/render"
)

// RenderOptions controls terminal colour encoding.
type RenderOptions = render.Options

// Render writes the whole canvas to w as ANSI terminal output.
func Render(w io.Writer, c *Canvas, opts RenderOptions) error {
	if c == nil {
		return nil
	}
	return render.Canvas(w, c, opts)
}

// RenderDirty writes only the dirty rectangles of c to w and clears them.
func RenderDirty(w io.Writer, c *Canvas, opts RenderOptions) error {
	if c == nil {
		return nil
	}
	return render.Dirty(w, c, opts)
}
