// Package dirty tracks the regions of a canvas that changed since the last
// render.
//
// The tracker keeps at most MaxRects pairwise disjoint rectangles. When a new
// rectangle would exceed the budget it is merged with the existing rectangle
// that wastes the least area, where waste is the area of the bounding box not
// covered by either input. The choice is greedy and not globally optimal; the
// only guarantees are the budget, disjointness and coverage of every marked
// cell.
package dirty

import (
	"fmt"

	"pkt.systems/mosaic/internal/errs"
)

// MaxRects is the maximum number of rectangles kept by a Tracker.
const MaxRects = 8

// Rect is a dirty region. W or H may be zero for a rectangle that was
// clipped away by a shrinking canvas.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Tracker records dirty rectangles for a width x height grid.
type Tracker struct {
	width    int
	height   int
	rects    [MaxRects + 1]rect
	n        int
	disabled int
}

// New returns an empty tracker for a width x height grid.
func New(width, height int) *Tracker {
	return &Tracker{width: width, height: height}
}

// Add marks the rectangle at (x, y) of size w x h as dirty. The rectangle is
// clipped to the grid first; an empty result is rejected. Nothing is
// recorded while tracking is disabled.
func (t *Tracker) Add(x, y, w, h int) error {
	r := rect{x0: x, y0: y, x1: x + w, y1: y + h}.clip(t.width, t.height)
	if r.empty() {
		return fmt.Errorf("dirty rect %dx%d at %d,%d: %w", w, h, x, y, errs.ErrInvalidArgument)
	}
	if t.disabled > 0 {
		return nil
	}
	t.insert(r)
	for t.n > MaxRects {
		t.shrink()
	}
	return nil
}

// insert appends r after absorbing every rectangle it overlaps, or every
// rectangle it can be joined with at no cost. If r is already covered the
// list is left untouched.
func (t *Tracker) insert(r rect) {
	for merged := true; merged; {
		merged = false
		for i := 0; i < t.n; i++ {
			e := t.rects[i]
			if e.empty() {
				continue
			}
			if e.contains(r) {
				return
			}
			if r.overlaps(e) || wasted(r, e) == 0 {
				r = r.union(e)
				t.remove(i)
				merged = true
				break
			}
		}
	}
	t.rects[t.n] = r
	t.n++
}

// shrink reduces the list by merging the most recent rectangle into its
// cheapest partner.
func (t *Tracker) shrink() {
	for i := 0; i < t.n; i++ {
		if t.rects[i].empty() {
			t.remove(i)
			return
		}
	}
	last := t.n - 1
	best, bestWaste := -1, 0
	for i := 0; i < last; i++ {
		w := wasted(t.rects[last], t.rects[i])
		if best < 0 || w < bestWaste {
			best, bestWaste = i, w
		}
	}
	u := t.rects[last].union(t.rects[best])
	t.remove(last)
	t.remove(best)
	t.insert(u)
}

func (t *Tracker) remove(i int) {
	t.n--
	t.rects[i] = t.rects[t.n]
}

// Count returns the number of tracked rectangles.
func (t *Tracker) Count() int {
	return t.n
}

// Rect returns the i-th tracked rectangle.
func (t *Tracker) Rect(i int) (Rect, error) {
	if i < 0 || i >= t.n {
		return Rect{}, fmt.Errorf("dirty rect index %d of %d: %w", i, t.n, errs.ErrInvalidArgument)
	}
	return t.rects[i].public(), nil
}

// Rects returns a copy of all tracked rectangles.
func (t *Tracker) Rects() []Rect {
	out := make([]Rect, t.n)
	for i := range out {
		out[i] = t.rects[i].public()
	}
	return out
}

// Clear forgets every rectangle.
func (t *Tracker) Clear() {
	t.n = 0
}

// Disable suspends recording. Calls nest.
func (t *Tracker) Disable() {
	t.disabled++
}

// Enable undoes one Disable.
func (t *Tracker) Enable() error {
	if t.disabled <= 0 {
		return errs.ErrNotDisabled
	}
	t.disabled--
	return nil
}

// Disabled reports whether recording is suspended.
func (t *Tracker) Disabled() bool {
	return t.disabled > 0
}

// Resize changes the grid dimensions, clipping existing rectangles when the
// grid shrinks.
func (t *Tracker) Resize(width, height int) {
	shrunk := width < t.width || height < t.height
	t.width, t.height = width, height
	if shrunk {
		t.ClipAll()
	}
}

// ClipAll clamps every rectangle into the grid. Rectangles that become empty
// are kept until the next Clear.
func (t *Tracker) ClipAll() {
	for i := 0; i < t.n; i++ {
		t.rects[i] = t.rects[i].clip(t.width, t.height)
	}
}

// rect is a half-open box [x0,x1) x [y0,y1).
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) clip(width, height int) rect {
	r.x0 = clamp(r.x0, 0, width)
	r.y0 = clamp(r.y0, 0, height)
	r.x1 = clamp(r.x1, r.x0, width)
	r.y1 = clamp(r.y1, r.y0, height)
	return r
}

func (r rect) empty() bool {
	return r.x1 <= r.x0 || r.y1 <= r.y0
}

func (r rect) area() int {
	if r.empty() {
		return 0
	}
	return (r.x1 - r.x0) * (r.y1 - r.y0)
}

func (r rect) contains(o rect) bool {
	return o.x0 >= r.x0 && o.y0 >= r.y0 && o.x1 <= r.x1 && o.y1 <= r.y1
}

func (r rect) overlaps(o rect) bool {
	return r.x0 < o.x1 && o.x0 < r.x1 && r.y0 < o.y1 && o.y0 < r.y1
}

func (r rect) union(o rect) rect {
	return rect{
		x0: min(r.x0, o.x0),
		y0: min(r.y0, o.y0),
		x1: max(r.x1, o.x1),
		y1: max(r.y1, o.y1),
	}
}

func (r rect) public() Rect {
	return Rect{X: r.x0, Y: r.y0, W: max(r.x1-r.x0, 0), H: max(r.y1-r.y0, 0)}
}

// wasted is the part of the bounding box of a and b covered by neither.
// It assumes a and b are disjoint.
func wasted(a, b rect) int {
	return a.union(b).area() - a.area() - b.area()
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
