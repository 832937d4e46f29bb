package canvas

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"pkt.systems/mosaic/internal/attr"
	"pkt.systems/mosaic/internal/errs"
)

const wide = uint32('中')

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(-1, 2); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("New(-1,2) err = %v", err)
	}
	if _, err := New(1<<15, 1<<15); !errors.Is(err, errs.ErrOutOfMemory) {
		t.Fatalf("New(huge) err = %v", err)
	}
	c, err := New(0, 0)
	if err != nil {
		t.Fatalf("New(0,0): %v", err)
	}
	if len(c.Chars()) != 0 || c.DirtyCount() != 0 {
		t.Fatalf("empty canvas has %d cells and %d dirty rects", len(c.Chars()), c.DirtyCount())
	}
}

func TestNewCanvasDefaults(t *testing.T) {
	c := mustCanvas(t, 3, 2)
	for i, ch := range c.Chars() {
		if ch != ' ' || c.Attrs()[i] != attr.DefaultAttr {
			t.Fatalf("cell %d = %q/%#x", i, rune(ch), uint32(c.Attrs()[i]))
		}
	}
	if c.FrameCount() != 1 || c.FrameName() != "frame#00000000" {
		t.Fatalf("frames = %d %q", c.FrameCount(), c.FrameName())
	}
}

func TestResizeFromEmptyThenShrink(t *testing.T) {
	c := mustCanvas(t, 0, 0)
	if err := c.Resize(10, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	c.FillRect(0, 0, 10, 5, '#')
	if err := c.Resize(5, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for y := 0; y < 5; y++ {
		if got := rowString(c, y); got != "#####" {
			t.Fatalf("row %d = %q", y, got)
		}
	}
}

func TestResizeIdempotent(t *testing.T) {
	c := mustCanvas(t, 4, 3)
	fillPattern(c)
	before := append([]uint32(nil), c.Chars()...)
	c.ClearDirty()
	if err := c.Resize(4, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.DirtyCount() != 0 {
		t.Fatalf("DirtyCount = %d", c.DirtyCount())
	}
	for i, ch := range c.Chars() {
		if ch != before[i] {
			t.Fatalf("cell %d changed", i)
		}
	}
}

func TestResizePreservesContent(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{6, 4}, {9, 4}, {3, 4}, {6, 7}, {6, 2}, {9, 7}, {3, 2}, {9, 2}, {3, 7}, {0, 4}, {6, 0},
	} {
		c := mustCanvas(t, 6, 4)
		fillPattern(c)
		if err := c.Resize(tc.w, tc.h); err != nil {
			t.Fatalf("Resize(%d,%d): %v", tc.w, tc.h, err)
		}
		if len(c.Chars()) != tc.w*tc.h || len(c.Attrs()) != tc.w*tc.h {
			t.Fatalf("%dx%d: arrays have %d/%d cells", tc.w, tc.h, len(c.Chars()), len(c.Attrs()))
		}
		for y := 0; y < tc.h; y++ {
			for x := 0; x < tc.w; x++ {
				want := uint32(' ')
				if x < 6 && y < 4 {
					want = patternAt(x, y)
				}
				if got := c.Char(x, y); got != want {
					t.Fatalf("%dx%d: cell %d,%d = %q, want %q", tc.w, tc.h, x, y, rune(got), rune(want))
				}
			}
		}
	}
}

func TestResizeMarksExposedRegions(t *testing.T) {
	c := mustCanvas(t, 2, 2)
	c.ClearDirty()
	if err := c.Resize(4, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if (x >= 2 || y >= 2) && !dirtyCovers(c, x, y) {
				t.Fatalf("exposed cell %d,%d not dirty", x, y)
			}
		}
	}

	c.ClearDirty()
	c.DisableDirty()
	if err := c.Resize(6, 6); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.DirtyCount() != 0 {
		t.Fatalf("DirtyCount = %d while disabled", c.DirtyCount())
	}
	if err := c.EnableDirty(); err != nil {
		t.Fatalf("EnableDirty: %v", err)
	}
	if err := c.EnableDirty(); !errors.Is(err, errs.ErrNotDisabled) {
		t.Fatalf("EnableDirty err = %v", err)
	}
}

func TestResizeBlanksSplitPair(t *testing.T) {
	c := mustCanvas(t, 4, 2)
	c.PutChar(2, 1, wide)
	if err := c.Resize(3, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := c.Char(2, 1); got != ' ' {
		t.Fatalf("split left half = %q", rune(got))
	}
	assertFullwidthIntegrity(t, c)
}

func TestResizeClampsCursor(t *testing.T) {
	c := mustCanvas(t, 10, 10)
	c.GotoXY(8, 9)
	if err := c.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.WhereX() != 3 || c.WhereY() != 3 {
		t.Fatalf("cursor = %d,%d", c.WhereX(), c.WhereY())
	}
}

func TestPutCharFullwidth(t *testing.T) {
	c := mustCanvas(t, 10, 1)
	if n := c.PutChar(2, 0, wide); n != 2 {
		t.Fatalf("PutChar width = %d", n)
	}
	if c.Char(2, 0) != wide || c.Char(3, 0) != Continuation {
		t.Fatalf("pair = %q %#x", rune(c.Char(2, 0)), c.Char(3, 0))
	}
	c.PutChar(2, 0, ' ')
	if got := c.Char(3, 0); got != ' ' {
		t.Fatalf("right half after overwrite = %#x", got)
	}

	c.PutChar(5, 0, wide)
	c.PutChar(6, 0, 'x')
	if got := c.Char(5, 0); got != ' ' {
		t.Fatalf("left half after right overwrite = %q", rune(got))
	}

	if n := c.PutChar(9, 0, wide); n != 2 || c.Char(9, 0) != ' ' {
		t.Fatalf("last column: width %d char %q", n, rune(c.Char(9, 0)))
	}
	c.PutChar(-1, 0, wide)
	if c.Char(0, 0) != ' ' {
		t.Fatalf("cut pair at column 0 = %q", rune(c.Char(0, 0)))
	}
	if n := c.PutChar(40, 0, wide); n != 2 {
		t.Fatalf("off-canvas width = %d", n)
	}
	assertFullwidthIntegrity(t, c)
}

func TestPutCharDirtyOnlyOnChange(t *testing.T) {
	c := mustCanvas(t, 5, 2)
	c.ClearDirty()
	c.PutChar(1, 1, ' ')
	if c.DirtyCount() != 0 {
		t.Fatalf("unchanged write marked dirty")
	}
	c.PutChar(1, 1, wide)
	if c.DirtyCount() != 1 {
		t.Fatalf("DirtyCount = %d", c.DirtyCount())
	}
	x, y, w, h, err := c.DirtyRect(0)
	if err != nil || x != 1 || y != 1 || w != 2 || h != 1 {
		t.Fatalf("dirty rect = %d,%d %dx%d (%v)", x, y, w, h, err)
	}
}

func TestPutStrCountsClippedText(t *testing.T) {
	c := mustCanvas(t, 5, 1)
	if n := c.PutStr(-3, 0, "abcdefgh"); n != 8 {
		t.Fatalf("width = %d", n)
	}
	if got := rowString(c, 0); got != "defgh" {
		t.Fatalf("row = %q", got)
	}
	if n := c.PutStr(10, 0, "中a"); n != 3 {
		t.Fatalf("off-canvas width = %d", n)
	}
	if n := c.PutStr(0, 3, "xy"); n != 2 || rowString(c, 0) != "defgh" {
		t.Fatalf("off-canvas row written")
	}
	if n := c.Printf(0, 0, "%d", 42); n != 2 || rowString(c, 0) != "42fgh" {
		t.Fatalf("Printf = %d %q", n, rowString(c, 0))
	}
}

func TestAttributeState(t *testing.T) {
	c := mustCanvas(t, 4, 1)
	if err := c.SetColorANSI(attr.Red, attr.Blue); err != nil {
		t.Fatalf("SetColorANSI: %v", err)
	}
	c.SetAttr(attr.Attr(attr.Bold | attr.Underline))
	if fg, bg := c.Attr().ANSI(); fg != attr.Red || bg != attr.Blue {
		t.Fatalf("style-only SetAttr changed colours to %v/%v", fg, bg)
	}
	c.UnsetAttr(attr.Bold)
	c.ToggleAttr(attr.Italic)
	if s := c.Attr().Style(); s != attr.Underline|attr.Italic {
		t.Fatalf("style = %#x", s)
	}
	if err := c.SetColorANSI(attr.Color(0x11), attr.Black); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("SetColorANSI invalid err = %v", err)
	}

	c.PutChar(0, 0, wide)
	c.PutAttr(1, 0, attr.PackANSI(attr.Green, attr.Black, 0))
	if c.AttrAt(0, 0) != c.AttrAt(1, 0) {
		t.Fatalf("pair attributes differ: %#x %#x", uint32(c.AttrAt(0, 0)), uint32(c.AttrAt(1, 0)))
	}
	c.PutAttr(0, 0, attr.Attr(attr.Blink))
	if fg, _ := c.AttrAt(1, 0).ANSI(); fg != attr.Green || c.AttrAt(1, 0).Style() != attr.Blink {
		t.Fatalf("style-only PutAttr = %#x", uint32(c.AttrAt(1, 0)))
	}

	c.SetColorARGB(0xffff, 0xf000)
	if c.Attr().RGB12Fg() != 0xffe {
		t.Fatalf("RGB12Fg = %#x", c.Attr().RGB12Fg())
	}
}

func TestInvertAndClear(t *testing.T) {
	c := mustCanvas(t, 2, 1)
	_ = c.SetColorANSI(attr.Yellow, attr.Blue)
	c.PutChar(0, 0, 'a')
	c.Invert()
	if fg, bg := c.AttrAt(0, 0).ANSI(); fg != attr.Blue || bg != attr.Yellow {
		t.Fatalf("inverted = %v/%v", fg, bg)
	}
	c.Clear()
	if c.Char(0, 0) != ' ' || c.AttrAt(1, 0) != c.Attr() {
		t.Fatalf("Clear left %q", rune(c.Char(0, 0)))
	}
}

func TestBlitMaskAndHandle(t *testing.T) {
	dst := mustCanvas(t, 5, 1)
	dst.FillRect(0, 0, 5, 1, '.')
	src := mustCanvas(t, 3, 1)
	src.PutStr(0, 0, "abc")
	mask := mustCanvas(t, 3, 1)
	mask.PutStr(0, 0, "x x")

	dst.ClearDirty()
	if err := dst.Blit(1, 0, src, mask); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := rowString(dst, 0); got != ".a.c." {
		t.Fatalf("masked blit = %q", got)
	}
	if dirtyCovers(dst, 2, 0) {
		t.Fatalf("masked-out cell reported dirty: %+v", dst.DirtyRects())
	}
	if !dirtyCovers(dst, 1, 0) || !dirtyCovers(dst, 3, 0) {
		t.Fatalf("copied cells not dirty: %+v", dst.DirtyRects())
	}

	src.SetHandle(1, 0)
	if err := dst.Blit(1, 0, src, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := rowString(dst, 0); got != "abcc." {
		t.Fatalf("handle blit = %q", got)
	}

	bad := mustCanvas(t, 2, 1)
	if err := dst.Blit(0, 0, src, bad); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("mismatched mask err = %v", err)
	}
}

func TestBlitDirtyOnlyChangedRows(t *testing.T) {
	dst := mustCanvas(t, 4, 3)
	src := mustCanvas(t, 4, 3)
	dst.ClearDirty()
	if err := dst.Blit(0, 0, src, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if dst.DirtyCount() != 0 {
		t.Fatalf("identical blit marked %d rects", dst.DirtyCount())
	}
	src.PutStr(1, 1, "ab")
	if err := dst.Blit(0, 0, src, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if dst.DirtyCount() != 1 {
		t.Fatalf("DirtyCount = %d", dst.DirtyCount())
	}
	x, y, w, h, _ := dst.DirtyRect(0)
	if x != 1 || y != 1 || w != 2 || h != 1 {
		t.Fatalf("dirty rect = %d,%d %dx%d", x, y, w, h)
	}
}

func TestBlitFullwidthEdges(t *testing.T) {
	dst := mustCanvas(t, 6, 1)
	dst.PutChar(2, 0, wide)
	one := mustCanvas(t, 1, 1)
	one.PutChar(0, 0, 'x')
	if err := dst.Blit(3, 0, one, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := rowString(dst, 0); got != "   x  " {
		t.Fatalf("row = %q", got)
	}

	pair := mustCanvas(t, 2, 1)
	pair.PutChar(0, 0, wide)
	_ = dst.Blit(-1, 0, pair, nil)
	_ = dst.Blit(5, 0, pair, nil)
	if dst.Char(0, 0) != ' ' || dst.Char(5, 0) != ' ' {
		t.Fatalf("cut pairs = %q %q", rune(dst.Char(0, 0)), rune(dst.Char(5, 0)))
	}
	_ = dst.Blit(3, 0, pair, nil)
	if dst.Char(3, 0) != wide || dst.Char(4, 0) != Continuation {
		t.Fatalf("whole pair not copied")
	}
	assertFullwidthIntegrity(t, dst)
}

func TestBlitOntoItself(t *testing.T) {
	c := mustCanvas(t, 4, 1)
	c.PutStr(0, 0, "abcd")
	if err := c.Blit(1, 0, c, nil); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if got := rowString(c, 0); got != "aabc" {
		t.Fatalf("row = %q", got)
	}
}

func TestFullwidthIntegrityRandomized(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	glyphs := []uint32{'a', ' ', wide, 'あ', 'z', Continuation}
	c := mustCanvas(t, 8, 3)
	src := mustCanvas(t, 4, 2)
	for step := 0; step < 500; step++ {
		ch := glyphs[rng.IntN(len(glyphs))]
		switch rng.IntN(5) {
		case 0, 1:
			c.PutChar(rng.IntN(12)-2, rng.IntN(4)-1, ch)
		case 2:
			src.PutChar(rng.IntN(5)-1, rng.IntN(2), ch)
			_ = c.Blit(rng.IntN(12)-4, rng.IntN(5)-2, src, nil)
		case 3:
			_ = c.Resize(rng.IntN(10)+1, rng.IntN(4)+1)
		case 4:
			c.PutStr(rng.IntN(10)-3, rng.IntN(3), "a中b")
		}
		assertFullwidthIntegrity(t, c)
	}
}

func TestPutCharIgnoresContinuationMarker(t *testing.T) {
	c := mustCanvas(t, 4, 1)
	c.ClearDirty()
	if n := c.PutChar(0, 0, Continuation); n != 1 {
		t.Fatalf("PutChar(Continuation) = %d, want 1", n)
	}
	c.PutChar(2, 0, Continuation)
	if rowString(c, 0) != "    " || c.DirtyCount() != 0 {
		t.Fatalf("row = %q, dirty = %d", rowString(c, 0), c.DirtyCount())
	}
	assertFullwidthIntegrity(t, c)
}

func TestZeroWidthCanvasDrawing(t *testing.T) {
	c := mustCanvas(t, 0, 3)
	if n := c.PutChar(-1, 0, wide); n != 2 {
		t.Fatalf("PutChar = %d, want 2", n)
	}
	if n := c.PutStr(-1, 1, "中a"); n != 3 {
		t.Fatalf("PutStr = %d, want 3", n)
	}
	c.FillRect(-1, 0, 3, 3, wide)
	if len(c.Chars()) != 0 || c.DirtyCount() != 0 {
		t.Fatalf("zero-width canvas changed: %d cells, %d dirty", len(c.Chars()), c.DirtyCount())
	}
}

func TestFrames(t *testing.T) {
	c := mustCanvas(t, 3, 1)
	c.PutStr(0, 0, "abc")
	if err := c.CreateFrame(1); err != nil {
		t.Fatalf("CreateFrame: %v", err)
	}
	if c.FrameCount() != 2 || c.Frame() != 0 {
		t.Fatalf("count %d active %d", c.FrameCount(), c.Frame())
	}
	c.ClearDirty()
	if err := c.SetFrame(1); err != nil {
		t.Fatalf("SetFrame: %v", err)
	}
	if c.FrameName() != "frame#00000001" || rowString(c, 0) != "abc" {
		t.Fatalf("new frame %q = %q", c.FrameName(), rowString(c, 0))
	}
	if !dirtyCovers(c, 0, 0) || !dirtyCovers(c, 2, 0) {
		t.Fatalf("frame switch not dirty")
	}
	c.PutStr(0, 0, "xyz")
	if err := c.Resize(4, 1); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	_ = c.SetFrame(0)
	if rowString(c, 0) != "abc " {
		t.Fatalf("frame 0 = %q", rowString(c, 0))
	}

	// Inserting before the active frame shifts its index.
	if err := c.CreateFrame(-5); err != nil {
		t.Fatalf("CreateFrame: %v", err)
	}
	if c.Frame() != 1 || c.FrameCount() != 3 {
		t.Fatalf("active %d count %d", c.Frame(), c.FrameCount())
	}
	if err := c.SetFrameName(""); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("empty name err = %v", err)
	}
	_ = c.SetFrameName("title")
	if err := c.FreeFrame(1); err != nil {
		t.Fatalf("FreeFrame: %v", err)
	}
	if c.Frame() != 0 || c.FrameCount() != 2 {
		t.Fatalf("after free active %d count %d", c.Frame(), c.FrameCount())
	}
	if err := c.SetFrame(2); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("SetFrame(2) err = %v", err)
	}
	_ = c.FreeFrame(0)
	if err := c.FreeFrame(0); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("free last frame err = %v", err)
	}
	if rowString(c, 0) != "xyz " {
		t.Fatalf("remaining frame = %q", rowString(c, 0))
	}
}

func TestManageLock(t *testing.T) {
	c := mustCanvas(t, 2, 2)
	allow := false
	if err := c.Manage("driver", func() bool { return allow }); err != nil {
		t.Fatalf("Manage: %v", err)
	}
	if err := c.Manage("other", nil); !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("double Manage err = %v", err)
	}
	if err := c.Resize(3, 3); !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("Resize err = %v", err)
	}
	allow = true
	if err := c.Resize(3, 3); err != nil {
		t.Fatalf("Resize with consent: %v", err)
	}
	if err := c.SetBoundaries(0, 0, 1, 1); !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("SetBoundaries err = %v", err)
	}
	if err := c.Close(); !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("Close err = %v", err)
	}
	if err := c.Unmanage("other"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("foreign Unmanage err = %v", err)
	}
	if err := c.Unmanage("driver"); err != nil {
		t.Fatalf("Unmanage: %v", err)
	}
	if c.Managed() {
		t.Fatalf("still managed")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestSetBoundaries(t *testing.T) {
	c := mustCanvas(t, 6, 4)
	fillPattern(c)
	c.GotoXY(4, 3)
	c.SetHandle(2, 2)
	if err := c.CreateFrame(1); err != nil {
		t.Fatalf("CreateFrame: %v", err)
	}
	if err := c.SetBoundaries(1, 1, 7, 2); err != nil {
		t.Fatalf("SetBoundaries: %v", err)
	}
	if c.Width() != 7 || c.Height() != 2 {
		t.Fatalf("size = %dx%d", c.Width(), c.Height())
	}
	for f := 0; f < c.FrameCount(); f++ {
		_ = c.SetFrame(f)
		for y := 0; y < 2; y++ {
			for x := 0; x < 7; x++ {
				want := uint32(' ')
				if x+1 < 6 {
					want = patternAt(x+1, y+1)
				}
				if got := c.Char(x, y); got != want {
					t.Fatalf("frame %d cell %d,%d = %q want %q", f, x, y, rune(got), rune(want))
				}
			}
		}
		if c.WhereX() != 3 || c.WhereY() != 1 || c.HandleX() != 1 || c.HandleY() != 1 {
			t.Fatalf("frame %d cursor %d,%d handle %d,%d", f, c.WhereX(), c.WhereY(), c.HandleX(), c.HandleY())
		}
	}
	if !dirtyCovers(c, 0, 0) || !dirtyCovers(c, 6, 1) {
		t.Fatalf("reframed canvas not dirty")
	}

	if err := c.SetBoundaries(-2, 0, 3, 1); err != nil {
		t.Fatalf("SetBoundaries: %v", err)
	}
	if got := rowString(c, 0); got != "  "+string(rune(patternAt(1, 1))) {
		t.Fatalf("letterboxed row = %q", got)
	}
}

func mustCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return c
}

func patternAt(x, y int) uint32 {
	return uint32('a' + (x+y*7)%26)
}

func fillPattern(c *Canvas) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.PutChar(x, y, patternAt(x, y))
		}
	}
}

func rowString(c *Canvas, y int) string {
	var b strings.Builder
	for x := 0; x < c.Width(); x++ {
		ch := c.Char(x, y)
		if ch == Continuation {
			continue
		}
		b.WriteRune(rune(ch))
	}
	return b.String()
}

func dirtyCovers(c *Canvas, x, y int) bool {
	for _, r := range c.DirtyRects() {
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return true
		}
	}
	return false
}

func assertFullwidthIntegrity(t *testing.T, c *Canvas) {
	t.Helper()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			ch := c.Char(x, y)
			if ch == Continuation && (x == 0 || !IsFullwidth(c.Char(x-1, y))) {
				t.Fatalf("dangling continuation at %d,%d in %q", x, y, rowString(c, y))
			}
			if IsFullwidth(ch) && (x+1 == c.Width() || c.Char(x+1, y) != Continuation) {
				t.Fatalf("unpaired fullwidth at %d,%d", x, y)
			}
		}
	}
}
