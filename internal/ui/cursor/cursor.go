// Package cursor tracks the highlighted row and scroll offset of a list
// panel (folders, tracks).
package cursor

// Cursor holds a position and scroll offset. The list length and viewport
// height are passed to methods since both change with the listing and the
// terminal size.
type Cursor struct {
	pos    int // highlighted row (0-indexed)
	offset int // first visible row
	margin int // rows kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the highlighted row.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta rows, clamped to the list.
// No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
// No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves the cursor to the first row.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// Page moves the cursor by one viewport in direction dir (+1 or -1).
func (c *Cursor) Page(dir, listLen, height int) {
	c.Move(dir*max(height-1, 1), listLen, height)
}

// IndexAt maps a row y inside the viewport (0 = first visible row) to a
// list index. It returns false when the row is empty.
func (c Cursor) IndexAt(y, listLen, height int) (int, bool) {
	if y < 0 || y >= height {
		return 0, false
	}
	i := c.offset + y
	if i >= listLen {
		return 0, false
	}
	return i, true
}

// Reset moves the cursor back to the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ClampToBounds keeps the cursor inside a list that may have shrunk.
func (c *Cursor) ClampToBounds(listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
