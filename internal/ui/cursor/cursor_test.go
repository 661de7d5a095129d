package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("New() = (%d, %d), want (0, 0)", c.Pos(), c.Offset())
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"move down within bounds no scroll", 2, 0, 1, 10, 5, 1, 0},
		{"move down triggers scroll with margin", 2, 0, 3, 10, 5, 3, 1},
		{"move up clamps to 0", 2, 2, -5, 10, 5, 0, 0},
		{"move down clamps to len-1", 2, 5, 15, 10, 5, 9, 5},
		{"move triggers scroll down", 2, 2, 3, 10, 5, 5, 3},
		{"margin larger than viewport", 5, 0, 2, 10, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.initial
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Move() pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Move() offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(2)
	c.pos = 5
	c.Move(1, 0, 5)
	if c.Pos() != 5 {
		t.Errorf("Move() on empty list changed pos to %d", c.Pos())
	}
}

func TestJump(t *testing.T) {
	c := New(2)
	c.Jump(5, 10, 5)
	if c.Pos() != 5 {
		t.Errorf("Jump() pos = %d, want 5", c.Pos())
	}

	c.Jump(100, 10, 5)
	if c.Pos() != 9 {
		t.Errorf("Jump() pos = %d, want 9 (clamped)", c.Pos())
	}

	c.Jump(-5, 10, 5)
	if c.Pos() != 0 {
		t.Errorf("Jump() pos = %d, want 0 (clamped)", c.Pos())
	}
}

func TestJumpStartEnd(t *testing.T) {
	c := New(2)
	c.JumpEnd(10, 5)
	if c.Pos() != 9 || c.Offset() != 5 {
		t.Errorf("JumpEnd() = (%d, %d), want (9, 5)", c.Pos(), c.Offset())
	}

	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart() = (%d, %d), want (0, 0)", c.Pos(), c.Offset())
	}

	c2 := New(2)
	c2.JumpEnd(0, 5)
	if c2.Pos() != 0 {
		t.Errorf("JumpEnd() on empty list pos = %d, want 0", c2.Pos())
	}
}

func TestPage(t *testing.T) {
	c := New(0)
	c.Page(1, 20, 5)
	if c.Pos() != 4 {
		t.Errorf("Page(+1) pos = %d, want 4", c.Pos())
	}
	c.Page(1, 20, 5)
	if c.Pos() != 8 {
		t.Errorf("Page(+1) pos = %d, want 8", c.Pos())
	}
	c.Page(-1, 20, 5)
	if c.Pos() != 4 {
		t.Errorf("Page(-1) pos = %d, want 4", c.Pos())
	}
}

func TestIndexAt(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 4) // offset 6

	tests := []struct {
		y      int
		wantI  int
		wantOK bool
	}{
		{0, 6, true},
		{3, 9, true},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		i, ok := c.IndexAt(tt.y, 10, 4)
		if i != tt.wantI || ok != tt.wantOK {
			t.Errorf("IndexAt(%d) = (%d, %v), want (%d, %v)", tt.y, i, ok, tt.wantI, tt.wantOK)
		}
	}

	short := New(0)
	if _, ok := short.IndexAt(2, 2, 10); ok {
		t.Error("IndexAt() past the end of a short list should be false")
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(2)
	c.Jump(8, 10, 5)

	c.ClampToBounds(5, 5)
	if c.Pos() != 4 || c.Offset() != 0 {
		t.Errorf("ClampToBounds(5) = (%d, %d), want (4, 0)", c.Pos(), c.Offset())
	}

	c.ClampToBounds(0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("ClampToBounds(0) = (%d, %d), want (0, 0)", c.Pos(), c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		len       int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"normal range", 2, 10, 5, 2, 7},
		{"at end of list", 7, 10, 5, 7, 10},
		{"empty list", 0, 0, 5, 0, 0},
		{"zero height", 0, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.offset = tt.offset
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
