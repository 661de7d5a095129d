// Package list provides the scrollable list shared by the folder and track
// panels. It handles navigation and mouse input and reports what happened;
// the owner renders rows using VisibleRange.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/keymap"
	"github.com/llehouerou/albums/internal/ui"
	"github.com/llehouerou/albums/internal/ui/cursor"
)

// Action represents what happened during an update.
type Action int

const (
	ActionNone     Action = iota
	ActionMoved           // cursor moved or list scrolled
	ActionActivate        // enter pressed or row clicked
)

// Result tells the owner what happened.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

var none = Result{Index: -1}

// Model is a scrollable list of T.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates an empty list.
func New[T any]() Model[T] {
	return Model[T]{cursor: cursor.New(ui.ScrollMargin)}
}

// SetItems replaces the items and keeps the cursor in bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items), m.ListHeight())
}

// Reset replaces the items and moves the cursor to the top.
func (m *Model[T]) Reset(items []T) {
	m.items = items
	m.cursor.Reset()
}

// Items returns the items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Jump moves the cursor to index.
func (m *Model[T]) Jump(index int) {
	m.cursor.Jump(index, len(m.items), m.ListHeight())
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight())
}

// HandleAction applies a navigation or selection action.
func (m *Model[T]) HandleAction(a keymap.Action) Result {
	n, h := len(m.items), m.ListHeight()
	if n == 0 {
		return none
	}

	switch a { //nolint:exhaustive // only list actions
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, h)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, h)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, h)
	case keymap.ActionPageUp:
		m.cursor.Page(-1, n, h)
	case keymap.ActionPageDown:
		m.cursor.Page(1, n, h)
	case keymap.ActionSelect:
		return Result{Action: ActionActivate, Index: m.cursor.Pos()}
	default:
		return none
	}
	return Result{Action: ActionMoved, Index: m.cursor.Pos()}
}

// HandleMouse handles a mouse event whose Y is relative to the top of the
// panel (border row = 0). A left click on a row activates it; the wheel
// moves the cursor.
func (m *Model[T]) HandleMouse(msg tea.MouseMsg) Result {
	n, h := len(m.items), m.ListHeight()
	if n == 0 {
		return none
	}

	switch msg.Button { //nolint:exhaustive // only left button and wheel
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, n, h)
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, n, h)
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return none
		}
		row := msg.Y - ui.BorderHeight/2 - ui.HeaderHeight
		i, ok := m.cursor.IndexAt(row, n, h)
		if !ok {
			return none
		}
		m.cursor.Jump(i, n, h)
		return Result{Action: ActionActivate, Index: i}
	}
	return none
}
