// Package folderlist renders the album folders found on the server.
package folderlist

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/albums/internal/icons"
	"github.com/llehouerou/albums/internal/keymap"
	"github.com/llehouerou/albums/internal/ui/action"
	"github.com/llehouerou/albums/internal/ui/list"
	"github.com/llehouerou/albums/internal/ui/render"
	"github.com/llehouerou/albums/internal/ui/styles"
)

// Source identifies messages from this panel.
const Source = "folderlist"

// OpenFolder asks the app to load the tracks of Name.
type OpenFolder struct {
	Name string
}

func (OpenFolder) ActionType() string { return "folderlist.open" }

// Model is the folder panel.
type Model struct {
	list.Model[string]

	active  string
	loading bool
	err     string
	spinner string
}

// New creates an empty panel.
func New() Model {
	return Model{Model: list.New[string]()}
}

// SetFolders replaces the folder names.
func (m *Model) SetFolders(names []string) {
	m.Reset(names)
	m.loading = false
	m.err = ""
	if i := m.indexOf(m.active); i >= 0 {
		m.Jump(i)
	}
}

// SetActive marks the folder whose tracks are shown.
func (m *Model) SetActive(name string) {
	m.active = name
	if i := m.indexOf(name); i >= 0 {
		m.Jump(i)
	}
}

// Active returns the folder whose tracks are shown.
func (m Model) Active() string {
	return m.active
}

// SetLoading shows the spinner while folders are discovered.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
	if loading {
		m.err = ""
	}
}

// SetError shows a discovery failure.
func (m *Model) SetError(msg string) {
	m.loading = false
	m.err = msg
}

// SetSpinnerFrame sets the spinner frame shown while loading.
func (m *Model) SetSpinnerFrame(frame string) {
	m.spinner = frame
}

// HandleAction applies a navigation action. Select opens the folder under
// the cursor.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd) {
	cmd := m.result(m.Model.HandleAction(a))
	return m, cmd
}

// HandleMouse handles a mouse event with Y relative to the panel top.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	cmd := m.result(m.Model.HandleMouse(msg))
	return m, cmd
}

func (m Model) result(res list.Result) tea.Cmd {
	if res.Action != list.ActionActivate {
		return nil
	}
	return action.Cmd(Source, OpenFolder{Name: m.Items()[res.Index]})
}

func (m Model) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, f := range m.Items() {
		if f == name {
			return i
		}
	}
	return -1
}

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	width, height := m.InnerWidth(), m.ListHeight()

	right := ""
	if m.loading {
		right = m.spinner
	}
	header := s.Title.Render(render.Row(fmt.Sprintf("Folders (%d)", m.Len()), right, width))

	lines := make([]string, 0, height)
	switch {
	case m.err != "":
		lines = append(lines, s.Error.Render(render.TruncateAndPad(icons.Error()+m.err, width)))
	case m.Len() == 0 && !m.loading:
		lines = append(lines, s.Subtle.Render(render.TruncateAndPad("No folders", width)))
	default:
		items := m.Items()
		start, end := m.VisibleRange()
		for i := start; i < end; i++ {
			line := " " + render.TruncateAndPad(icons.FormatDir(items[i]), width-1)
			lines = append(lines, m.rowStyle(i, items[i]).Render(line))
		}
	}
	return render.Panel(m.IsFocused(), width, height, header, lines)
}

func (m Model) rowStyle(idx int, name string) lipgloss.Style {
	s := styles.T().S()
	switch {
	case m.IsFocused() && idx == m.SelectedIndex():
		return s.Cursor
	case name == m.active:
		return s.Playing
	default:
		return s.Base
	}
}
