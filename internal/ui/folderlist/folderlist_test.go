package folderlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/albums/internal/keymap"
	"github.com/llehouerou/albums/internal/ui"
	"github.com/llehouerou/albums/internal/ui/action"
	"github.com/llehouerou/albums/internal/ui/testutil"
)

func newTestModel(names ...string) Model {
	m := New()
	m.SetSize(30, 10)
	m.SetFocused(true)
	m.SetFolders(names)
	return m
}

func openedFolder(t *testing.T, msg any) string {
	t.Helper()
	am, ok := msg.(action.Msg)
	require.True(t, ok, "msg = %T", msg)
	assert.Equal(t, Source, am.Source)
	of, ok := am.Action.(OpenFolder)
	require.True(t, ok, "action = %T", am.Action)
	return of.Name
}

func TestView(t *testing.T) {
	m := newTestModel("rock", "jazz")

	out := testutil.StripANSI(m.View())

	assert.Contains(t, out, "Folders (2)")
	assert.NotEmpty(t, testutil.FindLine(out, " rock/"))
	assert.NotEmpty(t, testutil.FindLine(out, " jazz/"))
	assert.Empty(t, New().View())
}

func TestView_States(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, testutil.StripANSI(m.View()), "No folders")

	m.SetLoading(true)
	m.SetSpinnerFrame("*")
	out := testutil.StripANSI(m.View())
	assert.NotContains(t, out, "No folders")
	assert.True(t, strings.Contains(testutil.FindLine(out, "Folders"), "*"))

	m.SetError("fetch failed")
	assert.Contains(t, testutil.StripANSI(m.View()), "fetch failed")
}

func TestHandleAction_Open(t *testing.T) {
	m := newTestModel("rock", "jazz", "blues")

	m, cmd := m.HandleAction(keymap.ActionMoveDown)
	assert.Nil(t, cmd)
	_, cmd = m.HandleAction(keymap.ActionSelect)
	require.NotNil(t, cmd)
	assert.Equal(t, "jazz", openedFolder(t, cmd()))
}

func TestHandleMouse_Open(t *testing.T) {
	m := newTestModel("rock", "jazz", "blues")
	firstRow := ui.BorderHeight/2 + ui.HeaderHeight

	_, cmd := m.HandleMouse(testutil.Press(2, firstRow+2))
	require.NotNil(t, cmd)
	assert.Equal(t, "blues", openedFolder(t, cmd()))

	_, cmd = m.HandleMouse(testutil.Press(2, firstRow+5))
	assert.Nil(t, cmd, "click below the last folder")
}

func TestSetActive_MovesCursor(t *testing.T) {
	m := newTestModel("rock", "jazz", "blues")

	m.SetActive("blues")
	assert.Equal(t, 2, m.SelectedIndex())
	assert.Equal(t, "blues", m.Active())

	// The cursor returns to the active folder when the list is refreshed.
	m.SetFolders([]string{"ambient", "blues"})
	assert.Equal(t, 1, m.SelectedIndex())

	m.SetActive("unknown")
	assert.Equal(t, 1, m.SelectedIndex())
}
