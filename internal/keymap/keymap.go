// Package keymap defines key bindings for the application.
package keymap

// Binding contexts.
const (
	ContextGlobal     = "global"
	ContextPlayback   = "playback"
	ContextNavigation = "navigation"
	ContextSeek       = "seek"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},
	{ActionRefresh, []string{"r"}, "Reload folder", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{"n"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"p"}, "Previous track", ContextPlayback},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5s", ContextPlayback},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5s", ContextPlayback},
	{ActionSeekMode, []string{"s"}, "Seek mode", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume +5%", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume -5%", ContextPlayback},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", ContextPlayback},

	// Navigation
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextNavigation},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextNavigation},
	{ActionJumpStart, []string{"g", "home"}, "First item", ContextNavigation},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", ContextNavigation},
	{ActionPageUp, []string{"pgup"}, "Page up", ContextNavigation},
	{ActionPageDown, []string{"pgdown"}, "Page down", ContextNavigation},
	{ActionSelect, []string{"enter"}, "Play track / open folder", ContextNavigation},

	// Seek mode
	{ActionSeekPreviewBack, []string{"left", "h"}, "Preview -5s", ContextSeek},
	{ActionSeekPreviewForward, []string{"right", "l"}, "Preview +5s", ContextSeek},
	{ActionSeekCommit, []string{"enter"}, "Jump to preview", ContextSeek},
	{ActionSeekCancel, []string{"esc", "s"}, "Leave seek mode", ContextSeek},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ByContexts returns the bindings of several contexts, in order.
func ByContexts(contexts ...string) []Binding {
	var result []Binding
	for _, c := range contexts {
		result = append(result, ByContext(c)...)
	}
	return result
}
