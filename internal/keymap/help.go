package keymap

import "github.com/charmbracelet/bubbles/key"

// Help adapts bindings to the bubbles help.KeyMap interface.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds help for the given contexts. The short view lists the
// first binding of each context; the full view has one column per context.
func NewHelp(contexts ...string) Help {
	var h Help
	for _, c := range contexts {
		var column []key.Binding
		for _, b := range ByContext(c) {
			column = append(column, toKeyBinding(b))
		}
		if len(column) == 0 {
			continue
		}
		h.short = append(h.short, column[0])
		h.full = append(h.full, column)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }

func toKeyBinding(b Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKey(b.Keys[0]), b.Description),
	)
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
