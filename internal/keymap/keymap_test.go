//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", ContextGlobal, 3},
		{"playback context", ContextPlayback, 8},
		{"navigation context", ContextNavigation, 5},
		{"seek context", ContextSeek, 4},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestByContexts(t *testing.T) {
	got := ByContexts(ContextGlobal, ContextSeek)
	want := len(ByContext(ContextGlobal)) + len(ByContext(ContextSeek))
	if len(got) != want {
		t.Errorf("ByContexts() returned %d bindings, want %d", len(got), want)
	}
	if got[0].Context != ContextGlobal {
		t.Errorf("first binding context = %q, want global first", got[0].Context)
	}
}

func TestAllBindingsValid(t *testing.T) {
	for _, b := range All {
		if b.Action == "" {
			t.Errorf("binding %q has no action", b.Description)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestNoKeyConflictsWithinResolver(t *testing.T) {
	// Keys must be unique among the contexts that share a resolver.
	groups := [][]string{
		{ContextGlobal, ContextPlayback, ContextNavigation},
		{ContextSeek},
	}
	for _, group := range groups {
		seen := make(map[string]Action)
		for _, b := range ByContexts(group...) {
			for _, k := range b.Keys {
				if other, ok := seen[k]; ok && other != b.Action {
					t.Errorf("key %q bound to both %q and %q", k, other, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
}

func TestHelp(t *testing.T) {
	h := NewHelp(ContextPlayback, ContextSeek, "unknown")

	if len(h.FullHelp()) != 2 {
		t.Fatalf("FullHelp() has %d columns, want 2", len(h.FullHelp()))
	}
	if len(h.ShortHelp()) != 2 {
		t.Errorf("ShortHelp() has %d entries, want 2", len(h.ShortHelp()))
	}

	first := h.FullHelp()[0][0]
	if first.Help().Key != "space" {
		t.Errorf("play/pause help key = %q, want %q", first.Help().Key, "space")
	}
	if first.Help().Desc != "Play/pause" {
		t.Errorf("play/pause help desc = %q", first.Help().Desc)
	}
}
