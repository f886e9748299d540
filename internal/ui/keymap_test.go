package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Next", km.Next},
		{"Prev", km.Prev},
		{"First", km.First},
		{"Last", km.Last},
		{"ScrollDown", km.ScrollDown},
		{"ScrollUp", km.ScrollUp},
		{"Search", km.Search},
		{"NextMatch", km.NextMatch},
		{"PrevMatch", km.PrevMatch},
		{"Help", km.Help},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_NavigationKeys(t *testing.T) {
	km := DefaultKeyMap()

	hasKey := func(b key.Binding, want string) bool {
		for _, k := range b.Keys() {
			if k == want {
				return true
			}
		}
		return false
	}

	for _, want := range []string{"right", "down", " ", "pgdown"} {
		if !hasKey(km.Next, want) {
			t.Errorf("expected Next binding to include %q", want)
		}
	}
	for _, want := range []string{"left", "up", "pgup"} {
		if !hasKey(km.Prev, want) {
			t.Errorf("expected Prev binding to include %q", want)
		}
	}
	if !hasKey(km.First, "home") {
		t.Error("expected First binding to include 'home'")
	}
	if !hasKey(km.Last, "end") {
		t.Error("expected Last binding to include 'end'")
	}
}
