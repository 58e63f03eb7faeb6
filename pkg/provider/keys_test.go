package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyCombo(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ctrl + c", "ctrl+c"},
		{"ctrl+c", "ctrl+c"},
		{"esc", "Escape"},
		{"Esc", "Escape"},
		{"cmd+v", "Super_L+v"},
		{"win + r", "Super_L+r"},
		{"super+l", "Super_L+l"},
		{"CTRL + SHIFT + Esc", "ctrl+shift+Escape"},
		{"enter", "Return"},
		{"f5", "F5"},
		{"f24", "F24"},
		{"alt+tab", "alt+Tab"},
		{"page_down", "Page_Down"},
		{"a", "a"},
		{"+", "+"},
		{"unknownkey", "unknownkey"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeKeyCombo(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeKeyComboIdempotent(t *testing.T) {
	inputs := []string{
		"ctrl + c", "esc", "cmd+shift+4", "f12", "page_up+down",
		"enter", "Super_L", "alt + F4",
	}
	for _, in := range inputs {
		once := NormalizeKeyCombo(in)
		assert.Equal(t, once, NormalizeKeyCombo(once), "normalization of %q is not idempotent", in)
	}
}
