package provider

import "strings"

// keyAliases maps the loose key names models emit to the X key names the
// sandbox understands. Every value is a fixed point of NormalizeKey so that
// normalization is idempotent.
var keyAliases = map[string]string{
	"esc":        "Escape",
	"escape":     "Escape",
	"enter":      "Return",
	"return":     "Return",
	"tab":        "Tab",
	"space":      "space",
	"backspace":  "BackSpace",
	"back_space": "BackSpace",
	"delete":     "Delete",
	"del":        "Delete",
	"insert":     "Insert",
	"home":       "Home",
	"end":        "End",
	"pageup":     "Page_Up",
	"page_up":    "Page_Up",
	"pagedown":   "Page_Down",
	"page_down":  "Page_Down",
	"up":         "Up",
	"down":       "Down",
	"left":       "Left",
	"right":      "Right",

	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"shift":   "shift",
	"cmd":     "Super_L",
	"win":     "Super_L",
	"super":   "Super_L",
	"super_l": "Super_L",
	"meta":    "Super_L",
}

func init() {
	// f1..f24 -> F1..F24
	names := []string{
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
		"f13", "f14", "f15", "f16", "f17", "f18", "f19", "f20", "f21", "f22", "f23", "f24",
	}
	for _, n := range names {
		keyAliases[n] = strings.ToUpper(n[:1]) + n[1:]
	}
}

// NormalizeKey maps one key name to its canonical form. Printable single
// characters pass through unchanged; unknown multi-character names keep their
// trimmed spelling.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) == 1 {
		return key
	}
	if canonical, ok := keyAliases[strings.ToLower(key)]; ok {
		return canonical
	}
	return key
}

// NormalizeKeyCombo canonicalizes a key combination: components are split on
// '+', trimmed, individually normalized, and rejoined without spaces.
// NormalizeKeyCombo("ctrl + c") == "ctrl+c".
func NormalizeKeyCombo(combo string) string {
	parts := strings.Split(combo, "+")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = NormalizeKey(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		// the combo was a literal plus (or only separators)
		return strings.TrimSpace(combo)
	}
	return strings.Join(out, "+")
}
