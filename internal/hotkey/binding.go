package hotkey

import (
	"fmt"
	"strings"
)

// Binding is an exact modifier set plus one key.
// Construct only via ParseBinding.
type Binding struct {
	modifiers  Modifier
	key        KeyCode
	normalized string
}

// Modifiers returns the required modifier set
func (b Binding) Modifiers() Modifier { return b.modifiers }

// Key returns the required key code
func (b Binding) Key() KeyCode { return b.key }

// String returns the canonical binding, e.g. "ctrl+alt+."
func (b Binding) String() string { return b.normalized }

// Matches reports whether ev carries exactly this binding's modifiers and key
func (b Binding) Matches(ev RawEvent) bool {
	return ev.KeyCode == b.key && ev.Modifiers == b.modifiers
}

// ParseBinding parses "mod+mod+key". Names are case-insensitive; the last
// element is the key and at least one modifier is required.
func ParseBinding(text string) (Binding, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Binding{}, fmt.Errorf("empty hotkey binding")
	}

	parts := strings.Split(text, "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("invalid binding %q: need modifier+key", text)
	}

	keyName := strings.TrimSpace(parts[len(parts)-1])
	if alias, ok := keyAliases[keyName]; ok {
		keyName = alias
	}
	key, ok := keyCodes[keyName]
	if !ok {
		return Binding{}, fmt.Errorf("invalid binding %q: unknown key %q", text, keyName)
	}

	var mods Modifier
	for _, raw := range parts[:len(parts)-1] {
		name := strings.TrimSpace(raw)
		mod, ok := modifierNames[name]
		if !ok {
			return Binding{}, fmt.Errorf("invalid binding %q: unknown modifier %q (available: ctrl, alt, shift, meta)", text, name)
		}
		if mods&mod != 0 {
			return Binding{}, fmt.Errorf("invalid binding %q: duplicate modifier %q", text, name)
		}
		mods |= mod
	}

	return Binding{
		modifiers:  mods,
		key:        key,
		normalized: mods.String() + "+" + keyName,
	}, nil
}
