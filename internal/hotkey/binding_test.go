package hotkey

import (
	"strings"
	"testing"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		text       string
		modifiers  Modifier
		key        KeyCode
		normalized string
	}{
		{"ctrl+alt+.", ModCtrl | ModAlt, 0x0034, "ctrl+alt+."},
		{"Alt+Ctrl+,", ModCtrl | ModAlt, 0x0033, "ctrl+alt+,"},
		{"option+`", ModAlt, 0x0029, "alt+`"},
		{"control+option+grave", ModCtrl | ModAlt, 0x0029, "ctrl+alt+`"},
		{" cmd + shift + right ", ModMeta | ModShift, 0xE04D, "shift+meta+right"},
		{"ctrl+alt+period", ModCtrl | ModAlt, 0x0034, "ctrl+alt+."},
		{"super+f12", ModMeta, 0x0058, "meta+f12"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b, err := ParseBinding(tt.text)
			if err != nil {
				t.Fatalf("ParseBinding(%q) error: %v", tt.text, err)
			}
			if b.Modifiers() != tt.modifiers {
				t.Errorf("modifiers = %s, want %s", b.Modifiers(), tt.modifiers)
			}
			if b.Key() != tt.key {
				t.Errorf("key = %#x, want %#x", b.Key(), tt.key)
			}
			if b.String() != tt.normalized {
				t.Errorf("normalized = %q, want %q", b.String(), tt.normalized)
			}
		})
	}
}

func TestParseBinding_Errors(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "empty"},
		{"   ", "empty"},
		{"x", "need modifier+key"},
		{"ctrl+alt+nokey", "unknown key"},
		{"hyper+x", "unknown modifier"},
		{"ctrl+control+x", "duplicate modifier"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseBinding(tt.text)
			if err == nil {
				t.Fatalf("ParseBinding(%q) expected error", tt.text)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestModifiersFromMask(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
		want Modifier
	}{
		{"none", 0, 0},
		{"left ctrl", maskCtrlL, ModCtrl},
		{"right ctrl", maskCtrlR, ModCtrl},
		{"both alts fold", maskAltL | maskAltR, ModAlt},
		{"ctrl alt", maskCtrlL | maskAltR, ModCtrl | ModAlt},
		{"all four", maskShiftL | maskCtrlR | maskMetaL | maskAltL, ModCtrl | ModAlt | ModShift | ModMeta},
		{"caps lock ignored", 1 << 14, 0},
		{"mouse button ignored", 1<<8 | maskShiftR, ModShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModifiersFromMask(tt.mask); got != tt.want {
				t.Errorf("ModifiersFromMask(%#x) = %s, want %s", tt.mask, got, tt.want)
			}
		})
	}
}

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Has(ModCtrl) || !m.Has(ModCtrl|ModAlt) {
		t.Error("expected ctrl+alt to contain ctrl and ctrl+alt")
	}
	if m.Has(ModShift) {
		t.Error("ctrl+alt should not contain shift")
	}
}
