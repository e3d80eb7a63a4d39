package hotkey

import "strings"

// Modifier is a set of held modifier keys, left and right folded together
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// Raw modifier mask bits as reported by the key hook (libuiohook layout)
const (
	maskShiftL uint16 = 1 << 0
	maskCtrlL  uint16 = 1 << 1
	maskMetaL  uint16 = 1 << 2
	maskAltL   uint16 = 1 << 3
	maskShiftR uint16 = 1 << 4
	maskCtrlR  uint16 = 1 << 5
	maskMetaR  uint16 = 1 << 6
	maskAltR   uint16 = 1 << 7
)

// ModifiersFromMask converts a raw hook mask into a Modifier set.
// Mouse button and lock-key bits are ignored.
func ModifiersFromMask(mask uint16) Modifier {
	var m Modifier
	if mask&(maskCtrlL|maskCtrlR) != 0 {
		m |= ModCtrl
	}
	if mask&(maskAltL|maskAltR) != 0 {
		m |= ModAlt
	}
	if mask&(maskShiftL|maskShiftR) != 0 {
		m |= ModShift
	}
	if mask&(maskMetaL|maskMetaR) != 0 {
		m |= ModMeta
	}
	return m
}

// Has reports whether all modifiers in o are held
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// String lists the modifiers in canonical order, joined by "+"
func (m Modifier) String() string {
	var parts []string
	for _, mod := range []struct {
		bit  Modifier
		name string
	}{
		{ModCtrl, "ctrl"},
		{ModAlt, "alt"},
		{ModShift, "shift"},
		{ModMeta, "meta"},
	} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
}
