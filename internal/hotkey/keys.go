package hotkey

// KeyCode is a cross-platform virtual key code (libuiohook VC_* values)
type KeyCode uint16

// keyCodes maps binding key names to virtual key codes
var keyCodes = map[string]KeyCode{
	"`": 0x0029, "1": 0x0002, "2": 0x0003, "3": 0x0004, "4": 0x0005,
	"5": 0x0006, "6": 0x0007, "7": 0x0008, "8": 0x0009, "9": 0x000A,
	"0": 0x000B, "-": 0x000C, "=": 0x000D,

	"q": 0x0010, "w": 0x0011, "e": 0x0012, "r": 0x0013, "t": 0x0014,
	"y": 0x0015, "u": 0x0016, "i": 0x0017, "o": 0x0018, "p": 0x0019,
	"[": 0x001A, "]": 0x001B, "\\": 0x002B,

	"a": 0x001E, "s": 0x001F, "d": 0x0020, "f": 0x0021, "g": 0x0022,
	"h": 0x0023, "j": 0x0024, "k": 0x0025, "l": 0x0026, ";": 0x0027,
	"'": 0x0028,

	"z": 0x002C, "x": 0x002D, "c": 0x002E, "v": 0x002F, "b": 0x0030,
	"n": 0x0031, "m": 0x0032, ",": 0x0033, ".": 0x0034, "/": 0x0035,

	"space": 0x0039,

	"f1": 0x003B, "f2": 0x003C, "f3": 0x003D, "f4": 0x003E, "f5": 0x003F,
	"f6": 0x0040, "f7": 0x0041, "f8": 0x0042, "f9": 0x0043, "f10": 0x0044,
	"f11": 0x0057, "f12": 0x0058,

	"up": 0xE048, "left": 0xE04B, "right": 0xE04D, "down": 0xE050,
}

var keyAliases = map[string]string{
	"backquote": "`",
	"grave":     "`",
	"comma":     ",",
	"period":    ".",
	"dot":       ".",
	"slash":     "/",
	"minus":     "-",
	"equals":    "=",
}
