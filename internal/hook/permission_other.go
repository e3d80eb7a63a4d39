//go:build !darwin

package hook

import (
	"os"
	"runtime"
)

// AccessibilityGate reports whether global key hooks can run. Outside macOS
// no permission is needed, but on Linux the hook requires an X display.
type AccessibilityGate struct{}

// Authorized reports whether the key hook can be installed
func (AccessibilityGate) Authorized() bool {
	if runtime.GOOS == "linux" {
		return os.Getenv("DISPLAY") != ""
	}
	return true
}
