//go:build darwin

package hook

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static int wordbarTrusted(void) {
	const void *keys[] = { kAXTrustedCheckOptionPrompt };
	const void *values[] = { kCFBooleanFalse };
	CFDictionaryRef opts = CFDictionaryCreate(NULL, keys, values, 1,
		&kCFCopyStringDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
	Boolean trusted = AXIsProcessTrustedWithOptions(opts);
	CFRelease(opts);
	return trusted ? 1 : 0;
}
*/
import "C"

// AccessibilityGate checks the macOS accessibility trust list
type AccessibilityGate struct{}

// Authorized reports whether the process is trusted, without prompting
func (AccessibilityGate) Authorized() bool {
	return C.wordbarTrusted() == 1
}
