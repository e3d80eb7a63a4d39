// Package hook connects the hotkey gateway to the operating system: a
// gohook-backed key event source and the input-monitoring permission check.
package hook
