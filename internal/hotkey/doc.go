// Package hotkey filters system-wide key events down to the two navigation
// shortcuts and forwards matches as cycle signals. The raw event source, the
// permission check and the user notice are injected, so the policy here runs
// without a display or an accessibility subsystem.
package hotkey
