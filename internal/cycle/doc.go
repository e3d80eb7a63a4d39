// Package cycle implements the reveal/advance state machine behind the
// status bar. Advance first reveals the current word's translation and only
// moves on with the second press; Retreat always moves back and hides the
// translation. Signals from the menu and the global shortcut are serialized
// through a single-consumer Queue.
package cycle
