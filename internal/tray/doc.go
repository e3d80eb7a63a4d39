// Package tray runs wordbar as a fyne system tray application. It wires the
// word store, cycle controller, position store and global shortcut together
// and owns their lifetimes: everything acquired in New is released exactly
// once, on quit.
package tray
