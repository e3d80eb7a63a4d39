// Package position persists the word list position between launches. It
// offers a small key/value Store with in-memory, fyne preferences and
// sqlite backends.
package position
