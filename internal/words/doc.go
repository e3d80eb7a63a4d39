// Package words holds the vocabulary list shown in the status bar. It loads
// term/translation pairs from JSON, YAML or plain text sources, falls back to
// a built-in word when nothing usable is found, and tracks the current
// position in the list across restarts.
package words
