package position

import (
	"math"

	"fyne.io/fyne/v2"
)

// missing is returned by the preferences lookup when no value is stored
const missing = math.MinInt32

// Preferences stores positions in the fyne application preferences
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences wraps the preferences of a fyne app
func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

// Get returns the stored preference; absent keys report false
func (p *Preferences) Get(key string) (int, bool) {
	v := p.prefs.IntWithFallback(key, missing)
	if v == missing {
		return 0, false
	}
	return v, true
}

// Set writes the preference; fyne persists it
func (p *Preferences) Set(key string, value int) error {
	p.prefs.SetInt(key, value)
	return nil
}

// Close is a no-op; fyne flushes preferences on exit
func (p *Preferences) Close() error {
	return nil
}
