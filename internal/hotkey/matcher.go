package hotkey

import (
	"fmt"

	"codeberg.org/snonux/wordbar/internal/cycle"
)

// RawEvent is a key press reduced to the fields the matcher needs
type RawEvent struct {
	Modifiers Modifier
	KeyCode   KeyCode
}

// Matcher maps raw key presses onto navigation signals
type Matcher struct {
	advance Binding
	retreat Binding
}

// NewMatcher creates a matcher; the two bindings must differ
func NewMatcher(advance, retreat Binding) (*Matcher, error) {
	if advance == retreat {
		return nil, fmt.Errorf("advance and retreat share the binding %s", advance)
	}
	return &Matcher{advance: advance, retreat: retreat}, nil
}

// ParseMatcher parses both bindings and builds a matcher
func ParseMatcher(advance, retreat string) (*Matcher, error) {
	adv, err := ParseBinding(advance)
	if err != nil {
		return nil, fmt.Errorf("advance hotkey: %w", err)
	}
	ret, err := ParseBinding(retreat)
	if err != nil {
		return nil, fmt.Errorf("retreat hotkey: %w", err)
	}
	return NewMatcher(adv, ret)
}

// Match returns Advance or Retreat for an exact binding match, None otherwise.
// Extra held modifiers disqualify a match.
func (m *Matcher) Match(ev RawEvent) cycle.Signal {
	switch {
	case m.advance.Matches(ev):
		return cycle.Advance
	case m.retreat.Matches(ev):
		return cycle.Retreat
	default:
		return cycle.None
	}
}

// Advance returns the forward binding
func (m *Matcher) Advance() Binding { return m.advance }

// Retreat returns the backward binding
func (m *Matcher) Retreat() Binding { return m.retreat }
