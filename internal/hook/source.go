package hook

import (
	"errors"
	"sync"

	gohook "github.com/robotn/gohook"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordbar/internal/hotkey"
)

// bufferSize bounds the presses waiting for the gateway; overflow is dropped
const bufferSize = 32

// Source streams system-wide key presses from gohook
type Source struct {
	log zerolog.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSource creates an idle source
func NewSource(log zerolog.Logger) *Source {
	return &Source{log: log}
}

// Start begins the global hook. Only key-pressed events are forwarded.
func (s *Source) Start() (<-chan hotkey.RawEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, errors.New("key hook already running")
	}

	events := gohook.Start()
	out := make(chan hotkey.RawEvent, bufferSize)
	s.done = make(chan struct{})
	s.running = true

	s.wg.Add(1)
	go s.forward(events, out, s.done)

	return out, nil
}

func (s *Source) forward(events chan gohook.Event, out chan<- hotkey.RawEvent, done <-chan struct{}) {
	defer s.wg.Done()
	defer close(out)

	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			// KeyHold is the key-pressed event; KeyDown only carries the typed rune
			if ev.Kind != gohook.KeyHold {
				continue
			}
			raw := hotkey.RawEvent{
				Modifiers: hotkey.ModifiersFromMask(ev.Mask),
				KeyCode:   hotkey.KeyCode(ev.Keycode),
			}
			select {
			case out <- raw:
			default:
				s.log.Warn().Uint16("keycode", ev.Keycode).Msg("key event dropped, consumer busy")
			}
		}
	}
}

// Stop ends the global hook. Safe to call when not running.
func (s *Source) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	s.mu.Unlock()

	gohook.End()
	s.wg.Wait()
}

var (
	_ hotkey.Source         = (*Source)(nil)
	_ hotkey.PermissionGate = AccessibilityGate{}
)
