package hotkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordbar/internal/cycle"
)

// ErrUnavailable is returned by Install when the global shortcut cannot be used
var ErrUnavailable = errors.New("global shortcut unavailable")

// PermissionGate reports whether the process may observe system-wide input.
// It must not prompt the user.
type PermissionGate interface {
	Authorized() bool
}

// Notifier shows a fire-and-forget message to the user
type Notifier interface {
	Notify(title, message string)
}

// Source delivers system-wide key presses until Stop
type Source interface {
	Start() (<-chan RawEvent, error)
	Stop()
}

// Gateway installs the global key listener subject to authorization
type Gateway struct {
	gate     PermissionGate
	notifier Notifier
	source   Source
	log      zerolog.Logger

	mu         sync.Mutex
	active     *Listener
	noticeOnce sync.Once
}

// NewGateway creates a gateway over the given platform capabilities
func NewGateway(gate PermissionGate, notifier Notifier, source Source, log zerolog.Logger) *Gateway {
	return &Gateway{
		gate:     gate,
		notifier: notifier,
		source:   source,
		log:      log,
	}
}

// CheckAuthorization queries the permission gate without prompting
func (g *Gateway) CheckAuthorization() bool {
	ok := g.gate.Authorized()
	if !ok {
		g.log.Warn().Msg("input monitoring not authorized, global shortcut disabled")
	}
	return ok
}

// Install starts the key listener and calls onMatch for every press the
// matcher maps to Advance or Retreat. Without authorization it shows a
// one-time notice and returns ErrUnavailable. A second Install while a
// listener is active returns that listener.
func (g *Gateway) Install(m *Matcher, onMatch func(cycle.Signal)) (*Listener, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active != nil {
		return g.active, nil
	}

	if !g.CheckAuthorization() {
		g.noticeOnce.Do(func() {
			g.notifier.Notify("Global shortcut unavailable",
				fmt.Sprintf("wordbar cannot observe key presses on this system, so %s / %s are off. The menu still works.",
					m.Advance(), m.Retreat()))
		})
		return nil, ErrUnavailable
	}

	events, err := g.source.Start()
	if err != nil {
		g.log.Error().Err(err).Msg("failed to start key listener")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	l := &Listener{
		source: g.source,
		done:   make(chan struct{}),
		log:    g.log,
		onClose: func(l *Listener) {
			g.mu.Lock()
			if g.active == l {
				g.active = nil
			}
			g.mu.Unlock()
		},
	}
	l.wg.Add(1)
	go l.dispatch(events, m, onMatch)

	g.active = l
	g.log.Info().
		Str("advance", m.Advance().String()).
		Str("retreat", m.Retreat().String()).
		Msg("global shortcut installed")
	return l, nil
}

// Uninstall releases l; nil and repeated calls are no-ops
func (g *Gateway) Uninstall(l *Listener) {
	if l == nil {
		return
	}
	l.Uninstall()
}

// Active reports whether a listener is currently installed
func (g *Gateway) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active != nil
}

// Listener is an installed global key observer
type Listener struct {
	source  Source
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	log     zerolog.Logger
	onClose func(*Listener)
}

func (l *Listener) dispatch(events <-chan RawEvent, m *Matcher, onMatch func(cycle.Signal)) {
	defer l.wg.Done()

	for {
		select {
		case <-l.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if sig := m.Match(ev); sig != cycle.None {
				onMatch(sig)
			}
		}
	}
}

// Uninstall stops the source and waits for the dispatcher to exit.
// Safe to call more than once.
func (l *Listener) Uninstall() {
	l.once.Do(func() {
		close(l.done)
		l.source.Stop()
		if l.onClose != nil {
			l.onClose(l)
		}
		l.log.Debug().Msg("global shortcut uninstalled")
	})
	l.wg.Wait()
}
