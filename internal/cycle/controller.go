package cycle

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordbar/internal/words"
)

// Controller owns the reveal flag and moves the store's index.
// Every transition holds mu, so direct calls and the Queue consumer may
// run on different goroutines. onChange calls happen in transition order.
type Controller struct {
	store    *words.Store
	revealed bool
	onChange func(display string)
	log      zerolog.Logger
	mu       sync.Mutex
	notifyMu sync.Mutex
}

// NewController creates a controller over store, starting Collapsed
func NewController(store *words.Store, log zerolog.Logger) *Controller {
	return &Controller{
		store: store,
		log:   log,
	}
}

// SetOnChange sets the callback receiving the display string after each
// transition. fn must not call back into the controller.
func (c *Controller) SetOnChange(fn func(display string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Handle dispatches a signal and returns the resulting display string
func (c *Controller) Handle(sig Signal) string {
	switch sig {
	case Advance:
		return c.Advance()
	case Retreat:
		return c.Retreat()
	default:
		return c.Display()
	}
}

// Advance reveals the current translation, or when already revealed moves
// to the next word and collapses
func (c *Controller) Advance() string {
	c.mu.Lock()
	n := c.store.Len()
	if n == 0 {
		c.mu.Unlock()
		return ""
	}

	if !c.revealed {
		c.revealed = true
	} else {
		c.moveLocked((c.store.Index() + 1) % n)
	}

	return c.notifyLocked("advance")
}

// Retreat moves to the previous word and always collapses
func (c *Controller) Retreat() string {
	c.mu.Lock()
	n := c.store.Len()
	if n == 0 {
		c.mu.Unlock()
		return ""
	}

	c.moveLocked((c.store.Index() - 1 + n) % n)

	return c.notifyLocked("retreat")
}

// notifyLocked releases mu and hands the new display to onChange.
// notifyMu is taken before mu is released so callbacks keep transition order.
func (c *Controller) notifyLocked(op string) string {
	display, index, fn := c.displayLocked(), c.store.Index(), c.onChange
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	c.log.Debug().Int("index", index).Str("display", display).Msg(op)
	if fn != nil {
		fn(display)
	}
	return display
}

// Display returns the string for the status bar
func (c *Controller) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayLocked()
}

// State returns the current reveal state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.revealed {
		return Revealed
	}
	return Collapsed
}

// Index returns the store's current position
func (c *Controller) Index() int {
	return c.index()
}

func (c *Controller) index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Index()
}

// moveLocked changes the index; revealed resets on every index change
func (c *Controller) moveLocked(index int) {
	if err := c.store.SetIndex(index); err != nil {
		c.log.Error().Err(err).Msg("index update rejected")
		return
	}
	c.revealed = false
}

func (c *Controller) displayLocked() string {
	entry, ok := c.store.Current()
	if !ok {
		return ""
	}
	return Project(entry, c.revealed)
}

// Project renders an entry for the given reveal state
func Project(entry words.Entry, revealed bool) string {
	if !revealed {
		return entry.Term
	}
	return fmt.Sprintf("%s | %s", entry.Term, entry.Translation)
}
