package words

import (
	"fmt"

	"github.com/rs/zerolog"
)

// IndexKey is the key under which the current position is persisted
const IndexKey = "currentIndex"

// Positions is the key/value capability the store persists its index into
type Positions interface {
	Get(key string) (int, bool)
	Set(key string, value int) error
}

// Store is the ordered, read-only word list plus the current position.
// It is not safe for concurrent use; the cycle controller owns it.
type Store struct {
	entries []Entry
	index   int
	log     zerolog.Logger
}

// NewStore creates a store over entries, falling back to DefaultEntries
// when entries is empty. The slice is copied.
func NewStore(entries []Entry, log zerolog.Logger) *Store {
	if len(entries) == 0 {
		log.Info().Msg("word list empty, using built-in default")
		entries = DefaultEntries()
	}

	list := make([]Entry, len(entries))
	copy(list, entries)

	return &Store{
		entries: list,
		log:     log,
	}
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// Index returns the current position
func (s *Store) Index() int {
	return s.index
}

// Current returns the entry at the current position
func (s *Store) Current() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[s.index], true
}

// Entries returns a copy of the word list
func (s *Store) Entries() []Entry {
	list := make([]Entry, len(s.entries))
	copy(list, s.entries)
	return list
}

// SetIndex moves the current position
func (s *Store) SetIndex(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(s.entries))
	}
	s.index = index
	return nil
}

// RestoreIndex applies a persisted position. A missing or out of range
// value resets the position to 0.
func (s *Store) RestoreIndex(persisted int, ok bool) int {
	s.index = 0
	if !ok {
		return s.index
	}

	if persisted < 0 || persisted >= len(s.entries) {
		s.log.Info().
			Int("persisted", persisted).
			Int("length", len(s.entries)).
			Msg("persisted index out of range, starting at first word")
		return s.index
	}

	s.index = persisted
	return s.index
}

// PersistIndex writes the current position to ps
func (s *Store) PersistIndex(ps Positions) error {
	if err := ps.Set(IndexKey, s.index); err != nil {
		return fmt.Errorf("failed to persist index: %w", err)
	}
	return nil
}
