package words

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type mapPositions struct {
	values map[string]int
	err    error
}

func (m *mapPositions) Get(key string) (int, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mapPositions) Set(key string, value int) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func sample() []Entry {
	return []Entry{
		{Term: "vacant", Translation: "空的"},
		{Term: "abandon", Translation: "放弃"},
		{Term: "ripe", Translation: "成熟的"},
	}
}

func TestNewStore_FallsBackWhenEmpty(t *testing.T) {
	for _, entries := range [][]Entry{nil, {}} {
		store := NewStore(entries, zerolog.Nop())
		if store.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", store.Len())
		}
		e, ok := store.Current()
		if !ok || e.Term != "vacant" || e.Translation != "空的" {
			t.Errorf("Current() = %v, %v; want vacant/空的", e, ok)
		}
	}
}

func TestNewStore_CopiesEntries(t *testing.T) {
	entries := sample()
	store := NewStore(entries, zerolog.Nop())

	entries[0].Term = "changed"

	if e, _ := store.Current(); e.Term != "vacant" {
		t.Errorf("store shares caller slice: Current().Term = %s", e.Term)
	}

	list := store.Entries()
	list[1].Term = "changed"
	if store.Entries()[1].Term != "abandon" {
		t.Error("Entries() exposes internal slice")
	}
}

func TestRestoreIndex(t *testing.T) {
	tests := []struct {
		name      string
		persisted int
		ok        bool
		want      int
	}{
		{"absent", 0, false, 0},
		{"in range", 2, true, 2},
		{"first", 0, true, 0},
		{"past end", 5, true, 0},
		{"exactly length", 3, true, 0},
		{"negative", -1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(sample(), zerolog.Nop())
			got := store.RestoreIndex(tt.persisted, tt.ok)
			if got != tt.want {
				t.Errorf("RestoreIndex(%d, %v) = %d, want %d", tt.persisted, tt.ok, got, tt.want)
			}
			if store.Index() != tt.want {
				t.Errorf("Index() = %d, want %d", store.Index(), tt.want)
			}
		})
	}
}

func TestRestoreIndex_FromPositions(t *testing.T) {
	ps := &mapPositions{values: map[string]int{IndexKey: 1}}
	store := NewStore(sample(), zerolog.Nop())

	if got := store.RestoreIndex(ps.Get(IndexKey)); got != 1 {
		t.Errorf("RestoreIndex = %d, want 1", got)
	}
}

func TestPersistIndex(t *testing.T) {
	ps := &mapPositions{values: map[string]int{}}
	store := NewStore(sample(), zerolog.Nop())
	if err := store.SetIndex(2); err != nil {
		t.Fatalf("SetIndex: %v", err)
	}

	if err := store.PersistIndex(ps); err != nil {
		t.Fatalf("PersistIndex: %v", err)
	}
	if ps.values[IndexKey] != 2 {
		t.Errorf("persisted %d, want 2", ps.values[IndexKey])
	}

	// Round trip into a fresh store
	next := NewStore(sample(), zerolog.Nop())
	if got := next.RestoreIndex(ps.Get(IndexKey)); got != 2 {
		t.Errorf("restored %d, want 2", got)
	}
}

func TestPersistIndex_Error(t *testing.T) {
	boom := errors.New("disk full")
	ps := &mapPositions{values: map[string]int{}, err: boom}
	store := NewStore(sample(), zerolog.Nop())

	err := store.PersistIndex(ps)
	if !errors.Is(err, boom) {
		t.Errorf("PersistIndex error = %v, want wrapped %v", err, boom)
	}
}

func TestSetIndex_OutOfRange(t *testing.T) {
	store := NewStore(sample(), zerolog.Nop())

	for _, i := range []int{-1, 3, 10} {
		if err := store.SetIndex(i); err == nil {
			t.Errorf("SetIndex(%d) expected error", i)
		}
	}
	if store.Index() != 0 {
		t.Errorf("Index() changed to %d after rejected SetIndex", store.Index())
	}
}
