package words

import "fmt"

// Entry is a term with its translation
type Entry struct {
	Term        string
	Translation string
}

// String renders the entry in the "term = translation" source format
func (e Entry) String() string {
	return fmt.Sprintf("%s = %s", e.Term, e.Translation)
}

// DefaultEntries returns the built-in list used when no source is usable
func DefaultEntries() []Entry {
	return []Entry{
		{Term: "vacant", Translation: "空的"},
	}
}
