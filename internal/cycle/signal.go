package cycle

// Signal is a navigation request from the menu or the global shortcut
type Signal int

const (
	None Signal = iota
	Advance
	Retreat
)

func (s Signal) String() string {
	switch s {
	case None:
		return "None"
	case Advance:
		return "Advance"
	case Retreat:
		return "Retreat"
	default:
		return "Unknown"
	}
}

// State is the reveal state of the current word
type State int

const (
	Collapsed State = iota
	Revealed
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "Collapsed"
	case Revealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}
