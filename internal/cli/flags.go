package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	WordsFile string

	// Global shortcut flags
	NoHotkey   bool
	AdvanceKey string
	RetreatKey string

	// Position persistence flags
	StateBackend string
	StatePath    string

	// Logging flags
	LogLevel   string
	LogConsole bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AdvanceKey:   "ctrl+alt+.",
		RetreatKey:   "ctrl+alt+,",
		StateBackend: "preferences",
		LogLevel:     "info",
		LogConsole:   true,
	}
}
