package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordbar/internal"
	"codeberg.org/snonux/wordbar/internal/hotkey"
	"codeberg.org/snonux/wordbar/internal/position"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordbar",
		Short: "Vocabulary flashcards in the status bar",
		Long: `wordbar shows one English word at a time in the system status bar.

The first "next" reveals the translation, the second moves to the next
word. "Previous" goes back one word and hides the translation. Both work
from the tray menu and from a global shortcut.

Examples:
  wordbar                              # Use ~/.config/wordbar/words.json
  wordbar --words gre.yaml             # Load a YAML word list
  wordbar --advance-key "ctrl+alt+]"   # Change the forward shortcut`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultWords := filepath.Join(home, ".config", "wordbar", "words.json")
	defaultState := filepath.Join(home, ".local", "state", "wordbar", "state.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordbar.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.WordsFile, "words", "w", defaultWords, "Word list (.json, .yaml or 'term = translation' lines)")
	cmd.Flags().BoolVar(&flags.NoHotkey, "no-hotkey", false, "Disable the global shortcut")
	cmd.Flags().StringVar(&flags.AdvanceKey, "advance-key", flags.AdvanceKey, "Global shortcut that reveals / moves to the next word")
	cmd.Flags().StringVar(&flags.RetreatKey, "retreat-key", flags.RetreatKey, "Global shortcut that moves to the previous word")
	cmd.Flags().StringVar(&flags.StateBackend, "state-backend", flags.StateBackend, "Where the position is kept: preferences, sqlite or memory")
	cmd.Flags().StringVar(&flags.StatePath, "state-path", defaultState, "Database file for the sqlite state backend")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.LogConsole, "log-console", flags.LogConsole, "Human readable logs instead of JSON")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("words.file", cmd.Flags().Lookup("words"))
	viper.BindPFlag("hotkey.advance", cmd.Flags().Lookup("advance-key"))
	viper.BindPFlag("hotkey.retreat", cmd.Flags().Lookup("retreat-key"))
	viper.BindPFlag("state.backend", cmd.Flags().Lookup("state-backend"))
	viper.BindPFlag("state.path", cmd.Flags().Lookup("state-path"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.console", cmd.Flags().Lookup("log-console"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// Optional .env next to the binary's working directory
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordbar" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordbar")
	}

	viper.SetDefault("hotkey.enabled", true)

	// Environment variables
	viper.SetEnvPrefix("WORDBAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Settings is the validated configuration the application runs with
type Settings struct {
	WordsFile     string
	HotkeyEnabled bool
	AdvanceKey    string
	RetreatKey    string
	StateBackend  string
	StatePath     string
	LogLevel      string
	LogConsole    bool
}

// ResolveSettings merges flags and viper (config file, env) and validates
// the shortcut bindings and state backend
func ResolveSettings(flags *Flags) (*Settings, error) {
	s := &Settings{
		WordsFile:     stringOr("words.file", flags.WordsFile),
		HotkeyEnabled: !flags.NoHotkey,
		AdvanceKey:    stringOr("hotkey.advance", flags.AdvanceKey),
		RetreatKey:    stringOr("hotkey.retreat", flags.RetreatKey),
		StateBackend:  stringOr("state.backend", flags.StateBackend),
		StatePath:     stringOr("state.path", flags.StatePath),
		LogLevel:      stringOr("log.level", flags.LogLevel),
		LogConsole:    flags.LogConsole,
	}
	if viper.IsSet("hotkey.enabled") && !viper.GetBool("hotkey.enabled") {
		s.HotkeyEnabled = false
	}
	if viper.IsSet("log.console") {
		s.LogConsole = viper.GetBool("log.console")
	}

	if err := position.CheckBackend(s.StateBackend); err != nil {
		return nil, err
	}
	if _, err := hotkey.ParseMatcher(s.AdvanceKey, s.RetreatKey); err != nil {
		return nil, fmt.Errorf("invalid shortcut configuration: %w", err)
	}

	return s, nil
}

// stringOr returns the viper value for key, or fallback when unset
func stringOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
