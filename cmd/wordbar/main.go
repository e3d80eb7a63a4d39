package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordbar/internal/cli"
	"codeberg.org/snonux/wordbar/internal/logger"
	"codeberg.org/snonux/wordbar/internal/tray"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	settings, err := cli.ResolveSettings(flags)
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, settings.LogLevel, settings.LogConsole)

	app, err := tray.New(&tray.Config{
		WordsFile:     settings.WordsFile,
		HotkeyEnabled: settings.HotkeyEnabled,
		AdvanceKey:    settings.AdvanceKey,
		RetreatKey:    settings.RetreatKey,
		StateBackend:  settings.StateBackend,
		StatePath:     settings.StatePath,
	}, tray.Deps{Log: log})
	if err != nil {
		return err
	}

	// Blocks until Quit; the listener is released and the position saved on the way out
	app.Run()
	return nil
}
