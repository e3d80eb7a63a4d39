package tray

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordbar/internal/cycle"
	"codeberg.org/snonux/wordbar/internal/hook"
	"codeberg.org/snonux/wordbar/internal/hotkey"
	"codeberg.org/snonux/wordbar/internal/logger"
	"codeberg.org/snonux/wordbar/internal/position"
	"codeberg.org/snonux/wordbar/internal/words"
)

// AppID identifies wordbar's preferences in fyne
const AppID = "org.codeberg.snonux.wordbar"

// Application is the status bar app and owns every resource with a lifetime
type Application struct {
	app  fyne.App
	tray bool

	// Menu
	menu   *fyne.Menu
	header *fyne.MenuItem

	// Core
	store      *words.Store
	controller *cycle.Controller
	queue      *cycle.Queue
	positions  position.Store

	// Global shortcut
	gateway  *hotkey.Gateway
	matcher  *hotkey.Matcher
	listener *hotkey.Listener

	config   *Config
	log      zerolog.Logger
	setTitle func(string)

	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.Mutex
	shutdownOnce sync.Once
}

// Config holds tray application configuration
type Config struct {
	WordsFile     string
	HotkeyEnabled bool
	AdvanceKey    string
	RetreatKey    string
	StateBackend  string
	StatePath     string
}

// DefaultConfig returns default tray configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		WordsFile:     filepath.Join(homeDir, ".config", "wordbar", "words.json"),
		HotkeyEnabled: true,
		AdvanceKey:    "ctrl+alt+.",
		RetreatKey:    "ctrl+alt+,",
		StateBackend:  position.BackendPreferences,
		StatePath:     filepath.Join(homeDir, ".local", "state", "wordbar", "state.db"),
	}
}

// Deps are the platform collaborators; zero fields get the real implementations
type Deps struct {
	App      fyne.App
	Gate     hotkey.PermissionGate
	Source   hotkey.Source
	Notifier hotkey.Notifier
	Log      zerolog.Logger
}

// New creates the application: loads words, restores the position and
// builds the menu. The global shortcut is installed once the app starts.
func New(config *Config, deps Deps) (*Application, error) {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.AdvanceKey == "" {
			config.AdvanceKey = defaults.AdvanceKey
		}
		if config.RetreatKey == "" {
			config.RetreatKey = defaults.RetreatKey
		}
		if config.StateBackend == "" {
			config.StateBackend = defaults.StateBackend
		}
		if config.StatePath == "" {
			config.StatePath = defaults.StatePath
		}
	}

	log := deps.Log
	fyneApp := deps.App
	if fyneApp == nil {
		fyneApp = app.NewWithID(AppID)
		fyneApp.SetIcon(GetAppIcon())
	}

	matcher, err := hotkey.ParseMatcher(config.AdvanceKey, config.RetreatKey)
	if err != nil {
		return nil, err
	}

	positions, err := openPositions(config, fyneApp, logger.Component(log, "position"))
	if err != nil {
		return nil, err
	}

	store := words.NewStore(words.Load(config.WordsFile, logger.Component(log, "words")), logger.Component(log, "words"))
	store.RestoreIndex(positions.Get(words.IndexKey))

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:        fyneApp,
		store:      store,
		controller: cycle.NewController(store, logger.Component(log, "cycle")),
		queue:      cycle.NewQueue(cycle.DefaultQueueSize),
		positions:  positions,
		matcher:    matcher,
		config:     config,
		log:        logger.Component(log, "tray"),
		setTitle:   setTrayTitle,
		ctx:        ctx,
		cancel:     cancel,
	}

	if config.HotkeyEnabled {
		gate := deps.Gate
		if gate == nil {
			gate = hook.AccessibilityGate{}
		}
		source := deps.Source
		if source == nil {
			source = hook.NewSource(logger.Component(log, "hook"))
		}
		n := deps.Notifier
		if n == nil {
			n = notifier{app: fyneApp}
		}
		a.gateway = hotkey.NewGateway(gate, n, source, logger.Component(log, "hotkey"))
	}

	a.setupMenu()
	a.controller.SetOnChange(a.render)
	a.queue.Start(ctx, a.controller)

	a.app.Lifecycle().SetOnStarted(a.installHotkey)
	a.app.Lifecycle().SetOnStopped(a.shutdown)

	a.log.Info().
		Int("words", store.Len()).
		Int("index", store.Index()).
		Str("backend", config.StateBackend).
		Msg("wordbar ready")

	return a, nil
}

func openPositions(config *Config, fyneApp fyne.App, log zerolog.Logger) (position.Store, error) {
	switch config.StateBackend {
	case position.BackendMemory:
		return position.NewMemory(), nil
	case position.BackendPreferences:
		return position.NewPreferences(fyneApp.Preferences()), nil
	case position.BackendSQLite:
		return position.OpenSQLite(config.StatePath, log)
	default:
		return nil, position.CheckBackend(config.StateBackend)
	}
}

// setupMenu creates the tray menu
func (a *Application) setupMenu() {
	a.header = fyne.NewMenuItem(a.controller.Display(), nil)
	a.header.Disabled = true

	next := fyne.NewMenuItem("Show / Next", func() { a.submit(cycle.Advance) })
	prev := fyne.NewMenuItem("Previous", func() { a.submit(cycle.Retreat) })

	quit := fyne.NewMenuItem("Quit", a.quit)
	quit.IsQuit = true

	a.menu = fyne.NewMenu("wordbar",
		a.header,
		fyne.NewMenuItemSeparator(),
		next,
		prev,
		fyne.NewMenuItemSeparator(),
		quit,
	)

	if desk, ok := a.app.(desktop.App); ok {
		a.tray = true
		desk.SetSystemTrayMenu(a.menu)
		desk.SetSystemTrayIcon(GetAppIcon())
	}
}

// Run starts the event loop and blocks until quit
func (a *Application) Run() {
	a.app.Run()
	a.shutdown()
}

// installHotkey installs the global shortcut; failure leaves the menu usable
func (a *Application) installHotkey() {
	a.render(a.controller.Display())

	if a.gateway == nil {
		a.log.Info().Msg("global shortcut disabled by configuration")
		return
	}

	l, err := a.gateway.Install(a.matcher, a.submit)
	if err != nil {
		if !errors.Is(err, hotkey.ErrUnavailable) {
			a.log.Error().Err(err).Msg("failed to install global shortcut")
		}
		return
	}

	a.mu.Lock()
	a.listener = l
	a.mu.Unlock()
}

// submit hands a signal to the single consumer
func (a *Application) submit(sig cycle.Signal) {
	if err := a.queue.Submit(sig); err != nil {
		a.log.Warn().Err(err).Str("signal", sig.String()).Msg("signal dropped")
	}
}

// render schedules a status bar update on the UI goroutine
func (a *Application) render(display string) {
	fyne.Do(func() {
		a.applyDisplay(display)
	})
}

func (a *Application) applyDisplay(display string) {
	a.header.Label = display
	a.menu.Refresh()
	if a.tray {
		a.setTitle(display)
	}
}

// quit releases everything and stops the app
func (a *Application) quit() {
	a.shutdown()
	a.app.Quit()
}

// shutdown runs once: uninstall the listener, drain the queue, persist
// the position and close the position store
func (a *Application) shutdown() {
	a.shutdownOnce.Do(func() {
		a.mu.Lock()
		l := a.listener
		a.listener = nil
		a.mu.Unlock()

		if a.gateway != nil {
			a.gateway.Uninstall(l)
		}

		a.queue.Stop()
		a.cancel()

		if err := a.store.PersistIndex(a.positions); err != nil {
			a.log.Error().Err(err).Msg("failed to save position")
		}
		if err := a.positions.Close(); err != nil {
			a.log.Error().Err(err).Msg("failed to close position store")
		}

		a.log.Info().Int("index", a.store.Index()).Msg("wordbar stopped")
	})
}

// Display returns the current status bar text
func (a *Application) Display() string {
	return a.controller.Display()
}

func setTrayTitle(display string) {
	systray.SetTitle(display)
	systray.SetTooltip(display)
}
