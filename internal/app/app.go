package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/slidedeck/internal/config"
	"github.com/kyaoi/slidedeck/internal/logging"
	"github.com/kyaoi/slidedeck/internal/ui"
)

// Options are the command line overrides.
type Options struct {
	// ConfigPath overrides the conventional config file location.
	ConfigPath string
	// StartSlide, when positive, bypasses the persisted position.
	StartSlide int
	// Theme overrides the configured glamour style.
	Theme string
}

// Run executes the Bubble Tea program for the slide presenter.
func Run(target string, opts Options) error {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}

	logger, closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	state, store, err := LoadInitialState(target, cfg, opts, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	return runProgram(state)
}

func runProgram(state ui.State) error {
	program := tea.NewProgram(ui.NewModel(state), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}
