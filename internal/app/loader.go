package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/kyaoi/slidedeck/internal/config"
	"github.com/kyaoi/slidedeck/internal/deck"
	"github.com/kyaoi/slidedeck/internal/position"
	"github.com/kyaoi/slidedeck/internal/ui"
)

// LoadInitialState parses the deck, opens the position store and prepares
// the UI state. The returned store is nil when persistence is unavailable;
// the presenter then simply starts every session at the first slide.
func LoadInitialState(target string, cfg config.Config, opts Options, logger zerolog.Logger) (ui.State, *position.Store, error) {
	info, err := os.Stat(target)
	if err != nil {
		return ui.State{}, nil, err
	}
	if info.IsDir() {
		return ui.State{}, nil, fmt.Errorf("%s はディレクトリです。Markdownのスライドファイルを指定してください。", target)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return ui.State{}, nil, err
	}

	d, err := deck.ParseFile(absTarget)
	if err != nil {
		return ui.State{}, nil, err
	}

	displayPath := absTarget
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, absTarget); err == nil {
			displayPath = rel
		}
	}

	store := openStore(cfg, logger)
	var ps deck.PositionStore
	if store != nil {
		ps = store
	}
	nav := deck.NewNavigator(absTarget, d.Slides, opts.StartSlide, ps, logger)

	return ui.State{
		DeckPath:   absTarget,
		HeaderPath: filepath.ToSlash(displayPath),
		Meta:       d.Meta,
		Navigator:  nav,
		Config:     cfg,
		Logger:     logger,
	}, store, nil
}

func openStore(cfg config.Config, logger zerolog.Logger) *position.Store {
	path := cfg.PositionsPath
	if path == "" {
		var err error
		path, err = config.DefaultPositionsPath()
		if err != nil {
			logger.Warn().Err(err).Msg("position store disabled")
			return nil
		}
	}
	store, err := position.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("position store disabled")
		return nil
	}
	return store
}
