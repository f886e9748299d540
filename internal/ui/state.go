package ui

import (
	"github.com/rs/zerolog"

	"github.com/kyaoi/slidedeck/internal/config"
	"github.com/kyaoi/slidedeck/internal/deck"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	DeckPath   string
	HeaderPath string
	Meta       deck.Meta
	Navigator  *deck.Navigator
	Config     config.Config
	Logger     zerolog.Logger
}
