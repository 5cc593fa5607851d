package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/topdown/pkg/config"
	"github.com/golangdaddy/topdown/pkg/road"
	"github.com/golangdaddy/topdown/pkg/sim"
	"github.com/golangdaddy/topdown/pkg/ui"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           *config.Config
	log           zerolog.Logger
	track         *road.Track
	publisher     sim.Publisher
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame loads the configured track and opens on the title screen. publisher
// may be nil.
func NewGame(cfg *config.Config, log zerolog.Logger, publisher sim.Publisher) (*Game, error) {
	track, err := road.LoadTrack(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to load track %s: %w", cfg.Level, err)
	}

	game := &Game{
		cfg:       cfg,
		log:       log,
		track:     track,
		publisher: publisher,
	}
	game.showTitle()
	return game, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.track.Name(), g.startGameplay)
}

// startGameplay builds a fresh simulation and hands it to the play screen.
func (g *Game) startGameplay() {
	s, err := sim.New(g.cfg, g.track, g.log, g.publisher)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to start simulation")
		return
	}
	g.currentScreen = NewGameplayScreen(s, g.cfg, func() {
		s.Close()
		g.showTitle()
	})
}
