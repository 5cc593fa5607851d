package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/topdown/pkg/config"
	"github.com/golangdaddy/topdown/pkg/game"
	"github.com/golangdaddy/topdown/pkg/logging"
	"github.com/golangdaddy/topdown/pkg/sim"
	"github.com/golangdaddy/topdown/pkg/telemetry"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fallback := logging.New("info", os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load config")
	}
	log := logging.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var publisher sim.Publisher
	if cfg.Telemetry.Enabled {
		hub := telemetry.NewHub(logging.Component(log, "telemetry"))
		defer hub.Close()
		publisher = hub

		go func() {
			if err := telemetry.Serve(ctx, cfg.Telemetry.Addr, hub); err != nil {
				log.Error().Err(err).Msg("telemetry server stopped")
			}
		}()
		log.Info().Str("addr", cfg.Telemetry.Addr).Msg("telemetry listening on /ws")
	}

	g, err := game.NewGame(cfg, logging.Component(log, "game"), publisher)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Topdown")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
