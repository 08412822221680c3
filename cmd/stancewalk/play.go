package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samdwyer/stancewalk/internal/config"
	"github.com/samdwyer/stancewalk/internal/game"
	"github.com/samdwyer/stancewalk/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long:  `Open the interactive terminal view. w/a/s/d move, z toggles crouch, x rests, q quits.`,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, cfg)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Running without observability")
		} else {
			defer func() {
				// ctx may already be cancelled by a signal; flush regardless
				if err := shutdown(context.WithoutCancel(ctx)); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
			tracer = telemetry.Tracer("game")
		}
	}

	g, err := game.New(game.Config{
		Viewport: cfg.Viewport,
		Tracer:   tracer,
	})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
