// Package main is the entry point for globeplan, which turns render settings
// into a render plan, colorbar legends and legend overlays.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jnwhnr/data-on-the-sphere/internal/config"
	"github.com/jnwhnr/data-on-the-sphere/internal/logger"
	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/pipeline"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
	"github.com/jnwhnr/data-on-the-sphere/pkg/colormaps"
	"github.com/jnwhnr/data-on-the-sphere/pkg/gradient"
)

func main() {
	// Parse CLI flags first
	flags := config.NewFlags("globeplan", os.Stderr)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	// Positional arguments: [input.tif] [output_dir]
	if args := flags.Args(); len(args) > 0 {
		cfg.Render.Input = args[0]
		if len(args) > 1 {
			cfg.Output.Dir = args[1]
		}
	}

	// Initialize logger
	log, err := logger.New(cfg.LoggerOptions(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	log.Info("=== globeplan ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("globeplan failed", zap.Error(err))
		logger.Sync(log)
		os.Exit(1)
	}
	log.Info("done")
}

// run builds and writes the plan, then the legends, then the overlays.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log = logger.OrNop(log)
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	resolver := gradient.NewResolver(reg, colormaps.New(), log.Named("gradient"))
	builder := plan.NewBuilder(resolver, cfg.Catalog(), log.Named("plan"))

	p, err := builder.Build(ctx, cfg.Settings())
	if err != nil {
		return fmt.Errorf("building plan: %w", err)
	}

	dir := cfg.OutputDir()
	planPath := filepath.Join(dir, cfg.Output.Plan)
	if err := p.Write(planPath); err != nil {
		return err
	}
	log.Info("plan written", zap.String("path", planPath), zap.Int("shots", len(p.Shots)))

	if _, err := pipeline.Colorbars(p, dir, cfg.Colorbar, log.Named("colorbar")); err != nil {
		return fmt.Errorf("writing colorbars: %w", err)
	}

	if !cfg.Overlay.Enabled {
		return nil
	}
	comp := &overlay.Compositor{Options: cfg.Overlay, Logger: log.Named("overlay")}
	if _, err := pipeline.Overlays(ctx, p, dir, comp, log.Named("overlay")); err != nil {
		return fmt.Errorf("compositing overlays: %w", err)
	}
	return nil
}
