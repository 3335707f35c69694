package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jnwhnr/data-on-the-sphere/internal/config"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Dir = dir
	cfg.Palette.Name = "jw_temp"
	cfg.Render.Locations = []string{"Arctic", "Antarctica"}
	cfg.Colorbar.Width, cfg.Colorbar.Height = 150, 360
	cfg.Colorbar.BarWidth, cfg.Colorbar.Margin, cfg.Colorbar.FontScale = 40, 20, 1
	cfg.Overlay.Enabled = true

	if err := run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	p, err := plan.Read(filepath.Join(dir, "plan.yaml"))
	if err != nil {
		t.Fatalf("plan not written: %v", err)
	}
	if len(p.Shots) != 2 || p.Gradient.Fallback {
		t.Errorf("plan = %d shots, fallback %v", len(p.Shots), p.Gradient.Fallback)
	}
	for _, cb := range p.Colorbars {
		if _, err := os.Stat(filepath.Join(dir, cb.File)); err != nil {
			t.Errorf("colorbar %s missing: %v", cb.File, err)
		}
	}
}
