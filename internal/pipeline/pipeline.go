// Package pipeline writes the files that follow a render plan: colorbar
// legends and legend overlays on finished renders.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jnwhnr/data-on-the-sphere/internal/colorbar"
	"github.com/jnwhnr/data-on-the-sphere/internal/overlay"
	"github.com/jnwhnr/data-on-the-sphere/internal/plan"
)

// ErrNoColorbar is returned when overlays are requested before the legend
// for the plan's text colour exists.
var ErrNoColorbar = errors.New("colorbar not found")

// Colorbars writes the black and white text legends for p into dir.
func Colorbars(p *plan.Plan, dir string, o colorbar.Options, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	legend := colorbar.Legend{Gradient: p.Gradient.Stops, Range: p.Range}
	var written []string
	for _, cb := range p.Colorbars {
		files, err := legend.WriteFiles(dir, strings.TrimSuffix(cb.File, ".png"), o, cb.TextColor)
		written = append(written, files...)
		if err != nil {
			return written, err
		}
	}
	log.Info("colorbars written", zap.Strings("files", written))
	return written, nil
}

// Result counts overlay outcomes.
type Result struct {
	Composited int
	Missing    int
}

// Overlays composites the plan's legend onto every render of p found in dir.
// Renders that do not exist yet are skipped. Composites run in parallel, one
// per CPU.
func Overlays(ctx context.Context, p *plan.Plan, dir string, c *overlay.Compositor, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	legendPath := filepath.Join(dir, p.Colorbar())
	if _, err := os.Stat(legendPath); err != nil {
		return Result{}, errors.Join(ErrNoColorbar, err)
	}
	label := overlay.LabelPrefix(plan.InputStem(p.Input))

	var todo []plan.Shot
	var res Result
	for _, s := range p.Shots {
		if _, err := os.Stat(filepath.Join(dir, s.Output)); err != nil {
			log.Warn("render not found for overlay", zap.String("render", s.Output))
			res.Missing++
			continue
		}
		todo = append(todo, s)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, s := range todo {
		s := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.CompositeFiles(
				filepath.Join(dir, s.Output),
				legendPath,
				filepath.Join(dir, s.Composite),
				label,
				p.TextColor)
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.Composited = len(todo)
	log.Info("overlays complete",
		zap.Int("composited", res.Composited),
		zap.Int("missing", res.Missing))
	return res, nil
}
