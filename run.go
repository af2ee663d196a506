package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tmc/export-fixture/fixture"
	"github.com/tmc/export-fixture/initializer"
	"github.com/tmc/export-fixture/script"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// run executes the configured script cfg.Runs times, each against a fresh
// initializer.Module, and writes one report per run to w. It reports whether
// every run passed; the error is for failures other than a run failing.
func run(ctx context.Context, w io.Writer, cfg *Config, color bool, logger *zap.Logger) (bool, error) {
	s := script.Default()
	if cfg.Script != "" {
		var err error
		if s, err = script.ParseFile(cfg.Script); err != nil {
			return false, err
		}
	}
	tmpl, err := loadTemplates(cfg.Template, color)
	if err != nil {
		return false, err
	}

	steps := s.Steps()
	results := make([]*fixture.Result, cfg.Runs)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallel)
	for i := range cfg.Runs {
		name := s.Name
		if cfg.Runs > 1 {
			name = fmt.Sprintf("%s#%d", s.Name, i+1)
		}
		eg.Go(func() error {
			runLogger := logger.With(zap.String("fixture", name))
			r := &fixture.Runner{Name: name, Logger: runLogger}
			res, err := r.Run(egCtx, initializer.New(runLogger), steps)
			results[i] = res
			// Failing and panicking exports are reported per run; only
			// cancellation aborts the command.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return false, err
	}

	passed := true
	for i, res := range results {
		if err := tmpl.Execute(w, res); err != nil {
			return false, fmt.Errorf("rendering report: %w", err)
		}
		if res.Passed() != results[0].Passed() {
			logger.Warn("outcome differs between runs",
				zap.Int("run", i+1),
				zap.Bool("passed", res.Passed()),
				zap.Bool("firstPassed", results[0].Passed()))
		}
		passed = passed && res.Passed()
	}
	return passed, nil
}
