package cmd

import (
	"context"
	"fmt"
	"io"

	"solid-example/catalog"
	"solid-example/config"
	"solid-example/infrastructure/persistence"
	apperrors "solid-example/pkg/errors"
	"solid-example/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App runs selected example demos and prints their output
type App struct {
	cfg     *config.Config
	out     io.Writer
	catalog *catalog.Catalog
	closers []func() error
}

// Catalog exposes the registered demos (used by -list)
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Run runs the named demos, or the principle/variant selection from config when
// names is empty. It stops at the first failing demo.
func (a *App) Run(ctx context.Context, names []string) error {
	demos, err := a.resolve(names)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx = persistence.ContextWithRunID(ctx, runID)
	log := logger.WithRunID(runID)
	log.Info("Running examples", zap.Int("count", len(demos)))

	for i, d := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintf(a.out, "### %s (%s, %s)\n", d.Name(), d.Principle().Title(), d.Variant())

		if err := d.Run(ctx, a.out); err != nil {
			log.Error("Example failed", zap.String("example", d.Name()), zap.Error(err))
			return fmt.Errorf("%s: %w", d.Name(), err)
		}
		log.Debug("Example finished", zap.String("example", d.Name()))
	}
	return nil
}

// List prints the names of all registered demos
func (a *App) List() {
	for _, d := range a.catalog.All() {
		fmt.Fprintf(a.out, "%-14s %s\n", d.Name(), d.Principle().Title())
	}
}

func (a *App) resolve(names []string) ([]catalog.Demo, error) {
	if len(names) == 0 {
		return a.catalog.Select(a.cfg.Demo.Principles, a.cfg.Demo.Variants)
	}
	demos := make([]catalog.Demo, 0, len(names))
	for _, name := range names {
		d, err := a.catalog.Get(name)
		if err != nil {
			return nil, err
		}
		demos = append(demos, d)
	}
	return demos, nil
}

// Close releases stores opened by the builder and flushes the logger
func (a *App) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = apperrors.Storage(err, "failed to close user store")
		}
	}
	if err := logger.Sync(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
