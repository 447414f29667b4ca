package app

import (
	"context"
	"fmt"

	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/lialsoftlab/ant25/internal/field"
	"github.com/lialsoftlab/ant25/internal/flood"
	"github.com/lialsoftlab/ant25/internal/render"
)

// Run marks the cells reachable from the configured seed, prints their
// count and, when an image path is configured, renders the window.
//
// A rendering failure is returned as an error after the count has been
// printed; the count stays valid.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.StatusPort > 0 {
		a.startStatusServer(ctx)
		defer func() {
			_ = a.closeStatusServer(ctx)
		}()
	}

	f := field.NewDefault(a.model.Threshold)

	fmt.Fprintln(a.outW, "Calculating available cells...")
	a.logger.Info("Traversal starting.", "seed", a.model.Seed.String(), "threshold", a.model.Threshold)
	st, err := flood.MarkReachable(ctx, f, a.model.Seed, flood.WithMetrics(a.metrics))
	if err != nil {
		return fmt.Errorf("traversal failed: %w", err)
	}
	count := f.CountAvail()
	a.logger.Info("Traversal finished.", "avail", count, "max_worklist", st.MaxWorklist, "duration", st.Duration)
	fmt.Fprintf(a.outW, "Available cells count: %d.\n", count)

	if a.config.ImagePath == "" {
		a.logger.Debug("No image path given, rendering skipped.")
	} else {
		fmt.Fprintf(a.outW, "Writing image into %s...\n", a.config.ImagePath)
		if err := render.ToFile(ctx, a.config.ImagePath, f, a.model.Window, a.model.Palette); err != nil {
			a.logger.Error("Rendering failed.", "path", a.config.ImagePath, "error", err)
			return fmt.Errorf("failed to write image: %w", err)
		}
		a.logger.Info("Image written.", "path", a.config.ImagePath)
	}

	if a.config.Serve {
		a.logger.Info("Run finished, serving status until interrupted.", "port", a.config.StatusPort)
		<-ctx.Done()
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
