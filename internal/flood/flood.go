package flood

import (
	"context"
	"fmt"
	"time"

	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/lialsoftlab/ant25/internal/field"
	"github.com/lialsoftlab/ant25/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/lialsoftlab/ant25/internal/flood"

// Stats summarises one MarkReachable call.
type Stats struct {
	Marked      int // cells turned Avail by this call
	Obstacles   int // worklist entries dropped on an obstacle
	Revisits    int // worklist entries dropped on an Avail cell
	MaxWorklist int // peak worklist length
	Duration    time.Duration
}

// Option configures MarkReachable.
type Option func(*options)

type options struct {
	metrics *metrics.Engine
	tracer  trace.Tracer
}

// WithMetrics records each traversal in m.
func WithMetrics(m *metrics.Engine) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracer replaces the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// MarkReachable marks every Clear cell 4-connected to seed as Avail.
//
// If seed itself is not Clear nothing is marked. A classification error
// aborts the traversal; cells marked before the failure stay marked.
func MarkReachable(ctx context.Context, f *field.Field, seed cell.Coord, opts ...Option) (Stats, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}

	ctx, span := o.tracer.Start(ctx, "flood.MarkReachable",
		trace.WithAttributes(
			attribute.Int64("seed.x", int64(seed.X)),
			attribute.Int64("seed.y", int64(seed.Y)),
		),
	)
	defer span.End()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Traversal started.", "seed", seed.String())

	start := time.Now()
	var st Stats
	worklist := []cell.Coord{seed}

	for len(worklist) > 0 {
		if len(worklist) > st.MaxWorklist {
			st.MaxWorklist = len(worklist)
		}
		c := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		state, err := f.CellState(c)
		if err != nil {
			st.Duration = time.Since(start)
			span.RecordError(err)
			span.SetStatus(codes.Error, "classification failed")
			logger.Error("Traversal aborted.", "cell", c.String(), "error", err)
			return st, fmt.Errorf("flood: visit %s: %w", c, err)
		}

		if state != cell.Clear {
			if state == cell.Obstacle {
				st.Obstacles++
			} else {
				st.Revisits++
			}
			continue
		}

		f.SetCellState(c, cell.Avail)
		st.Marked++
		worklist = c.AppendNeighbors(worklist)
	}

	st.Duration = time.Since(start)
	o.metrics.ObserveTraversal(st.Marked, st.Obstacles, st.Revisits, st.Duration)

	span.SetAttributes(
		attribute.Int("cells.marked", st.Marked),
		attribute.Int("worklist.max", st.MaxWorklist),
	)
	span.SetStatus(codes.Ok, "")
	logger.Debug("Traversal finished.",
		"marked", st.Marked,
		"obstacles", st.Obstacles,
		"revisits", st.Revisits,
		"max_worklist", st.MaxWorklist,
		"duration", st.Duration,
	)
	return st, nil
}
