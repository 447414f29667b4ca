// Package metrics holds the prometheus collectors describing reachability
// traversals.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons used as the "reason" label of CellsRejected.
const (
	ReasonObstacle = "obstacle"
	ReasonVisited  = "visited"
)

// Engine groups the traversal collectors. A nil *Engine is valid and records
// nothing.
type Engine struct {
	CellsMarked   prometheus.Counter
	CellsRejected *prometheus.CounterVec
	Duration      prometheus.Histogram
	RegionSize    prometheus.Gauge
}

// NewEngine creates the traversal collectors and registers them with reg.
func NewEngine(reg prometheus.Registerer) *Engine {
	factory := promauto.With(reg)
	return &Engine{
		CellsMarked: factory.NewCounter(prometheus.CounterOpts{
			Name: "ant25_cells_marked_total",
			Help: "Total cells marked reachable by traversals",
		}),
		CellsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ant25_cells_rejected_total",
			Help: "Total worklist entries dropped, by reason",
		}, []string{"reason"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ant25_traversal_duration_seconds",
			Help:    "Traversal wall time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
		RegionSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ant25_region_size",
			Help: "Cells marked by the most recent traversal",
		}),
	}
}

// ObserveTraversal records the outcome of one traversal.
func (m *Engine) ObserveTraversal(marked, obstacles, revisits int, took time.Duration) {
	if m == nil {
		return
	}
	m.CellsMarked.Add(float64(marked))
	m.CellsRejected.WithLabelValues(ReasonObstacle).Add(float64(obstacles))
	m.CellsRejected.WithLabelValues(ReasonVisited).Add(float64(revisits))
	m.Duration.Observe(took.Seconds())
	m.RegionSize.Set(float64(marked))
}
