// Package flood implements the reachability engine: a 4-directional flood
// fill that upgrades every Clear cell connected to a seed into Avail.
//
// # Traversal
//
// The engine keeps an explicit LIFO worklist instead of recursing, so region
// size is bounded by memory rather than by goroutine stack depth. Each popped
// coordinate is resolved through field.Field:
//
//   - Obstacle: dropped (wall)
//   - Avail: dropped (already visited)
//   - Clear: marked Avail, then its in-domain neighbours are pushed
//
// Because Avail is sticky the "already visited" guard needs no separate set.
// Every reachable Clear cell is marked exactly once. The order of marking is
// not part of the contract; only the resulting set of Avail cells is.
//
// # Observability
//
// MarkReachable logs through the logger carried in its context (see
// ctxlog), opens an OpenTelemetry span, and optionally records prometheus
// metrics through WithMetrics.
package flood
