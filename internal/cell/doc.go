// Package cell defines the coordinate and state types shared by every layer
// of the field: the store, the classification rule, the reachability engine
// and the renderer.
package cell
