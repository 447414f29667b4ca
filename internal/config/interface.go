package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and returns a copy of base with the file's
	// settings applied. base is not modified.
	//
	// The result is one layer of a possibly larger configuration and is not
	// validated; callers run Validate on the final model.
	Load(ctx context.Context, path string, base *Model) (*Model, error)
}
