// Package app contains the application lifecycle: it builds the logger,
// loads the run configuration, runs the traversal and writes the results,
// decoupled from any specific entrypoint like a CLI.
package app
