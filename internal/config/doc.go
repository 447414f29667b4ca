// Package config defines the format-agnostic run configuration and the
// Loader interface implemented by the file-format packages.
//
// A Model starts from Default and is overlaid by a loader with whatever the
// file sets. Fields absent from the file keep their previous values.
// Concrete loaders live in hclconfig and yamlconfig.
package config
