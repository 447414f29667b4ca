package app

import (
	"fmt"
	"os"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // optional .hcl, .yaml or .yml file, or a directory of them
	ImagePath  string // optional image output; empty skips rendering

	LogFormat  string
	LogLevel   string
	StatusPort int  // 0 disables the status server
	Serve      bool // keep the status server up after the run until ctx ends
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.StatusPort < 0 || cfg.StatusPort > 65535 {
		return nil, fmt.Errorf("status port %d out of range", cfg.StatusPort)
	}
	if cfg.Serve && cfg.StatusPort == 0 {
		return nil, fmt.Errorf("serve needs a status port")
	}
	if cfg.ConfigPath != "" && !isDir(cfg.ConfigPath) {
		if _, err := loaderFor(cfg.ConfigPath); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
