package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lialsoftlab/ant25/internal/config"
	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/lialsoftlab/ant25/internal/fsutil"
	"github.com/lialsoftlab/ant25/internal/hclconfig"
	"github.com/lialsoftlab/ant25/internal/metrics"
	"github.com/lialsoftlab/ant25/internal/yamlconfig"
	"github.com/prometheus/client_golang/prometheus"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	registry   *prometheus.Registry
	metrics    *metrics.Engine
	httpServer *http.Server
	runID      string
}

// NewApp builds an App. Results are printed to outW and logs go to logW.
// The run configuration file, if any, is loaded here so that a bad file
// fails before any work starts.
func NewApp(outW, logW io.Writer, appConfig *Config) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(appConfig, runID, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := config.Default()
	if appConfig.ConfigPath != "" {
		var err error
		model, err = loadModel(ctx, appConfig.ConfigPath, model)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    model,
		registry: reg,
		metrics:  metrics.NewEngine(reg),
		runID:    runID,
	}, nil
}

// Model returns the loaded run configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// loadModel layers configuration onto base. A directory path loads every
// .hcl, .yaml and .yml file beneath it in lexical order, each file
// overriding the fields the previous ones set.
func loadModel(ctx context.Context, path string, base *config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files := []string{path}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, configExtensions...)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no configuration files found in %s", path)
		}
	}

	model := base
	for _, file := range files {
		loader, err := loaderFor(file)
		if err != nil {
			return nil, err
		}
		model, err = loader.Load(ctxlog.With(ctx, "config_file", file), file, model)
		if err != nil {
			return nil, err
		}
		logger.Debug("Configuration loaded.", "path", file)
	}

	if err := config.Validate(model); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

var configExtensions = []string{".hcl", ".yaml", ".yml"}

// loaderFor picks a config.Loader from the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hclconfig.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlconfig.NewLoader(), nil
	}
	return nil, fmt.Errorf("unsupported configuration file %s: want .hcl, .yaml or .yml", path)
}
