package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lialsoftlab/ant25/internal/app"
)

// Environment variables that provide flag defaults.
const (
	EnvConfig     = "ANT25_CONFIG"
	EnvLogFormat  = "ANT25_LOG_FORMAT"
	EnvLogLevel   = "ANT25_LOG_LEVEL"
	EnvStatusPort = "ANT25_STATUS_PORT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Parse loads an optional .env file from the working directory and then
// parses args with the process environment as flag defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn(".env file could not be loaded.", "error", err)
		} else {
			slog.Debug("No .env file found.")
		}
	}
	return ParseWithEnv(args, output, os.LookupEnv)
}

// ParseWithEnv processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func ParseWithEnv(args []string, output io.Writer, lookup LookupFunc) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ant25", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ant25 - counts the cells an ant can reach on the digit-sum field.

Usage:
  ant25 [options] [IMAGE_PATH]

Arguments:
  IMAGE_PATH
    Optional image of the configured window. A .png extension writes PNG,
    anything else writes binary PPM.

Options:
`)
		flagSet.PrintDefaults()
	}

	statusPortDefault := 0
	if v, ok := lookup(EnvStatusPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %v", EnvStatusPort, err)}
		}
		statusPortDefault = port
	}

	configFlag := flagSet.String("config", envOr(lookup, EnvConfig, ""), "Path to a .hcl or .yaml run configuration.")
	cFlag := flagSet.String("c", "", "Path to a run configuration (shorthand).")
	logFormatFlag := flagSet.String("log-format", envOr(lookup, EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(lookup, EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	statusPortFlag := flagSet.Int("status-port", statusPortDefault, "Port for the /health and /metrics HTTP server. 0 is disabled. The server stops when the run ends unless -serve is set.")
	serveFlag := flagSet.Bool("serve", false, "Keep the status server running after the run until interrupted. Requires -status-port.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one image path, got %d arguments", flagSet.NArg())}
	}
	imagePath := flagSet.Arg(0)

	configPath := *configFlag
	if *cFlag != "" {
		configPath = *cFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		ImagePath:  imagePath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		StatusPort: *statusPortFlag,
		Serve:      *serveFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func envOr(lookup LookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}
