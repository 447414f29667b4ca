package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestParse_NoArguments(t *testing.T) {
	cfg, exit, err := ParseWithEnv(nil, &bytes.Buffer{}, env(nil))
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "", cfg.ImagePath)
	assert.Equal(t, "", cfg.ConfigPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.StatusPort)
}

func TestParse_ImagePathAndFlags(t *testing.T) {
	args := []string{"-c", "run.hcl", "-log-level", "DEBUG", "-log-format", "json", "-status-port", "9100", "out.ppm"}
	cfg, exit, err := ParseWithEnv(args, &bytes.Buffer{}, env(nil))
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "out.ppm", cfg.ImagePath)
	assert.Equal(t, "run.hcl", cfg.ConfigPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 9100, cfg.StatusPort)
	assert.False(t, cfg.Serve)

	cfg, _, err = ParseWithEnv([]string{"-status-port", "9100", "-serve"}, &bytes.Buffer{}, env(nil))
	require.NoError(t, err)
	assert.True(t, cfg.Serve)
}

func TestParse_EnvDefaults(t *testing.T) {
	vars := env(map[string]string{
		EnvConfig:     "from-env.yaml",
		EnvLogLevel:   "warn",
		EnvLogFormat:  "json",
		EnvStatusPort: "8080",
	})

	cfg, _, err := ParseWithEnv(nil, &bytes.Buffer{}, vars)
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.ConfigPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8080, cfg.StatusPort)

	// Flags win over the environment.
	cfg, _, err = ParseWithEnv([]string{"-config", "flag.hcl", "-status-port", "0"}, &bytes.Buffer{}, vars)
	require.NoError(t, err)
	assert.Equal(t, "flag.hcl", cfg.ConfigPath)
	assert.Equal(t, 0, cfg.StatusPort)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := ParseWithEnv([]string{"-h"}, out, env(nil))
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "IMAGE_PATH")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		vars    map[string]string
		wantMsg string
	}{
		{"too many arguments", []string{"a.ppm", "b.ppm"}, nil, "at most one image path"},
		{"unknown flag", []string{"-nope"}, nil, "flag provided but not defined"},
		{"bad log format", []string{"-log-format", "xml"}, nil, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud"}, nil, "invalid log-level"},
		{"bad config extension", []string{"-config", "run.toml"}, nil, "unsupported configuration file"},
		{"bad port", []string{"-status-port", "70000"}, nil, "out of range"},
		{"serve without port", []string{"-serve"}, nil, "serve needs a status port"},
		{"bad port env", nil, map[string]string{EnvStatusPort: "http"}, "invalid ANT25_STATUS_PORT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := ParseWithEnv(tc.args, &bytes.Buffer{}, env(tc.vars))
			require.Error(t, err)
			assert.False(t, exit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
