package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lialsoftlab/ant25/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallHCL = `
threshold = 10

window {
  x0 = 1000
  y0 = 1000
  x1 = 1001
  y1 = 1000
}
`

// TestRun_ShouldExit verifies that run exits cleanly on -h.
func TestRun_ShouldExit(t *testing.T) {
	outBuf := &bytes.Buffer{}

	err := run(outBuf, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err)
	assert.Contains(t, outBuf.String(), "Usage:")
}

// TestRun_ParseError verifies that run propagates usage errors with code 2.
func TestRun_ParseError(t *testing.T) {
	for _, args := range [][]string{
		{"-nonexistent-flag"},
		{"a.ppm", "b.ppm"},
	} {
		err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)

		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr), "args %v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}

func TestRun_WritesImage(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(smallHCL), 0o644))
	imgPath := filepath.Join(dir, "out.ppm")

	outBuf := &bytes.Buffer{}
	err := run(outBuf, &bytes.Buffer{}, []string{"-config", cfgPath, imgPath})
	require.NoError(t, err)

	assert.Contains(t, outBuf.String(), "Available cells count: 45.")
	assert.Contains(t, outBuf.String(), "Writing image into "+imgPath+"...")

	data, err := os.ReadFile(imgPath)
	require.NoError(t, err)
	assert.Equal(t, append([]byte("P6\n2 1\n255\n"), 0x00, 0xFF, 0x00, 0x00, 0xFF, 0x00), data)
}

func TestRun_RenderFailureNamesPath(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(smallHCL), 0o644))
	imgPath := filepath.Join(dir, "missing", "out.ppm")

	outBuf := &bytes.Buffer{}
	err := run(outBuf, &bytes.Buffer{}, []string{"-config", cfgPath, imgPath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), imgPath)
	assert.Contains(t, outBuf.String(), "Available cells count: 45.")
}
