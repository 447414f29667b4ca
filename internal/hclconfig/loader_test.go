package hclconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/config"
	"github.com/lialsoftlab/ant25/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	src := `
seed {
  x = 12
  y = 34
}

threshold = 15

window {
  x0 = 0
  y0 = 0
  x1 = 99
  y1 = 49
}

palette {
  clear    = colors.white
  obstacle = "#102030"
  avail    = [1, 2, 3]
}
`
	m, err := NewLoader().Parse(context.Background(), []byte(src), "full.hcl", config.Default())
	require.NoError(t, err)

	assert.Equal(t, cell.At(12, 34), m.Seed)
	assert.Equal(t, uint16(15), m.Threshold)
	assert.Equal(t, render.Window{X0: 0, Y0: 0, X1: 99, Y1: 49}, m.Window)
	assert.Equal(t, render.Palette{
		Clear:    render.RGB{0xFF, 0xFF, 0xFF},
		Obstacle: render.RGB{0x10, 0x20, 0x30},
		Avail:    render.RGB{1, 2, 3},
	}, m.Palette)
}

func TestParse_PartialKeepsBase(t *testing.T) {
	base := config.Default()
	src := `
seed {
  y = 7
}

palette {
  avail = colors.red
}
`
	m, err := NewLoader().Parse(context.Background(), []byte(src), "partial.hcl", base)
	require.NoError(t, err)

	assert.Equal(t, cell.At(config.DefaultSeedX, 7), m.Seed)
	assert.Equal(t, base.Window, m.Window)
	assert.Equal(t, base.Threshold, m.Threshold)
	assert.Equal(t, render.Yellow(), m.Palette.Clear)
	assert.Equal(t, render.Blue(), m.Palette.Obstacle)
	assert.Equal(t, render.RGB{0xFF, 0, 0}, m.Palette.Avail)

	// The base model is left untouched.
	assert.Equal(t, config.Default(), base)
}

func TestParse_Empty(t *testing.T) {
	m, err := NewLoader().Parse(context.Background(), nil, "empty.hcl", config.Default())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), m)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", "seed {", "failed to parse HCL file"},
		{"unknown attribute", "speed = 3", "failed to decode HCL file"},
		{"negative coordinate", "seed {\n  x = -1\n}", "failed to decode HCL file"},
		{"short colour", "palette {\n  clear = [1, 2]\n}", "palette clear"},
		{"channel range", "palette {\n  clear = [1, 2, 300]\n}", "out of range"},
		{"bad hex", `palette {
  clear = "#12"
}`, "must be #RRGGBB"},
		{"wrong type", "palette {\n  clear = true\n}", "list of numbers"},
		{"unknown colour", "palette {\n  clear = colors.purple\n}", "palette clear"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Parse(context.Background(), []byte(tc.src), "bad.hcl", config.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParse_LeavesValidationToCaller(t *testing.T) {
	m, err := NewLoader().Parse(context.Background(), []byte("window {\n  x1 = 100\n}"), "layer.hcl", config.Default())
	require.NoError(t, err)
	assert.Equal(t, uint(100), m.Window.X1)
	assert.ErrorIs(t, config.Validate(m), render.ErrInvalidWindow)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte("threshold = 20\n"), 0600))

	m, err := NewLoader().Load(context.Background(), path, config.Default())
	require.NoError(t, err)
	assert.Equal(t, uint16(20), m.Threshold)

	_, err = NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"), config.Default())
	assert.ErrorContains(t, err, "failed to read HCL file")
}
