package config

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/lialsoftlab/ant25/internal/render"
)

var namedColors = map[string]render.RGB{
	"yellow": render.Yellow(),
	"blue":   render.Blue(),
	"green":  render.Green(),
	"red":    {0xFF, 0x00, 0x00},
	"black":  {0x00, 0x00, 0x00},
	"white":  {0xFF, 0xFF, 0xFF},
}

// NamedColor returns the colour config files may refer to as name. Names are
// case-insensitive.
func NamedColor(name string) (render.RGB, bool) {
	rgb, ok := namedColors[strings.ToLower(name)]
	return rgb, ok
}

// ColorNames lists the names NamedColor accepts, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional).
func ParseHexColor(s string) (render.RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return render.RGB{}, fmt.Errorf("%w: colour %q must be #RRGGBB", ErrInvalidConfig, s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return render.RGB{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, s, err)
	}
	return render.RGB{b[0], b[1], b[2]}, nil
}

// ColorFromChannels builds a colour from three 0..255 channel values.
func ColorFromChannels(ch []int) (render.RGB, error) {
	if len(ch) != 3 {
		return render.RGB{}, fmt.Errorf("%w: colour needs 3 channels, got %d", ErrInvalidConfig, len(ch))
	}
	var out render.RGB
	for i, v := range ch {
		if v < 0 || v > 255 {
			return render.RGB{}, fmt.Errorf("%w: colour channel %d out of range: %d", ErrInvalidConfig, i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}
