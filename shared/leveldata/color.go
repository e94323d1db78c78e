package leveldata

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// BackgroundColor returns the level background, falling back to the default
// when it is missing or malformed.
func (l *Level) BackgroundColor() color.RGBA {
	if c, err := ParseColor(l.Background); err == nil {
		return c
	}
	c, _ := ParseColor(DefaultBackground)
	return c
}
