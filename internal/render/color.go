package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor parses a color in hexadecimal RGB, RGBA, RRGGBB or RRGGBBAA
// notation, with or without a leading '#', or an SVG 1.1 color name such as
// "teal".
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
		if isHex(hex) {
			return gg.Hex(hex), nil
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// opaque returns c with full alpha. Shapes are always drawn opaque; the
// alpha channel of a parsed color is accepted but not used.
func opaque(c gg.RGBA) gg.RGBA {
	c.A = 1
	return c
}

// svgPaint returns the RGB channels of c as an SVG color.
func svgPaint(c gg.RGBA) string {
	channel := func(v float64) uint8 {
		return uint8(math.Round(min(max(v, 0), 1) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}
