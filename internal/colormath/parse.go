package colormath

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/contrastly/internal/domain"
)

var (
	reHex = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	reRGB = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)$`)
	reHSL = regexp.MustCompile(`^hsl\((\d+),\s*(\d+)%,\s*(\d+)%\)$`)
)

// Parse reads a color written as #rrggbb, rgb(r, g, b) or hsl(h, s%, l%).
// Components must be integers within range; whitespace is only allowed after
// the commas.
func Parse(text string) (domain.Color, bool) {
	switch {
	case strings.HasPrefix(text, "#"):
		return HexToRGB(text)
	case strings.HasPrefix(text, "rgb"):
		return parseRGB(text)
	case strings.HasPrefix(text, "hsl"):
		hsl, ok := ParseHSL(text)
		if !ok {
			return domain.Color{}, false
		}
		return HSLToRGB(hsl), true
	default:
		return domain.Color{}, false
	}
}

// HexToRGB decodes a 6-digit hex color; the leading '#' is optional.
func HexToRGB(hex string) (domain.Color, bool) {
	m := reHex.FindStringSubmatch(hex)
	if m == nil {
		return domain.Color{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return domain.Color{}, false
		}
		ch[i] = uint8(v)
	}
	return domain.Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

// ParseHSL reads the hsl(h, s%, l%) notation without converting it.
func ParseHSL(text string) (domain.HSL, bool) {
	m := reHSL.FindStringSubmatch(text)
	if m == nil {
		return domain.HSL{}, false
	}

	h, ok := atoiMax(m[1], 360)
	if !ok {
		return domain.HSL{}, false
	}
	s, ok := atoiMax(m[2], 100)
	if !ok {
		return domain.HSL{}, false
	}
	l, ok := atoiMax(m[3], 100)
	if !ok {
		return domain.HSL{}, false
	}
	return domain.HSL{H: h, S: s, L: l}, true
}

func parseRGB(text string) (domain.Color, bool) {
	m := reRGB.FindStringSubmatch(text)
	if m == nil {
		return domain.Color{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := atoiMax(m[i+1], 255)
		if !ok {
			return domain.Color{}, false
		}
		ch[i] = uint8(v)
	}
	return domain.Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

func atoiMax(s string, limit int) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > limit {
		return 0, false
	}
	return v, true
}
