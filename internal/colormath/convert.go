package colormath

import (
	"fmt"
	"math"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// RGBToHex formats c as lowercase #rrggbb.
func RGBToHex(c domain.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FormatRGB formats c in rgb() notation.
func FormatRGB(c domain.Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FormatHSL formats h in hsl() notation.
func FormatHSL(h domain.HSL) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// RGBToHSL converts to integer degrees and percentages, rounding to nearest.
func RGBToHSL(c domain.Color) domain.HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}

		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return domain.HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts an HSL triple to 8-bit channels, rounding to nearest.
// Saturation and lightness are clamped to [0,100]; hue wraps at 360.
func HSLToRGB(in domain.HSL) domain.Color {
	h := float64(((in.H%360)+360)%360) / 360
	s := float64(clampInt(in.S, 0, 100)) / 100
	l := float64(clampInt(in.L, 0, 100)) / 100

	if s == 0 {
		v := to8(l)
		return domain.Color{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return domain.Color{
		R: to8(hueToRGB(p, q, h+1.0/3)),
		G: to8(hueToRGB(p, q, h)),
		B: to8(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
