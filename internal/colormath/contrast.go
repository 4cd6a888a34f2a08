package colormath

import (
	"math"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// RelativeLuminance is the WCAG relative luminance of c, in [0,1].
func RelativeLuminance(c domain.Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize undoes the sRGB transfer curve for one channel.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio is the WCAG contrast ratio of a and b, in [1,21]. Order does not matter.
func Ratio(a, b domain.Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastOf evaluates a color pair against the WCAG thresholds.
func ContrastOf(a, b domain.Color) domain.ContrastResult {
	return domain.Evaluate(Ratio(a, b))
}

// Contrast parses both inputs and evaluates them. It reports false when either
// input is not a recognized color.
func Contrast(a, b string) (domain.ContrastResult, bool) {
	ca, ok := Parse(a)
	if !ok {
		return domain.ContrastResult{}, false
	}
	cb, ok := Parse(b)
	if !ok {
		return domain.ContrastResult{}, false
	}
	return ContrastOf(ca, cb), true
}
