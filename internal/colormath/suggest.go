package colormath

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aalvaropc/contrastly/internal/domain"
)

const lightnessStep = 0.01

// Suggest finds the foreground closest to fg (in CIE LCh lightness, keeping hue
// and chroma) whose contrast against bg reaches target. When no shade of fg
// gets there it falls back to black or white, whichever contrasts more, and
// the second result tells whether that fallback meets the target.
func Suggest(fg, bg domain.Color, target float64) (domain.Color, bool) {
	if Ratio(fg, bg) >= target {
		return fg, true
	}

	h, c, l := toColorful(fg).Hcl()

	var (
		best      domain.Color
		bestSteps = math.MaxInt
		found     bool
	)
	for _, dir := range []float64{-1, 1} {
		for step := 1; step < bestSteps; step++ {
			nl := l + dir*float64(step)*lightnessStep
			if nl < 0 || nl > 1 {
				break
			}
			cand := fromColorful(colorful.Hcl(h, c, nl).Clamped())
			if Ratio(cand, bg) >= target {
				best, bestSteps, found = cand, step, true
				break
			}
		}
	}
	if found {
		return best, true
	}

	fallback := domain.Black
	if Ratio(domain.White, bg) > Ratio(domain.Black, bg) {
		fallback = domain.White
	}
	return fallback, Ratio(fallback, bg) >= target
}

func toColorful(c domain.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) domain.Color {
	return domain.Color{R: to8(c.R), G: to8(c.G), B: to8(c.B)}
}
