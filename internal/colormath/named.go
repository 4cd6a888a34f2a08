package colormath

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// NearestName returns the CSS named color closest to c in CIE Lab space.
// Ties resolve to the alphabetically first name.
func NearestName(c domain.Color) string {
	target := toColorful(c)

	best := ""
	bestDist := math.Inf(1)
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		cand := colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}
		if d := target.DistanceLab(cand); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
