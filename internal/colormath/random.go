package colormath

import (
	"math/rand/v2"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// RandomColor draws a color from [#000000, #fffffe].
func RandomColor(r *rand.Rand) domain.Color {
	v := r.IntN(0xffffff)
	return domain.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// RandomPair draws a foreground and a background color.
func RandomPair(r *rand.Rand) (fg, bg domain.Color) {
	return RandomColor(r), RandomColor(r)
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
