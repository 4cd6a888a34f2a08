package domain

// Color is an sRGB color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL is the integer hue/saturation/lightness form used by the hsl() notation.
// H is in degrees [0,360]; S and L are percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
)
