package domain

// Swatch is a single labelled color of a palette.
type Swatch struct {
	Family string `json:"family"`
	Label  string `json:"label"` // e.g. "slate-500"
	Value  string `json:"value"` // textual color as written in the palette
	Color  Color  `json:"color"`
}

// Family groups the shades of one hue, lightest first.
type Family struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Shades []Swatch `json:"shades"`
}

// Palette is a named set of color families.
type Palette struct {
	Name     string   `json:"name"`
	Families []Family `json:"families"`
}

// Swatches flattens the palette in family order.
func (p Palette) Swatches() []Swatch {
	n := 0
	for _, f := range p.Families {
		n += len(f.Shades)
	}
	out := make([]Swatch, 0, n)
	for _, f := range p.Families {
		out = append(out, f.Shades...)
	}
	return out
}

// PaletteRef is a lightweight reference to a palette (built-in or on disk).
type PaletteRef struct {
	Name    string
	Path    string // empty for built-ins
	Builtin bool
}
