package ports

import "github.com/aalvaropc/contrastly/internal/domain"

// PaletteLoader loads palettes from a source (built-ins, filesystem).
type PaletteLoader interface {
	LoadPalette(nameOrPath string) (domain.Palette, error)
	ListPalettes() ([]domain.PaletteRef, error)
}
