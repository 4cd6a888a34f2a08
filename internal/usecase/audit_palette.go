package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/ports"
)

const defaultAuditConcurrency = 4

type AuditPalette struct {
	palettes ports.PaletteLoader
	limit    int
}

func NewAuditPalette(pl ports.PaletteLoader) *AuditPalette {
	return &AuditPalette{palettes: pl, limit: defaultAuditConcurrency}
}

// Execute evaluates every swatch of the named palettes against background.
// Palettes load concurrently; results are ordered by descending ratio, ties
// keeping palette order.
func (uc *AuditPalette) Execute(ctx context.Context, names []string, background string) ([]domain.SwatchCheck, error) {
	bg, ok := colormath.Parse(background)
	if !ok {
		return nil, invalidColor("background", background)
	}

	loaded := make([]domain.Palette, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.limit)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := uc.palettes.LoadPalette(name)
			if err != nil {
				return err
			}
			loaded[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.SwatchCheck
	for _, p := range loaded {
		for _, s := range p.Swatches() {
			out = append(out, domain.SwatchCheck{
				Palette: p.Name,
				Swatch:  s,
				Result:  colormath.ContrastOf(s.Color, bg),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Result.Ratio > out[j].Result.Ratio })
	return out, nil
}
