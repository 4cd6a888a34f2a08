package tui

import (
	"log/slog"
	"math/rand/v2"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/ports"
)

type Deps struct {
	Config   domain.Config
	Palettes ports.PaletteLoader
	Store    ports.ReportStore // nil outside a workspace
	Stats    ports.RepoStatsFetcher

	Clipboard func(string) error
	Rand      *rand.Rand

	Logger     *slog.Logger
	Debug      bool
	Workspaced bool
}
