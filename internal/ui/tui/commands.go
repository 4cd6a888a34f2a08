package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/contrastly/internal/usecase"
)

const statsTimeout = 10 * time.Second

func cmdFetchStats(deps Deps) tea.Cmd {
	if deps.Stats == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
		defer cancel()

		stats, err := usecase.NewFetchRepoStats(deps.Stats).Execute(ctx, deps.Config.Repo.Name)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func cmdLoadPalette(deps Deps, name string) tea.Cmd {
	return func() tea.Msg {
		if deps.Palettes == nil {
			return paletteLoadedMsg{err: errors.New("no palette loader configured")}
		}
		p, err := deps.Palettes.LoadPalette(name)
		return paletteLoadedMsg{palette: p, err: err}
	}
}

func cmdSaveReport(deps Deps, in usecase.CheckInput) tea.Cmd {
	return func() tea.Msg {
		_, id, err := usecase.NewCheckContrast(deps.Store).Execute(context.Background(), in)
		return reportSavedMsg{id: id, err: err}
	}
}

func cmdCopy(deps Deps, value string) tea.Cmd {
	return func() tea.Msg {
		if deps.Clipboard == nil {
			return copiedMsg{value: value, err: errors.New("clipboard unavailable")}
		}
		return copiedMsg{value: value, err: deps.Clipboard(value)}
	}
}
