package tui

import "github.com/aalvaropc/contrastly/internal/domain"

type statsLoadedMsg struct {
	stats domain.RepoStats
	err   error
}

type paletteLoadedMsg struct {
	palette domain.Palette
	err     error
}

type reportSavedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	value string
	err   error
}
