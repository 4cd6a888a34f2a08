package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/contrastly/internal/domain"
)

type fakeStore struct {
	mu    sync.Mutex
	saved []domain.Report
	err   error
}

func (s *fakeStore) SaveReport(r domain.Report) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, r)
	return "rep-123", nil
}

type fakePalettes struct {
	byName map[string]domain.Palette
	err    error
}

func (f fakePalettes) LoadPalette(name string) (domain.Palette, error) {
	if f.err != nil {
		return domain.Palette{}, f.err
	}
	p, ok := f.byName[name]
	if !ok {
		return domain.Palette{}, &domain.OpError{Op: "palette.load", Kind: domain.KindNotFound, Path: name, Err: domain.ErrNotFound}
	}
	return p, nil
}

func (f fakePalettes) ListPalettes() ([]domain.PaletteRef, error) {
	out := make([]domain.PaletteRef, 0, len(f.byName))
	for name := range f.byName {
		out = append(out, domain.PaletteRef{Name: name, Builtin: true})
	}
	return out, nil
}

type fakeFetcher struct {
	stats   domain.RepoStats
	err     error
	gotRepo string
}

func (f *fakeFetcher) FetchStats(_ context.Context, repo string) (domain.RepoStats, error) {
	f.gotRepo = repo
	return f.stats, f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}
