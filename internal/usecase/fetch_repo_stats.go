package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/ports"
)

type FetchRepoStats struct {
	fetcher ports.RepoStatsFetcher
}

func NewFetchRepoStats(f ports.RepoStatsFetcher) *FetchRepoStats {
	return &FetchRepoStats{fetcher: f}
}

// Execute fetches stats for an "owner/name" repository.
func (uc *FetchRepoStats) Execute(ctx context.Context, repo string) (domain.RepoStats, error) {
	r := strings.Trim(strings.TrimSpace(repo), "/")
	owner, name, ok := strings.Cut(r, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return domain.RepoStats{}, &domain.OpError{
			Op:   "stats.repo",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New(`repository must look like "owner/name"`),
		}
	}
	return uc.fetcher.FetchStats(ctx, r)
}
