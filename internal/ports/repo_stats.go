package ports

import (
	"context"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// RepoStatsFetcher reads repository metadata (stars, forks).
type RepoStatsFetcher interface {
	FetchStats(ctx context.Context, repo string) (domain.RepoStats, error)
}
