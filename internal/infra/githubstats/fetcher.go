package githubstats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/httpclient"
	"github.com/aalvaropc/contrastly/internal/infra/logger"
	"github.com/aalvaropc/contrastly/internal/ports"
	"github.com/aalvaropc/contrastly/internal/usecase/extract"
)

const DefaultBaseURL = "https://api.github.com"

var rules = extract.Rules{
	"stars": "$.stargazers_count",
	"forks": "$.forks_count",
	"url":   "$.html_url",
}

type doer interface {
	Do(ctx context.Context, req *http.Request) (httpclient.ResponseData, error)
}

// Fetcher reads repository metadata from the GitHub REST API.
type Fetcher struct {
	baseURL string
	exec    doer
}

type Option func(*Fetcher)

func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		if strings.TrimSpace(u) != "" {
			f.baseURL = u
		}
	}
}

func WithExecutor(e *httpclient.Executor) Option {
	return func(f *Fetcher) { f.exec = e }
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: DefaultBaseURL,
		exec:    httpclient.NewExecutor(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.baseURL = strings.TrimRight(f.baseURL, "/")
	return f
}

var _ ports.RepoStatsFetcher = (*Fetcher)(nil)

// FetchStats issues GET {base}/repos/{owner/name}.
func (f *Fetcher) FetchStats(ctx context.Context, repo string) (domain.RepoStats, error) {
	url := f.baseURL + "/repos/" + repo
	log := logger.L().With("repo", repo)

	req, err := httpclient.NewGetJSON(ctx, url)
	if err != nil {
		return domain.RepoStats{}, &domain.OpError{Op: "stats.request", Kind: domain.KindInvalidConfig, Path: url, Err: err}
	}

	resp, err := f.exec.Do(ctx, req)
	if err != nil {
		log.Warn("stats.fetch.failed", "error", err.Error())
		return domain.RepoStats{}, &domain.OpError{Op: "stats.fetch", Kind: domain.KindExecution, Path: url, Err: err}
	}

	switch {
	case resp.Status == http.StatusNotFound:
		return domain.RepoStats{}, &domain.OpError{
			Op:   "stats.fetch",
			Kind: domain.KindNotFound,
			Path: url,
			Err:  fmt.Errorf("repository %q: %w", repo, domain.ErrNotFound),
		}
	case resp.Status != http.StatusOK:
		log.Warn("stats.fetch.failed", "status", resp.Status)
		return domain.RepoStats{}, &domain.OpError{
			Op:   "stats.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  fmt.Errorf("unexpected status %d: %w", resp.Status, domain.ErrExecution),
		}
	}

	vals, results := extract.Apply(resp.BodyBytes, rules)
	for _, r := range results {
		if !r.Success {
			log.Warn("stats.extract.failed", "field", r.Name, "message", r.Message)
			return domain.RepoStats{}, &domain.OpError{
				Op:   "stats.extract",
				Kind: domain.KindExecution,
				Path: url,
				Err:  errors.New(r.Message),
			}
		}
	}

	stars, err := strconv.Atoi(vals["stars"])
	if err != nil {
		return domain.RepoStats{}, &domain.OpError{Op: "stats.extract", Kind: domain.KindExecution, Path: url, Err: err}
	}
	forks, err := strconv.Atoi(vals["forks"])
	if err != nil {
		return domain.RepoStats{}, &domain.OpError{Op: "stats.extract", Kind: domain.KindExecution, Path: url, Err: err}
	}

	log.Debug("stats.fetched", "stars", stars, "forks", forks, "duration_ms", resp.Duration.Milliseconds())

	return domain.RepoStats{
		Repo:    repo,
		Stars:   stars,
		Forks:   forks,
		HTMLURL: vals["url"],
	}, nil
}
