package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aalvaropc/contrastly/internal/domain"
)

func TestFetchRepoStats_NormalizesRepo(t *testing.T) {
	f := &fakeFetcher{stats: domain.RepoStats{Stars: 12, Forks: 3}}
	uc := NewFetchRepoStats(f)

	got, err := uc.Execute(context.Background(), " /swayamDev/contrast-checker/ ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.gotRepo != "swayamDev/contrast-checker" {
		t.Fatalf("unexpected repo passed to fetcher: %q", f.gotRepo)
	}
	if got.Stars != 12 || got.Forks != 3 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestFetchRepoStats_RejectsMalformedRepo(t *testing.T) {
	for _, repo := range []string{"", "owner", "owner/", "/name", "a/b/c"} {
		f := &fakeFetcher{}
		_, err := NewFetchRepoStats(f).Execute(context.Background(), repo)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("repo %q: expected KindInvalidConfig, got %v", repo, err)
		}
		if f.gotRepo != "" {
			t.Fatalf("repo %q: fetcher should not be called", repo)
		}
	}
}

func TestFetchRepoStats_FetcherError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewFetchRepoStats(&fakeFetcher{err: boom}).Execute(context.Background(), "a/b")
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetcher error, got %v", err)
	}
}

func TestInitWorkspace_PassesRootAndForce(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fi.spec.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}
}
