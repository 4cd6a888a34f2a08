package githubstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/httpclient"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func TestFetchStats_OK(t *testing.T) {
	srv, gotPath := newServer(t, http.StatusOK, `{
		"stargazers_count": 128,
		"forks_count": 9,
		"html_url": "https://github.com/swayamDev/contrast-checker"
	}`)

	f := New(WithBaseURL(srv.URL+"/"), WithExecutor(httpclient.NewExecutor(httpclient.WithClient(srv.Client()))))
	stats, err := f.FetchStats(context.Background(), "swayamDev/contrast-checker")
	if err != nil {
		t.Fatalf("FetchStats error: %v", err)
	}

	if *gotPath != "/repos/swayamDev/contrast-checker" {
		t.Fatalf("unexpected path: %s", *gotPath)
	}
	want := domain.RepoStats{
		Repo:    "swayamDev/contrast-checker",
		Stars:   128,
		Forks:   9,
		HTMLURL: "https://github.com/swayamDev/contrast-checker",
	}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}

func TestFetchStats_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   domain.ErrorKind
	}{
		{"not found", http.StatusNotFound, `{"message":"Not Found"}`, domain.KindNotFound},
		{"rate limited", http.StatusForbidden, `{"message":"API rate limit exceeded"}`, domain.KindExecution},
		{"not json", http.StatusOK, `<html></html>`, domain.KindExecution},
		{"missing field", http.StatusOK, `{"stargazers_count": 1, "html_url": "x"}`, domain.KindExecution},
		{"non numeric", http.StatusOK, `{"stargazers_count": "many", "forks_count": 1, "html_url": "x"}`, domain.KindExecution},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newServer(t, tc.status, tc.body)
			f := New(WithBaseURL(srv.URL))

			_, err := f.FetchStats(context.Background(), "a/b")
			if !domain.IsKind(err, tc.kind) {
				t.Fatalf("expected %s, got %v", tc.kind, err)
			}
		})
	}
}

func TestFetchStats_TransportError(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	_, err := New(WithBaseURL(url)).FetchStats(context.Background(), "a/b")
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	if f := New(WithBaseURL("  ")); f.baseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", f.baseURL)
	}
}
