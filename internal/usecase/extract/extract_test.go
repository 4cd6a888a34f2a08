package extract

import (
	"strings"
	"testing"
)

const repoBody = `{
  "full_name": "swayamDev/contrast-checker",
  "stargazers_count": 42,
  "forks_count": 7,
  "html_url": "https://github.com/swayamDev/contrast-checker",
  "archived": false,
  "description": null,
  "topics": ["a11y", "wcag"],
  "owner": {"login": "swayamDev"}
}`

func TestApply_EmptyRules(t *testing.T) {
	vals, results := Apply([]byte(repoBody), Rules{})
	if len(vals) != 0 || len(results) != 0 {
		t.Fatalf("expected nothing, got vals=%v results=%v", vals, results)
	}
}

func TestApply_RepoFields(t *testing.T) {
	rules := Rules{
		"stars": "$.stargazers_count",
		"forks": "$.forks_count",
		"url":   "$.html_url",
		"owner": "$.owner.login",
	}

	vals, results := Apply([]byte(repoBody), rules)

	want := map[string]string{
		"stars": "42",
		"forks": "7",
		"url":   "https://github.com/swayamDev/contrast-checker",
		"owner": "swayamDev",
	}
	for k, v := range want {
		if vals[k] != v {
			t.Fatalf("%s: expected %q, got %q", k, v, vals[k])
		}
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	// results are sorted by name
	if results[0].Name != "forks" || results[3].Name != "url" {
		t.Fatalf("unexpected order: %+v", results)
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("expected success for %s: %s", r.Name, r.Message)
		}
	}
}

func TestApply_ScalarKinds(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{"bool", "$.archived", "false"},
		{"single element", "$.topics[0]", "a11y"},
		{"array", "$.topics", `["a11y","wcag"]`},
		{"object", "$.owner", `{"login":"swayamDev"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals, results := Apply([]byte(repoBody), Rules{"v": tc.expr})
			if len(results) != 1 || !results[0].Success {
				t.Fatalf("expected success, got %+v", results)
			}
			if vals["v"] != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, vals["v"])
			}
		})
	}
}

func TestApply_LargeCountsStayIntegral(t *testing.T) {
	vals, _ := Apply([]byte(`{"stargazers_count": 1234567}`), Rules{"stars": "$.stargazers_count"})
	if vals["stars"] != "1234567" {
		t.Fatalf("expected plain integer, got %q", vals["stars"])
	}
}

func TestApply_FailingRules(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		expr    string
		message string
	}{
		{"not json", `<html>rate limited</html>`, "$.stargazers_count", "not valid JSON"},
		{"empty expression", repoBody, "  ", "empty jsonpath"},
		{"bad expression", repoBody, "$.stargazers_count[", "jsonpath error"},
		{"missing", repoBody, "$.watchers", "watchers"},
		{"null", repoBody, "$.description", "no value found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals, results := Apply([]byte(tc.body), Rules{"field": tc.expr})
			if len(vals) != 0 {
				t.Fatalf("expected no values, got %v", vals)
			}
			if len(results) != 1 || results[0].Success {
				t.Fatalf("expected one failed result, got %+v", results)
			}
			if !strings.Contains(results[0].Message, tc.message) {
				t.Fatalf("expected message containing %q, got %q", tc.message, results[0].Message)
			}
		})
	}
}

func TestApply_OneFailureDoesNotStopOthers(t *testing.T) {
	vals, results := Apply([]byte(repoBody), Rules{
		"stars": "$.stargazers_count",
		"bogus": "$.nope",
	})
	if vals["stars"] != "42" {
		t.Fatalf("expected stars extracted, got %v", vals)
	}
	if len(results) != 2 || results[0].Success || !results[1].Success {
		t.Fatalf("unexpected results: %+v", results)
	}
}
