package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp, "reports"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	want := "# contrastly\nreports/\n.contrastly/\n"
	if string(b) != want {
		t.Fatalf("expected %q, got %q", want, string(b))
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "node_modules/\n# contrastly\nreports/"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp, "reports/"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.HasPrefix(s, "node_modules/\n") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# contrastly") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, "reports/") != 1 {
		t.Fatalf("expected reports/ not duplicated, got:\n%s", s)
	}
	if !strings.Contains(s, ".contrastly/") {
		t.Fatalf("expected .contrastly/ appended, got:\n%s", s)
	}
}

func TestEnsureGitignore_NoopWhenComplete(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "# contrastly\nreports/\n.contrastly/\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}
	if err := ensureGitignore(tmp, "reports"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, _ := os.ReadFile(path)
	if string(b) != existing {
		t.Fatalf("expected unchanged file, got %q", string(b))
	}
}
