package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "contrastly.yaml"))
	assertFileExists(t, filepath.Join(tmp, "palettes", "brand.yaml"))
	assertDirExists(t, filepath.Join(tmp, "reports"))
	assertDirExists(t, filepath.Join(tmp, ".contrastly", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_ConfigRoundTripsThroughLoader(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "contrastly.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if strings.Contains(string(b), "{{") {
		t.Fatalf("template placeholders left unrendered:\n%s", b)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected rendered config to equal defaults, got %+v", cfg)
	}

	root, err := workspacefinder.NewFinder().FindRoot(filepath.Join(tmp, "palettes"))
	if err != nil || root != tmp {
		t.Fatalf("expected workspace root %s, got %s (err=%v)", tmp, root, err)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "contrastly.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing contrastly.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read contrastly.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected contrastly.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read contrastly.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "contrastly:") {
		t.Fatalf("expected contrastly.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected %s to be a file", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s, err=%v", path, err)
	}
}
