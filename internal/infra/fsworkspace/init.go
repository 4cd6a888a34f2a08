package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/contrastly/internal/app/template"
	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/logger"
)

type Initializer struct {
	cfg domain.Config
}

// NewInitializer renders workspace templates with the default configuration.
func NewInitializer() *Initializer {
	return &Initializer{cfg: domain.DefaultConfig()}
}

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, i.cfg.Paths.PalettesDir),
		filepath.Join(root, i.cfg.Paths.ReportsDir),
		filepath.Join(root, filepath.FromSlash(logger.Dir)),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{Op: "workspace.init", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}

	if err := ensureGitignore(root, i.cfg.Paths.ReportsDir); err != nil {
		return &domain.OpError{Op: "workspace.init", Kind: domain.KindExecution, Path: filepath.Join(root, ".gitignore"), Err: err}
	}

	vars := template.ConfigVars(i.cfg)

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		out, err := template.RenderString(string(b), vars)
		if err != nil {
			return err
		}

		return os.WriteFile(dst, []byte(out), 0o644)
	})
}

func ensureGitignore(root, reportsDir string) error {
	const header = "# contrastly"
	entries := []string{
		strings.TrimSuffix(filepath.ToSlash(reportsDir), "/") + "/",
		".contrastly/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
