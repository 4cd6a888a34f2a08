package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/contrastly/internal/domain"
)

// Finder locates a workspace root by searching for contrastly.yaml upward.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path starts the search at its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
