package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/githubstats"
	"github.com/aalvaropc/contrastly/internal/infra/httpclient"
	"github.com/aalvaropc/contrastly/internal/infra/reportstore"
	"github.com/aalvaropc/contrastly/internal/infra/workspacefinder"
	"github.com/aalvaropc/contrastly/internal/infra/yamlpalette"
	"github.com/aalvaropc/contrastly/internal/ports"
)

var errNoWorkspace = errors.New("no contrastly workspace found (tip: run `contrastly init`)")

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	palettes ports.PaletteLoader
	store    ports.ReportStore
	stats    ports.RepoStatsFetcher
}

// loadWorkspace resolves the workspace and wires its adapters. Without an
// explicit --workspace and without a contrastly.yaml above the working
// directory, commands run on defaults and nothing is saved.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	}

	ws := &workspaceCtx{
		root:  root,
		found: found,
		cfg:   cfg,
		stats: githubstats.New(
			githubstats.WithBaseURL(cfg.Repo.APIBaseURL),
			githubstats.WithExecutor(httpclient.NewExecutor()),
		),
	}

	if found {
		ws.palettes = yamlpalette.NewLoader(yamlpalette.WithPalettesDir(filepath.Join(root, cfg.Paths.PalettesDir)))
		ws.store = reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))
	} else {
		ws.palettes = yamlpalette.NewLoader()
	}

	return ws, nil
}

// reportStore returns the store, or an error when there is nowhere to save.
func (ws *workspaceCtx) reportStore() (ports.ReportStore, error) {
	if !ws.found || ws.store == nil {
		return nil, errNoWorkspace
	}
	return ws.store, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, ferr := workspacefinder.NewFinder().FindRoot(wd)
	if ferr != nil {
		if domain.IsKind(ferr, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, ferr
	}
	return root, true, nil
}
