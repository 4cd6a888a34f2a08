package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/infra/logger"
	"github.com/aalvaropc/contrastly/internal/infra/workspacefinder"
	"github.com/aalvaropc/contrastly/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "contrastly",
		Short:        "contrastly — WCAG color contrast checker for the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cleanup = setupLogging(debug)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Config:     ws.cfg,
				Palettes:   ws.palettes,
				Store:      ws.store,
				Stats:      ws.stats,
				Clipboard:  copyToClipboard,
				Logger:     logger.L(),
				Debug:      debug,
				Workspaced: ws.found,
			}

			return tui.Run(cmd.Context(), deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .contrastly/logs/contrastly.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		checkCmd(),
		convertCmd(),
		suggestCmd(),
		randomCmd(),
		paletteCmd(),
		fontsCmd(),
		statsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging writes logs into the enclosing workspace. Outside a workspace
// logs are discarded unless --debug asks for them in the working directory.
func setupLogging(debug bool) func() error {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	logRoot := ""
	if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
		logRoot = root
	} else if debug {
		logRoot = wd
	}
	if logRoot == "" {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{Root: logRoot, Debug: debug})
	if err != nil {
		return nil
	}
	return cleanup
}
