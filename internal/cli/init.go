package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/infra/fsworkspace"
	"github.com/aalvaropc/contrastly/internal/infra/logger"
	"github.com/aalvaropc/contrastly/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a contrastly workspace (config, palettes, reports)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, force); err != nil {
				return err
			}
			logger.L().Info("workspace.initialized", "root", root, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing template files")
	return c
}
