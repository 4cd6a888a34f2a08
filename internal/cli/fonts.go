package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/domain"
)

func fontsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "fonts",
		Short: "List preview fonts and the stylesheet that loads them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			fonts := domain.Fonts()
			url := domain.FontStylesheetURL(fonts)
			w := cmd.OutOrStdout()

			if format == formatJSON {
				return writeJSON(w, map[string]any{
					"fonts":      fonts,
					"stylesheet": url,
				})
			}

			t := newTable("NAME", "CSS")
			for _, f := range fonts {
				t.Row(f.Name, f.Value)
			}
			fmt.Fprintln(w, t.Render())
			fmt.Fprintf(w, "Stylesheet: %s\n", url)
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
