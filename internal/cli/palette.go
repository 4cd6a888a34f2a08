package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/usecase"
)

func paletteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "palette",
		Short: "Browse and audit color palettes",
	}

	c.AddCommand(paletteListCmd(), paletteShowCmd(), paletteAuditCmd())
	return c
}

func paletteListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and workspace palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.palettes.ListPalettes()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if ws.found {
				fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			}
			for _, r := range refs {
				if r.Builtin {
					fmt.Fprintf(w, "- %s  (built-in)\n", r.Name)
					continue
				}
				rel, err := filepath.Rel(ws.root, r.Path)
				if err != nil {
					rel = r.Path
				}
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func paletteShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show every swatch of a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			p, err := ws.palettes.LoadPalette(args[0])
			if err != nil {
				return err
			}
			return printPalette(cmd.OutOrStdout(), p, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func paletteAuditCmd() *cobra.Command {
	var workspace string
	var background string
	var format string
	var minGate string

	cmd := &cobra.Command{
		Use:   "audit NAME [NAME...]",
		Short: "Check every swatch of one or more palettes against a background",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			gate := ws.cfg.Defaults.Gate
			if strings.TrimSpace(minGate) != "" {
				g, ok := domain.ParseGate(minGate)
				if !ok {
					return fmt.Errorf("unsupported --min %q (expected aa|aa-large|aaa|aaa-large)", minGate)
				}
				gate = g
			}
			if background == "" {
				background = ws.cfg.Defaults.Background
			}

			checks, err := usecase.NewAuditPalette(ws.palettes).Execute(cmd.Context(), args, background)
			if err != nil {
				return err
			}
			return printAudit(cmd.OutOrStdout(), checks, background, gate, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&background, "bg", "b", "", "Background color (default from config)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().StringVar(&minGate, "min", "", "Gate used for the pass column (default from config)")
	return cmd
}

func printPalette(w io.Writer, p domain.Palette, format string) error {
	if format == formatJSON {
		return writeJSON(w, p)
	}

	t := newTable("FAMILY", "SWATCH", "VALUE")
	for _, f := range p.Families {
		for _, s := range f.Shades {
			t.Row(f.Name, s.Label, s.Value)
		}
	}
	fmt.Fprintf(w, "Palette: %s (%d swatches)\n", p.Name, len(p.Swatches()))
	fmt.Fprintln(w, t.Render())
	return nil
}

type auditRow struct {
	Palette string                `json:"palette"`
	Swatch  string                `json:"swatch"`
	Value   string                `json:"value"`
	Result  domain.ContrastResult `json:"result"`
	Level   domain.Level          `json:"level"`
	Passes  bool                  `json:"passes"`
}

func printAudit(w io.Writer, checks []domain.SwatchCheck, background string, gate domain.Gate, format string) error {
	rows := make([]auditRow, 0, len(checks))
	passing := 0
	for _, c := range checks {
		ok := c.Result.Passes(gate)
		if ok {
			passing++
		}
		rows = append(rows, auditRow{
			Palette: c.Palette,
			Swatch:  c.Swatch.Label,
			Value:   c.Swatch.Value,
			Result:  c.Result,
			Level:   c.Result.Level(),
			Passes:  ok,
		})
	}

	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"background": background,
			"gate":       gate,
			"passing":    passing,
			"swatches":   rows,
		})
	}

	t := newTable("PALETTE", "SWATCH", "VALUE", "RATIO", "LEVEL", strings.ToUpper(string(gate)))
	for _, r := range rows {
		t.Row(r.Palette, r.Swatch, r.Value, ratioLabel(r.Result.Ratio), string(r.Level), passLabel(r.Passes))
	}
	fmt.Fprintf(w, "Background: %s  gate: %s  passing: %d/%d\n", background, gate, passing, len(rows))
	fmt.Fprintln(w, t.Render())
	return nil
}
