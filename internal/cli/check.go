package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/logger"
	"github.com/aalvaropc/contrastly/internal/ports"
	"github.com/aalvaropc/contrastly/internal/usecase"
)

func checkCmd() *cobra.Command {
	var workspace string
	var font string
	var format string
	var minGate string
	var save bool

	c := &cobra.Command{
		Use:   "check FOREGROUND BACKGROUND",
		Short: "Check the WCAG contrast of a foreground/background pair",
		Long: "Colors may be written as #rrggbb, rgb(r, g, b) or hsl(h, s%, l%).\n" +
			"Exits non-zero when the pair does not meet the --min gate.",
		Args: cobra.ExactArgs(2),
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

			if font == "" {
				font = ws.cfg.Defaults.Font
			}
			f, ok := domain.FontByName(font)
			if !ok {
				return fmt.Errorf("unknown font %q (see `contrastly fonts`)", font)
			}

			var store ports.ReportStore
			if save {
				store, err = ws.reportStore()
				if err != nil {
					return err
				}
			}

			rep, id, err := usecase.NewCheckContrast(store).Execute(cmd.Context(), usecase.CheckInput{
				Foreground: args[0],
				Background: args[1],
				Font:       f.Name,
			})
			if err != nil {
				return err
			}
			if id != "" {
				logger.L().Info("check.saved", "id", id, "ratio", rep.Result.Ratio)
			}

			if err := printCheck(cmd.OutOrStdout(), rep, gate, format); err != nil {
				return err
			}

			if !rep.Result.Passes(gate) {
				return fmt.Errorf("contrast %s does not meet %s (needs %g:1)", ratioLabel(rep.Result.Ratio), gate, gate.MinRatio())
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&font, "font", "f", "", "Preview font recorded in the report (default from config)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().StringVar(&minGate, "min", "", "Gate to enforce: aa|aa-large|aaa|aaa-large (default from config)")
	c.Flags().BoolVarP(&save, "save", "s", false, "Save the report under the workspace reports dir")
	return c
}

type checkOutput struct {
	ID     string        `json:"id,omitempty"`
	Gate   domain.Gate   `json:"gate"`
	Passes bool          `json:"passes"`
	Report domain.Report `json:"report"`
}

func printCheck(w io.Writer, rep domain.Report, gate domain.Gate, format string) error {
	if format == formatJSON {
		return writeJSON(w, checkOutput{
			ID:     rep.ID,
			Gate:   gate,
			Passes: rep.Result.Passes(gate),
			Report: rep,
		})
	}

	fmt.Fprintf(w, "Foreground: %s\n", describeInput(rep.Foreground))
	fmt.Fprintf(w, "Background: %s\n", describeInput(rep.Background))
	if rep.Font != "" {
		fmt.Fprintf(w, "Font:       %s\n", rep.Font)
	}
	fmt.Fprintf(w, "Ratio:      %s  %s\n", ratioLabel(rep.Result.Ratio), rep.Level)
	fmt.Fprintln(w)
	printResultGrid(w, rep.Result)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Gate %s: %s\n", gate, passLabel(rep.Result.Passes(gate)))
	if rep.ID != "" {
		fmt.Fprintf(w, "Report ID:  %s\n", rep.ID)
	}
	return nil
}

func describeInput(in domain.ColorInput) string {
	if strings.EqualFold(in.Input, in.Hex) {
		return in.Hex
	}
	return fmt.Sprintf("%s  (%s)", in.Hex, in.Input)
}

