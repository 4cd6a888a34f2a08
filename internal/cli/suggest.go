package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
)

func suggestCmd() *cobra.Command {
	var target float64
	var format string

	c := &cobra.Command{
		Use:   "suggest FOREGROUND BACKGROUND",
		Short: "Suggest the closest foreground that reaches a target ratio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if target < 1 || target > 21 {
				return fmt.Errorf("--target must be between 1 and 21, got %g", target)
			}

			fg, ok := colormath.Parse(args[0])
			if !ok {
				return invalidArg("suggest.parse", "foreground", args[0])
			}
			bg, ok := colormath.Parse(args[1])
			if !ok {
				return invalidArg("suggest.parse", "background", args[1])
			}

			s, reached := colormath.Suggest(fg, bg, target)
			out := suggestion{
				Original:  colormath.RGBToHex(fg),
				Suggested: colormath.RGBToHex(s),
				Before:    colormath.Ratio(fg, bg),
				After:     colormath.Ratio(s, bg),
				Target:    target,
				Reached:   reached,
			}
			return printSuggestion(cmd.OutOrStdout(), out, format)
		},
	}

	c.Flags().Float64VarP(&target, "target", "t", domain.MinRatioAANormal, "Target contrast ratio")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

type suggestion struct {
	Original  string  `json:"original"`
	Suggested string  `json:"suggested"`
	Before    float64 `json:"ratio_before"`
	After     float64 `json:"ratio_after"`
	Target    float64 `json:"target"`
	Reached   bool    `json:"reached"`
}

func printSuggestion(w io.Writer, s suggestion, format string) error {
	if format == formatJSON {
		return writeJSON(w, s)
	}
	fmt.Fprintf(w, "Current:   %s  %s\n", s.Original, ratioLabel(s.Before))
	fmt.Fprintf(w, "Suggested: %s  %s\n", s.Suggested, ratioLabel(s.After))
	if !s.Reached {
		fmt.Fprintf(w, "Target %g:1 is not reachable against this background; showing the best of black/white.\n", s.Target)
	}
	return nil
}

func invalidArg(op, which, text string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidColor,
		Err:  fmt.Errorf("%s %q: %w", which, text, domain.ErrInvalidColor),
	}
}
