package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
)

func randomCmd() *cobra.Command {
	var seed uint64
	var format string

	c := &cobra.Command{
		Use:   "random",
		Short: "Generate a random foreground/background pair and check it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			fg, bg := colormath.RandomPair(colormath.NewRand(seed))
			return printRandom(cmd.OutOrStdout(), randomPair{
				Seed:       seed,
				Foreground: colormath.RGBToHex(fg),
				Background: colormath.RGBToHex(bg),
				Result:     colormath.ContrastOf(fg, bg),
			}, format)
		},
	}

	c.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible pair (default: time based)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

type randomPair struct {
	Seed       uint64                `json:"seed"`
	Foreground string                `json:"foreground"`
	Background string                `json:"background"`
	Result     domain.ContrastResult `json:"result"`
}

func printRandom(w io.Writer, p randomPair, format string) error {
	if format == formatJSON {
		return writeJSON(w, p)
	}
	fmt.Fprintf(w, "Foreground: %s\n", p.Foreground)
	fmt.Fprintf(w, "Background: %s\n", p.Background)
	fmt.Fprintf(w, "Ratio:      %s  %s\n", ratioLabel(p.Result.Ratio), p.Result.Level())
	fmt.Fprintln(w)
	printResultGrid(w, p.Result)
	fmt.Fprintf(w, "\nSeed: %d\n", p.Seed)
	return nil
}
