package cli

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
)

// copyToClipboard is swapped in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

func convertCmd() *cobra.Command {
	var format string
	var copyHex bool

	c := &cobra.Command{
		Use:   "convert COLOR",
		Short: "Show a color in hex, rgb and hsl notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			c, ok := colormath.Parse(args[0])
			if !ok {
				return invalidArg("convert.parse", "color", args[0])
			}

			out := describeColor(c)
			if err := printConversion(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}

			if copyHex {
				if err := copyToClipboard(out.Hex); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				if format != formatJSON {
					fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to clipboard\n", out.Hex)
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().BoolVarP(&copyHex, "copy", "c", false, "Copy the hex form to the clipboard")
	return c
}

type colorDescription struct {
	Hex       string       `json:"hex"`
	RGB       string       `json:"rgb"`
	HSL       string       `json:"hsl"`
	Color     domain.Color `json:"channels"`
	Luminance float64      `json:"luminance"`
	Nearest   string       `json:"nearest_name"`
}

func describeColor(c domain.Color) colorDescription {
	return colorDescription{
		Hex:       colormath.RGBToHex(c),
		RGB:       colormath.FormatRGB(c),
		HSL:       colormath.FormatHSL(colormath.RGBToHSL(c)),
		Color:     c,
		Luminance: colormath.RelativeLuminance(c),
		Nearest:   colormath.NearestName(c),
	}
}

func printConversion(w io.Writer, d colorDescription, format string) error {
	if format == formatJSON {
		return writeJSON(w, d)
	}
	fmt.Fprintf(w, "Hex:       %s\n", d.Hex)
	fmt.Fprintf(w, "RGB:       %s\n", d.RGB)
	fmt.Fprintf(w, "HSL:       %s\n", d.HSL)
	fmt.Fprintf(w, "Luminance: %.4f\n", d.Luminance)
	fmt.Fprintf(w, "Nearest:   %s\n", d.Nearest)
	return nil
}
