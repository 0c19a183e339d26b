package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/ratio/foundation/utils/ratiox"
)

var parseCmd = &cobra.Command{
	Use:   "parse <value> [denominator]",
	Short: "Show how a value is read",
	Long: `Shows the detected kind of a value and its fraction, mixed number,
decimal and scientific forms.

With two values the first is divided by the second and the kind of each
is shown. Put "--" before a negative value so it is not read as a flag.

Examples:
  ratio parse 0.75
  ratio parse "3 1/7"
  ratio parse 1.1e-30
  ratio parse 1/2 1/3          # (1/2) / (1/3)
  ratio parse -- -0.5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

type parseResult struct {
	Input      string    `json:"input"`
	Kind       string    `json:"kind"`
	Ratio      ratioJSON `json:"ratio"`
	Reduced    string    `json:"reduced"`
	Scientific string    `json:"scientific"`
	Proper     bool      `json:"proper"`
}

func runParse(cmd *cobra.Command, args []string) error {
	r, err := parseValue(args)
	if err != nil {
		return err
	}

	res := parseResult{
		Input:      strings.Join(args, " / "),
		Kind:       kindOf(args),
		Ratio:      toJSON(r),
		Reduced:    r.Simplify().String(),
		Scientific: r.ToExponential(cfg.Format.ExponentDigits),
		Proper:     r.IsProper(),
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "input:      %s\n", res.Input)
	fmt.Fprintf(&sb, "kind:       %s\n", res.Kind)
	fmt.Fprintf(&sb, "fraction:   %s\n", res.Ratio.Fraction)
	fmt.Fprintf(&sb, "reduced:    %s\n", res.Reduced)
	fmt.Fprintf(&sb, "mixed:      %s\n", res.Ratio.Mixed)
	fmt.Fprintf(&sb, "decimal:    %s\n", res.Ratio.Value)
	fmt.Fprintf(&sb, "scientific: %s\n", res.Scientific)
	fmt.Fprintf(&sb, "proper:     %t", res.Proper)

	return render(cmd, sb.String(), res)
}

// kindOf names the detected kind of each argument, "fraction / decimal"
// for two values
func kindOf(args []string) string {
	kinds := make([]string, len(args))
	for i, arg := range args {
		kinds[i] = ratiox.TypeGuess(arg).String()
	}
	return strings.Join(kinds, " / ")
}
