package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ratio/foundation/utils/ratiox"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce <value> [denominator]",
	Short: "Lowest terms of a value",
	Long: `Reduces a value to lowest terms. Repeating decimals are recognised, so
0.3333333333333333 reduces to 1/3 rather than to a power of ten.

Examples:
  ratio reduce 22 70           # 11/35
  ratio reduce 0.75            # 3/4
  ratio reduce 22e31 70e30     # 22/7`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(cmd *cobra.Command, args []string) error {
	r, err := parseValue(args)
	if err != nil {
		return err
	}

	arr := ratiox.Reduce(r)
	reduced := r.WithNumerator(arr[0]).WithDenominator(arr[1])
	return render(cmd, display(reduced), toJSON(reduced))
}
