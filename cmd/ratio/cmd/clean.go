package cmd

import (
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <value> [denominator]",
	Short: "Remove floating point noise",
	Long: `Turns decimal fields into whole numbers and rounds away trailing runs of
0s or 9s left behind by floating point arithmetic.

Examples:
  ratio clean 7.700000000000001e21/1   # 7.7e+21/1
  ratio clean 1.5/2                    # 15/20`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	r, err := parseValue(args)
	if err != nil {
		return err
	}

	cleaned := r.CleanFormat()
	return render(cmd, display(cleaned), toJSON(cleaned))
}
