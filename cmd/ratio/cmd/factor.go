package cmd

import (
	"math"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
	"github.com/msto63/ratio/foundation/utils/ratiox"
)

var factorCmd = &cobra.Command{
	Use:   "factor <n>...",
	Short: "Prime factors of whole numbers",
	Long: `Prints the prime factors of each whole number greater than one.

Examples:
  ratio factor 360             # 360: 2 2 2 3 3 5
  ratio factor 12 97`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFactor,
}

func init() {
	rootCmd.AddCommand(factorCmd)
}

type factorResult struct {
	N       float64   `json:"n"`
	Factors []float64 `json:"factors"`
}

func runFactor(cmd *cobra.Command, args []string) error {
	results := make([]factorResult, 0, len(args))
	lines := make([]string, 0, len(args))

	for _, arg := range args {
		n, err := parseNumber(arg)
		if err != nil {
			return err
		}
		if n <= 1 || n != math.Trunc(n) || n > 1<<53 {
			return mdwerrors.OutOfRange(mdwerrors.ModuleCLI, "n", arg, 2, "2^53")
		}

		factors := ratiox.PrimeFactors(n)
		results = append(results, factorResult{N: n, Factors: factors})

		parts := make([]string, len(factors))
		for i, f := range factors {
			parts[i] = ratiox.FormatNumber(f)
		}
		lines = append(lines, ratiox.FormatNumber(n)+": "+strings.Join(parts, " "))
	}

	return render(cmd, strings.Join(lines, "\n"), results)
}
