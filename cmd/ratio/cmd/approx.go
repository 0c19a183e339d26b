package cmd

import (
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/ratio/foundation/utils/ratiox"
)

var approxCmd = &cobra.Command{
	Use:   "approx <value> [denominator...]",
	Short: "Closest fraction with one of the given denominators",
	Long: `Approximates a value by a fraction with one of the given denominators.
The first denominator that hits the value exactly wins, otherwise the one
with the smallest error. Without denominators the list from the
configuration ([approximate] denominators) is used.

Examples:
  ratio approx 0.27 3          # 1/3
  ratio approx 3.14159 7       # 22/7
  ratio approx 3.14159 7 113   # 355/113
  ratio approx 0.3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApprox,
}

func init() {
	rootCmd.AddCommand(approxCmd)
}

type approxResult struct {
	Result ratioJSON `json:"result"`
	Error  string    `json:"error"`
}

func runApprox(cmd *cobra.Command, args []string) error {
	r, err := parseOperand(args[0])
	if err != nil {
		return err
	}

	denominators := cfg.Approximate.Denominators
	if len(args) > 1 {
		denominators = make([]float64, 0, len(args)-1)
		for _, arg := range args[1:] {
			n, err := parseNumber(arg)
			if err != nil {
				return err
			}
			denominators = append(denominators, n)
		}
	}

	result := r.ToQuantityOf(denominators...)
	diff := ratiox.FormatNumber(math.Abs(result.Float64() - r.Float64()))

	logger.Debug("approximated",
		zap.Stringer("value", r),
		zap.Float64s("denominators", denominators),
		zap.Stringer("result", result),
		zap.String("error", diff),
	)

	return render(cmd, display(result), approxResult{Result: toJSON(result), Error: diff})
}
