package cmd

import (
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
	"github.com/msto63/ratio/foundation/utils/mathx"
)

var (
	places   int
	rounding string
)

var decimalCmd = &cobra.Command{
	Use:   "decimal <value> [denominator]",
	Short: "Exact decimal expansion",
	Long: `Expands a value into decimal digits without float rounding. Terminating
expansions are printed in full; others are cut at --places (default 20)
using --rounding.

Examples:
  ratio decimal 1/8                            # 0.125
  ratio decimal 1/7 -p 10                      # 0.1428571429
  ratio decimal 5/2 -p 0 --rounding half-even  # 2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDecimal,
}

func init() {
	decimalCmd.Flags().IntVarP(&places, "places", "p", mathx.DefaultPlaces, "digits after the decimal point")
	decimalCmd.Flags().StringVar(&rounding, "rounding", "half-even", "rounding mode: half-up, half-even, half-down, up, down")
	rootCmd.AddCommand(decimalCmd)
}

type decimalResult struct {
	Decimal  string `json:"decimal"`
	Exact    bool   `json:"exact"`
	Places   int    `json:"places"`
	Rounding string `json:"rounding,omitempty"`
}

func runDecimal(cmd *cobra.Command, args []string) error {
	if places < 0 {
		return mdwerrors.OutOfRange(mdwerrors.ModuleCLI, "places", places, 0, "+Inf")
	}
	mode, err := mathx.ParseRoundingMode(rounding)
	if err != nil {
		return err
	}

	r, err := parseValue(args)
	if err != nil {
		return err
	}

	d, err := mathx.FromRatio(r.Numerator(), r.Denominator())
	if err != nil {
		return err
	}

	res := decimalResult{Places: places}
	if n, ok := d.Terminating(); ok && (!cmd.Flags().Changed("places") || n <= places) {
		res.Decimal, res.Exact, res.Places = d.Rat().FloatString(n), true, n
	} else {
		res.Decimal, res.Rounding = d.StringFixed(places, mode), mode.String()
	}

	return render(cmd, res.Decimal, res)
}
