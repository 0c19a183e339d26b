package cmd

import (
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
	"github.com/msto63/ratio/foundation/utils/ratiox"
)

// Operators lists the operators accepted by "ratio calc"
var Operators = []string{"+", "-", "*", "x", "/", "^", "mod"}

var calcCmd = &cobra.Command{
	Use:   "calc <a> <operator> <b>",
	Short: "Arithmetic on two values",
	Long: `Calculates a <operator> b exactly. Operators: + - * (or x) / ^ mod.

For ^ the exponent b is used as a plain number. mod is the remainder of
a truncated division and has the sign of a.

Put "--" before the arguments when a starts with a minus sign, otherwise
it is read as a flag.

Examples:
  ratio calc 1/2 + 1/3        # 5/6
  ratio calc "3 1/7" - 0.5    # 37/14 with --reduce
  ratio calc 2/3 ^ 2          # 4/9
  ratio calc 22/7 mod 1       # 1/7
  ratio calc -- -1/2 + 1/3    # -1/6`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

type calcResult struct {
	Expression string    `json:"expression"`
	Result     ratioJSON `json:"result"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	a, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := parseOperand(args[2])
	if err != nil {
		return err
	}

	result, err := calculate(a, args[1], b)
	if err != nil {
		return err
	}

	expr := args[0] + " " + args[1] + " " + args[2]
	logger.Debug("calculated",
		zap.String("expression", expr),
		zap.Stringer("result", result),
	)

	return render(cmd, display(result), calcResult{Expression: expr, Result: toJSON(result)})
}

// calculate applies op to a and b
func calculate(a ratiox.Ratio, op string, b ratiox.Ratio) (ratiox.Ratio, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Subtract(b), nil
	case "*", "x":
		return a.Multiply(b), nil
	case "/":
		if b.Float64() == 0 {
			return ratiox.Ratio{}, divisionByZero(a.String() + " / " + b.String())
		}
		return a.Divide(b), nil
	case "^":
		return a.Pow(b.Float64()), nil
	case "mod":
		if b.Float64() == 0 {
			return ratiox.Ratio{}, divisionByZero(a.String() + " mod " + b.String())
		}
		whole := math.Trunc(a.Divide(b).Float64())
		return a.Subtract(b.Multiply(ratiox.New(whole))), nil
	default:
		return ratiox.Ratio{}, mdwerrors.UnknownOperator(mdwerrors.ModuleCLI, op, Operators)
	}
}
