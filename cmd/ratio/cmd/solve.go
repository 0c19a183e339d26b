package cmd

import (
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
	"github.com/msto63/ratio/foundation/utils/ratiox"
)

var solveCmd = &cobra.Command{
	Use:   "solve <value> <pattern>",
	Short: "Solve value = x/n or value = n/x",
	Long: `Solves a proportion for x. The pattern has exactly one "/" and an x on
one side.

Examples:
  ratio solve 1/2 x/10         # x = 10/2 (5)
  ratio solve 1/2 10/x         # x = 20/1 (20)`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

type solveResult struct {
	Pattern string    `json:"pattern"`
	X       ratioJSON `json:"x"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	r, err := parseOperand(args[0])
	if err != nil {
		return err
	}

	x, ok := r.FindX(args[1])
	if !ok {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "solve", args[1], `"x/n" or "n/x"`)
	}

	text := "x = " + display(x) + " (" + ratiox.FormatNumber(x.Float64()) + ")"
	return render(cmd, text, solveResult{Pattern: args[1], X: toJSON(x)})
}
