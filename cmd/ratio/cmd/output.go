package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mdwerror "github.com/msto63/ratio/foundation/core/error"
	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
	"github.com/msto63/ratio/foundation/utils/ratiox"
	"github.com/msto63/ratio/pkg/core/config"
)

// ratioJSON is the machine readable form of a ratio
type ratioJSON struct {
	Fraction    string  `json:"fraction"`
	Mixed       string  `json:"mixed"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Value       string  `json:"value"`
}

func toJSON(r ratiox.Ratio) ratioJSON {
	return ratioJSON{
		Fraction:    r.String(),
		Mixed:       r.LocaleString(),
		Numerator:   r.Numerator(),
		Denominator: r.Denominator(),
		Value:       ratiox.FormatNumber(r.Float64()),
	}
}

// display formats r for text output
func display(r ratiox.Ratio) string {
	if cfg.Format.Mixed {
		return r.LocaleString()
	}
	return r.String()
}

// render writes text or, with --output json, v as indented JSON
func render(cmd *cobra.Command, text string, v interface{}) error {
	out := cmd.OutOrStdout()
	if cfg.General.Output == config.OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

// parseOperand reads one command line value with the configured separator
// and reduce flag.
func parseOperand(text string) (ratiox.Ratio, error) {
	r := ratiox.New().
		WithAlwaysReduce(cfg.Format.AlwaysReduce).
		WithSeparator(cfg.Format.Separator)
	if err := r.UnmarshalText([]byte(text)); err != nil {
		return ratiox.Ratio{}, err
	}

	logger.Debug("operand parsed",
		zap.String("input", text),
		zap.Stringer("ratio", r),
	)
	return r, nil
}

// parseValue reads "<value> [denominator]" the way ratiox.Parse combines
// two operands.
func parseValue(args []string) (ratiox.Ratio, error) {
	r, err := parseOperand(args[0])
	if err != nil {
		return ratiox.Ratio{}, err
	}
	if len(args) < 2 {
		return r, nil
	}

	d, err := parseOperand(args[1])
	if err != nil {
		return ratiox.Ratio{}, err
	}
	if d.Float64() == 0 {
		return ratiox.Ratio{}, divisionByZero(args[0] + " / " + args[1])
	}
	return r.Divide(d), nil
}

func divisionByZero(expr string) error {
	return mdwerror.Newf("division by zero: %s", expr).
		WithCode(mdwerror.CodeDivisionByZero).
		WithOperation("calc").
		WithDetail("module", mdwerrors.ModuleCLI).
		WithDetail("expression", expr)
}

// parseNumber reads a plain finite number such as a denominator or exponent
func parseNumber(text string) (float64, error) {
	r, err := ratiox.ParseStrict(text)
	if err != nil {
		return 0, err
	}
	return r.Float64(), nil
}
