package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	mdwerror "github.com/msto63/ratio/foundation/core/error"
	"github.com/msto63/ratio/foundation/utils/ratiox"
	"github.com/msto63/ratio/pkg/core/config"
)

// run executes the command tree with args in an isolated environment and
// returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", dir)
	chdir(t, dir)

	resetFlags(rootCmd)
	cfg = config.Default()
	logger = zap.NewNop()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"calc", "1/2", "+", "1/3"}, "5/6"},
		{"subtract mixed and decimal", []string{"calc", "3 1/7", "-", "0.5"}, "185/70"},
		{"subtract reduced", []string{"-r", "calc", "3 1/7", "-", "0.5"}, "37/14"},
		{"multiply", []string{"calc", "2/3", "*", "3/4"}, "6/12"},
		{"multiply with x", []string{"calc", "2/3", "x", "3/4"}, "6/12"},
		{"divide", []string{"calc", "1/2", "/", "1/3"}, "3/2"},
		{"power", []string{"calc", "2/3", "^", "2"}, "4/9"},
		{"mod", []string{"calc", "22/7", "mod", "1"}, "1/7"},
		{"separator", []string{"-s", ":", "calc", "1:2", "+", "1:3"}, "5:6"},
		{"mixed output", []string{"-m", "calc", "22/7", "+", "0"}, "3 1/7"},
		{"negative operand", []string{"calc", "--", "-1/2", "+", "1/3"}, "-1/6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestCalculate(t *testing.T) {
	a, b := ratiox.New("-7/2"), ratiox.New(2)

	mod, err := calculate(a, "mod", b)
	require.NoError(t, err)
	assert.Equal(t, -1.5, mod.Float64(), "mod keeps the sign of a")

	_, err = calculate(a, "/", ratiox.New(0))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDivisionByZero))

	_, err = calculate(a, "mod", ratiox.New(0))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDivisionByZero))

	_, err = calculate(a, "%", b)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidOperation))
}

func TestErrorsAndExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code mdwerror.Code
		exit int
	}{
		{"invalid value", []string{"parse", "abc"}, mdwerror.CodeInvalidFormat, 2},
		{"zero denominator text", []string{"parse", "1/0"}, mdwerror.CodeDivisionByZero, 3},
		{"zero divisor", []string{"calc", "1", "/", "0"}, mdwerror.CodeDivisionByZero, 3},
		{"zero denominator argument", []string{"reduce", "1", "0"}, mdwerror.CodeDivisionByZero, 3},
		{"unknown operator", []string{"calc", "1", "%", "2"}, mdwerror.CodeInvalidOperation, 3},
		{"factor of one", []string{"factor", "1"}, mdwerror.CodeValueOutOfRange, 2},
		{"factor of a decimal", []string{"factor", "2.5"}, mdwerror.CodeValueOutOfRange, 2},
		{"solve without x", []string{"solve", "1/2", "10"}, mdwerror.CodeInvalidInput, 2},
		{"invalid separator", []string{"-s", "5", "parse", "1"}, mdwerror.CodeInvalidConfig, 4},
		{"missing config", []string{"--config", "/nonexistent/ratio.toml", "parse", "1"}, mdwerror.CodeMissingConfig, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.exit, ExitCode(err))
		})
	}

	_, _, err := run(t, "calc", "1")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err), "usage errors exit with 1")
	assert.Equal(t, 0, ExitCode(nil))
}

func TestPrintError(t *testing.T) {
	capture := func(t *testing.T, v bool, err error) string {
		t.Helper()
		var buf bytes.Buffer
		rootCmd.SetErr(&buf)
		verbose = v
		t.Cleanup(func() { verbose = false })
		printError(err)
		return buf.String()
	}

	low := mdwerror.New("bad fraction").WithCode(mdwerror.CodeInvalidFormat)
	assert.Equal(t, "Error: bad fraction\n", capture(t, false, low))

	plain := errors.New("accepts 3 arg(s), received 1")
	assert.Equal(t, "Error: accepts 3 arg(s), received 1\n", capture(t, true, plain))

	cause := errors.New("stat ratio.toml: no such file or directory")
	high := mdwerror.Wrap(cause, "config.load failed").WithCode(mdwerror.CodeMissingConfig)
	out := capture(t, false, high)
	assert.Contains(t, out, "Code: MISSING_CONFIG")
	assert.Contains(t, out, "Severity: high")
	assert.NotContains(t, out, "Stack:")

	out = capture(t, true, high)
	assert.Contains(t, out, "Root cause: stat ratio.toml: no such file or directory")
	assert.Contains(t, out, "Stack:")
	assert.Contains(t, out, "TestPrintError")

	out = capture(t, true, low)
	assert.Contains(t, out, "Code: INVALID_FORMAT")
	assert.NotContains(t, out, "Root cause:")
}

func TestParse(t *testing.T) {
	stdout, _, err := run(t, "parse", "0.75")
	require.NoError(t, err)

	for _, want := range []string{
		"kind:       decimal",
		"fraction:   75/100",
		"reduced:    3/4",
		"decimal:    0.75",
		"proper:     true",
	} {
		assert.Contains(t, stdout, want)
	}

	stdout, _, err = run(t, "parse", "1/2", "1/3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kind:       fraction / fraction")
	assert.Contains(t, stdout, "fraction:   3/2")
	assert.Contains(t, stdout, "mixed:      1 1/2")

	stdout, _, err = run(t, "parse", "0.5", "1/4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kind:       decimal / fraction")
	assert.Contains(t, stdout, "fraction:   20/10")

	stdout, _, err = run(t, "parse", "--", "-0.5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fraction:   -5/10")
}

func TestParseJSON(t *testing.T) {
	stdout, _, err := run(t, "-o", "json", "parse", "3 1/7")
	require.NoError(t, err)

	var res parseResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "mixed", res.Kind)
	assert.Equal(t, "22/7", res.Ratio.Fraction)
	assert.Equal(t, "3 1/7", res.Ratio.Mixed)
	assert.Equal(t, 22.0, res.Ratio.Numerator)
	assert.Equal(t, 7.0, res.Ratio.Denominator)
	assert.False(t, res.Proper)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"reduce", "22", "70"}, "11/35"},
		{[]string{"reduce", "0.75"}, "3/4"},
		{[]string{"reduce", "36/-36"}, "-1/1"},
		{[]string{"-s", ":", "reduce", "6:8"}, "3:4"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestFactor(t *testing.T) {
	stdout, _, err := run(t, "factor", "360", "97")
	require.NoError(t, err)
	assert.Equal(t, "360: 2 2 2 3 3 5\n97: 97\n", stdout)

	stdout, _, err = run(t, "-o", "json", "factor", "12")
	require.NoError(t, err)

	var res []factorResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, []factorResult{{N: 12, Factors: []float64{2, 2, 3}}}, res)
}

func TestApprox(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single denominator", []string{"approx", "0.27", "3"}, "1/3"},
		{"smallest error wins", []string{"approx", "3.14159", "7", "113"}, "355/113"},
		{"configured denominators", []string{"approx", "0.3"}, "3/10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestSolve(t *testing.T) {
	stdout, _, err := run(t, "solve", "1/2", "x/10")
	require.NoError(t, err)
	assert.Equal(t, "x = 10/2 (5)\n", stdout)

	stdout, _, err = run(t, "solve", "1/2", "10/x")
	require.NoError(t, err)
	assert.Equal(t, "x = 20/1 (20)\n", stdout)
}

func TestClean(t *testing.T) {
	stdout, _, err := run(t, "clean", "1.5/2")
	require.NoError(t, err)
	assert.Equal(t, "15/20\n", stdout)
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"terminating", []string{"decimal", "1/8"}, "0.125"},
		{"from decimal input", []string{"decimal", "0.1"}, "0.1"},
		{"repeating", []string{"decimal", "1/3"}, "0.33333333333333333333"},
		{"places", []string{"decimal", "1/7", "-p", "10"}, "0.1428571429"},
		{"half-even", []string{"decimal", "5/2", "-p", "0", "--rounding", "half-even"}, "2"},
		{"half-up", []string{"decimal", "5/2", "-p", "0", "--rounding", "half-up"}, "3"},
		{"cut terminating", []string{"decimal", "1/8", "-p", "2"}, "0.12"},
		{"two operands", []string{"decimal", "1", "4"}, "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}

	_, _, err := run(t, "decimal", "1/3", "--rounding", "nearest")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	_, _, err = run(t, "decimal", "1/3", "--places=-1")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))

	stdout, _, err := run(t, "-o", "json", "decimal", "3/40")
	require.NoError(t, err)
	var res decimalResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, decimalResult{Decimal: "0.075", Exact: true, Places: 3}, res)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ratio v")
	assert.Contains(t, stdout, "Go Version:")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratio.toml")
	content := `
[format]
separator = ":"
always_reduce = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stdout, _, err := run(t, "--config", path, "calc", "1:4", "+", "1:4")
	require.NoError(t, err)
	assert.Equal(t, "1:2\n", stdout)

	// Flags win over the file.
	stdout, _, err = run(t, "--config", path, "-r=false", "calc", "1:4", "+", "1:4")
	require.NoError(t, err)
	assert.Equal(t, "2:4\n", stdout)
}

func TestVerboseLogsToStderr(t *testing.T) {
	defer goleak.VerifyNone(t)

	stdout, stderr, err := run(t, "-v", "calc", "1/2", "+", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "5/6\n", stdout)
	assert.Contains(t, stderr, "DEBUG")
	assert.Contains(t, stderr, "operand parsed")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore Chdir: %v", err)
		}
	})
}
