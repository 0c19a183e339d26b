package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/ratio/foundation/core/error"
	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
	"github.com/msto63/ratio/pkg/core/logging"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "RATIO_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General     GeneralConfig     `toml:"general" yaml:"general"`
	Format      FormatConfig      `toml:"format" yaml:"format"`
	Approximate ApproximateConfig `toml:"approximate" yaml:"approximate"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Output    string `toml:"output" yaml:"output"`
}

// FormatConfig controls how ratios are built and printed
type FormatConfig struct {
	Separator      string `toml:"separator" yaml:"separator"`
	AlwaysReduce   bool   `toml:"always_reduce" yaml:"always_reduce"`
	Mixed          bool   `toml:"mixed" yaml:"mixed"`
	ExponentDigits int    `toml:"exponent_digits" yaml:"exponent_digits"`
}

// ApproximateConfig holds the candidate denominators of "ratio approx"
type ApproximateConfig struct {
	Denominators []float64 `toml:"denominators" yaml:"denominators"`
}

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// MaxExponentDigits bounds FormatConfig.ExponentDigits
const MaxExponentDigits = 20

// DefaultExponentDigits is used when the file does not set exponent_digits.
// Zero is a valid setting, so it is not a missing value.
const DefaultExponentDigits = 6

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := Config{Format: FormatConfig{ExponentDigits: DefaultExponentDigits}}
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerrors.ConfigError("load", path, err).
			WithCode(mdwerror.CodeMissingConfig)
	}

	// Decode over the defaults so that keys absent from the file keep them
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, mdwerrors.ConfigError("parse", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, mdwerrors.ConfigError("load", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, mdwerrors.ConfigError("parse", path, err)
		}
	default:
		return nil, mdwerrors.ConfigError("load", path, nil).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("expected", ".toml, .yaml or .yml")
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, path)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the RATIO_CONFIG environment
// variable or the first default location that exists. Without any file the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/ratio.toml",
		"./ratio.toml",
		"./ratio.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config/ratio/config.toml"),
			filepath.Join(home, ".config/ratio/config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.General.Output == "" {
		c.General.Output = OutputText
	}

	// Format
	if c.Format.Separator == "" {
		c.Format.Separator = "/"
	}

	// Approximate
	if len(c.Approximate.Denominators) == 0 {
		c.Approximate.Denominators = []float64{2, 3, 4, 5, 6, 8, 10, 12, 16, 32, 64, 100}
	}
}

// Validate checks values that the defaults cannot repair
func (c *Config) Validate() error {
	if !logging.IsValidLevel(c.General.LogLevel) {
		return mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "validate", c.General.LogLevel,
			"one of debug, info, warn, error").WithCode(mdwerror.CodeInvalidConfig)
	}
	if c.General.LogFormat != "console" && c.General.LogFormat != "json" {
		return mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "validate", c.General.LogFormat,
			"console or json").WithCode(mdwerror.CodeInvalidConfig)
	}
	if c.General.Output != OutputText && c.General.Output != OutputJSON {
		return mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "validate", c.General.Output,
			"text or json").WithCode(mdwerror.CodeInvalidConfig)
	}
	if !IsValidSeparator(c.Format.Separator) {
		return mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "validate", c.Format.Separator,
			"a single printable ASCII character that is not part of a number").WithCode(mdwerror.CodeInvalidConfig)
	}
	if c.Format.ExponentDigits < 0 || c.Format.ExponentDigits > MaxExponentDigits {
		return mdwerrors.OutOfRange(mdwerrors.ModuleConfig, "format.exponent_digits",
			c.Format.ExponentDigits, 0, MaxExponentDigits)
	}
	for _, d := range c.Approximate.Denominators {
		if d <= 0 || d != math.Trunc(d) || math.IsInf(d, 0) {
			return mdwerrors.OutOfRange(mdwerrors.ModuleConfig, "approximate.denominators",
				d, 1, "+Inf")
		}
	}
	return nil
}

// IsValidSeparator reports whether sep can separate numerator and
// denominator without being mistaken for part of a number.
func IsValidSeparator(sep string) bool {
	if len(sep) != 1 {
		return false
	}
	c := sep[0]
	if c <= ' ' || c > '~' {
		return false
	}
	return !strings.ContainsRune("0123456789+-.eE", rune(c))
}
