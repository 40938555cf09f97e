package logger

import (
	"strings"

	"github.com/samber/lo"

	"github.com/kbukum/reddish/errors"
)

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}
	validFormats = []string{"json", "console", "text", FormatPretty}
	validOutputs = []string{"stdout", "stderr"}
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration. Results are
// printed on stdout, so logs default to stderr.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if !lo.Contains(validLevels, c.Level) {
		return errors.InvalidInput("logging.level", "must be one of "+strings.Join(validLevels, ", ")).
			WithDetail("got", c.Level)
	}
	if !lo.Contains(validFormats, c.Format) {
		return errors.InvalidInput("logging.format", "must be one of "+strings.Join(validFormats, ", ")).
			WithDetail("got", c.Format)
	}
	if c.Output != "" && !lo.Contains(validOutputs, c.Output) {
		return errors.InvalidInput("logging.output", "must be one of "+strings.Join(validOutputs, ", ")).
			WithDetail("got", c.Output)
	}
	return nil
}
