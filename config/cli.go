package config

import (
	"time"

	"github.com/kbukum/reddish/datetime"
	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/logger"
	"github.com/kbukum/reddish/validation"
)

// Output formats for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultDateFormat is the strftime pattern used by date commands.
const DefaultDateFormat = "%Y-%m-%d %H:%M:%S"

func init() {
	err := validation.RegisterStringRule("strftime", func(pattern string) bool {
		_, err := datetime.FormatDate(time.Time{}, pattern)
		return err == nil
	})
	if err != nil {
		panic(err)
	}
}

// CLIConfig is the configuration of the reddish command.
type CLIConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	DateFormat  string        `yaml:"date_format" mapstructure:"date_format" validate:"required,strftime"`
	Output      string        `yaml:"output" mapstructure:"output" validate:"oneof=text json"`
}

// ApplyDefaults fills unset fields. Debug forces debug-level logging.
func (c *CLIConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "production"
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.Debug {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks struct tags and the logging section.
func (c *CLIConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// LoadCLIConfig loads, defaults and validates the configuration for name.
// Name falls back to the program name when the file leaves it empty.
func LoadCLIConfig(name string, opts ...LoaderOption) (*CLIConfig, error) {
	var cfg CLIConfig
	if err := LoadConfig(name, &cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err).WithDetail("config", name)
	}
	return &cfg, nil
}
