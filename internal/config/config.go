// Package config loads fleetclean settings from a YAML file.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
)

// DefaultFileName is looked up in the working directory when no config
// file is given
const DefaultFileName = "fleetclean.yaml"

// Config is the complete application configuration
type Config struct {
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Cleaning CleaningConfig `mapstructure:"cleaning" yaml:"cleaning"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// InputConfig controls how input files are read
type InputConfig struct {
	// Sheet is the workbook sheet to read; empty means the first sheet
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// Delimiter is the CSV field separator
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"len=1"`
}

// CleaningConfig controls the cleaning stages
type CleaningConfig struct {
	// Corrections extend the built-in spelling corrections
	Corrections []Correction `mapstructure:"corrections" yaml:"corrections" validate:"dive"`
}

// Correction replaces the department token From with To
type Correction struct {
	From string `mapstructure:"from" yaml:"from" validate:"required"`
	To   string `mapstructure:"to" yaml:"to" validate:"required"`
}

// OutputConfig controls exports
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format" validate:"oneof=csv parquet xlsx"`
	Path     string `mapstructure:"path" yaml:"path"`
	Workbook string `mapstructure:"workbook" yaml:"workbook"`
	ViewsDir string `mapstructure:"views_dir" yaml:"views_dir"`
}

// LoggingConfig controls the slog logger
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter: ",",
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers DefaultConfig values on v
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("input.sheet", d.Input.Sheet)
	v.SetDefault("input.delimiter", d.Input.Delimiter)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.workbook", d.Output.Workbook)
	v.SetDefault("output.views_dir", d.Output.ViewsDir)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load reads path into v and returns the validated configuration. With an
// empty path, DefaultFileName in the working directory is used if present.
// Values already bound on v (such as command line flags) take precedence
// over the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".yaml"))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and returns the joined validation errors
func (c *Config) Validate() error {
	var errs []*errors.ValidationError

	if err := validator.New().Struct(c); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, errors.NewValidationError(
				fe.Namespace(),
				fmt.Sprint(fe.Value()),
				formatValidationError(fe),
			))
		}
	}

	// Departments are matched token by token, so a key containing a
	// space never matches.
	for i, corr := range c.Cleaning.Corrections {
		if strings.Contains(corr.From, " ") {
			errs = append(errs, errors.NewValidationError(
				fmt.Sprintf("Config.Cleaning.Corrections[%d].From", i),
				corr.From,
				"must be a single word",
			))
		}
	}

	return errors.Join(errs)
}

// CorrectionMap returns the configured corrections keyed by misspelling
func (c *Config) CorrectionMap() map[string]string {
	m := make(map[string]string, len(c.Cleaning.Corrections))
	for _, corr := range c.Cleaning.Corrections {
		m[corr.From] = corr.To
	}
	return m
}

// Comma returns the delimiter as a rune
func (c *Config) Comma() rune {
	for _, r := range c.Input.Delimiter {
		return r
	}
	return ','
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "len":
		return fmt.Sprintf("%s must be exactly %s character(s)", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
