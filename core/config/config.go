package config

import (
	_ "embed"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	// Prompt is printed before every input line.
	Prompt string `json:"prompt" validate:"required"`
	// Banner is printed once when the shell starts.
	Banner string `json:"banner"`
	// Color controls colored error output (always|auto|never).
	Color string `json:"color" validate:"oneof=always auto never"`
	// LogLevel is the minimum level of diagnostic logs.
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Level converts LogLevel to a slog level.
func (c *Configuration) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Colorize reports whether errors should be colored given whether the output
// is a terminal.
func (c *Configuration) Colorize(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// Default returns the built-in configuration.
func Default() *Configuration {
	cfg, err := Parse(defaultConfigData)
	if err != nil {
		panic(err)
	}
	return cfg
}
