// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides configuration loading for the adventure binary.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Front ends.
const (
	FrontendConsole = "console"
	FrontendTUI     = "tui"
	FrontendAuto    = "auto"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Log outputs with special meaning. Any other value is a file path.
const (
	OutputStderr  = "stderr"
	OutputDiscard = "discard"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the configuration of the adventure binary.
type Config struct {
	Frontend string    `koanf:"frontend"`
	Log      LogConfig `koanf:"log"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Output string `koanf:"output"`
}

// Default returns the configuration used when nothing is set.
// Logs are discarded so they never interleave with the game text.
func Default() *Config {
	return &Config{
		Frontend: FrontendAuto,
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
			Output: OutputDiscard,
		},
	}
}

// applyDefaults fills fields left empty by the file and the environment.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Frontend == "" {
		cfg.Frontend = def.Frontend
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = def.Log.Output
	}
}

// Validate checks enumerated fields. The log level is checked when the
// logger is built.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FrontendConsole, FrontendTUI, FrontendAuto}, c.Frontend) {
		return fmt.Errorf("%w: frontend %q", ErrInvalid, c.Frontend)
	}
	if !slices.Contains([]string{FormatJSON, FormatConsole}, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
