// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v7"
)

// Config holds the settings read from the environment. Command-line flags
// take precedence over it.
type Config struct {
	LogLevel string `env:"JSAST_LOG_LEVEL" envDefault:"info"`
	Indent   string `env:"JSAST_INDENT"`
	Minify   bool   `env:"JSAST_MINIFY" envDefault:"false"`
	Jobs     int    `env:"JSAST_JOBS" envDefault:"0"`
}

// LoadConfig reads a Config from environ, or from the process environment
// if environ is nil.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	var opts env.Options
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.Parse(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Jobs < 0 {
		return Config{}, fmt.Errorf("failed to load configuration: JSAST_JOBS must not be negative, got %d", cfg.Jobs)
	}
	return cfg, nil
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, fmt.Errorf("unrecognized log level %q", levelText)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
