// seehuhn.de/go/report - evidence reports in PDF format
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the report service.
//
// Settings are read from a YAML file, then overridden by environment
// variables, then validated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/report/evidence"
)

// Environment variables which override the configuration file.
const (
	EnvDeterministic  = "REPORT_DETERMINISTIC"
	EnvStyleVersion   = "REPORT_STYLE_VERSION"
	EnvFixedTimestamp = "REPORT_FIXED_TIMESTAMP"
	EnvWatermark      = "REPORT_WATERMARK"
)

// Config holds the settings for rendering evidence reports.
type Config struct {
	StyleVersion   string    `yaml:"style_version" validate:"oneof=v2 v3"`
	Watermark      bool      `yaml:"watermark"`
	Deterministic  bool      `yaml:"deterministic"`
	FixedTimestamp time.Time `yaml:"fixed_timestamp"`

	Brand           string  `yaml:"brand" validate:"max=80"`
	LogoSource      string  `yaml:"logo"`
	WatermarkSource string  `yaml:"watermark_logo"`
	PoweredBySource string  `yaml:"powered_by_logo"`
	LogoWidth       float64 `yaml:"logo_width" validate:"min=0,max=300"`

	MaxConcurrentRenders int           `yaml:"max_concurrent_renders" validate:"min=1,max=64"`
	FetchTimeout         time.Duration `yaml:"fetch_timeout" validate:"required"`
	MaxImageBytes        int64         `yaml:"max_image_bytes" validate:"min=1024"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		StyleVersion:         "v3",
		Brand:                evidence.DefaultBrand,
		MaxConcurrentRenders: 4,
		FetchTimeout:         10 * time.Second,
		MaxImageBytes:        4 << 20,
		LogLevel:             "info",
	}
}

// Load reads a configuration file.  Settings missing from the file keep
// their default values.  Environment overrides are applied and the result
// is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.finish()
}

// LoadOrDefault is like [Load], but uses the default configuration if path
// is empty or the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default().finish()
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default().finish()
	}
	return Load(path)
}

func (c *Config) finish() (*Config, error) {
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvStyleVersion); ok && v != "" {
		c.StyleVersion = v
	}
	if v, ok := os.LookupEnv(EnvDeterministic); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDeterministic, err)
		}
		c.Deterministic = b
	}
	if v, ok := os.LookupEnv(EnvWatermark); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWatermark, err)
		}
		c.Watermark = b
	}
	if v, ok := os.LookupEnv(EnvFixedTimestamp); ok && v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFixedTimestamp, err)
		}
		c.FixedTimestamp = t
	}
	return nil
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// ReportOptions returns the rendering options described by the
// configuration.  Branding images are not included; they are fetched
// separately.
func (c *Config) ReportOptions() *evidence.Options {
	return &evidence.Options{
		StyleVersion:  c.StyleVersion,
		Watermark:     c.Watermark,
		Deterministic: c.Deterministic,
		Timestamp:     c.FixedTimestamp,
		Brand:         c.Brand,
		LogoWidth:     c.LogoWidth,
	}
}
