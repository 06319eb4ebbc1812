// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the settings shared by the upgrade and recovery layers.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/httpexc/env"
	"github.com/stacklok/httpexc/logging"
	"github.com/stacklok/httpexc/metrics"
	"github.com/stacklok/httpexc/policy"
	"github.com/stacklok/httpexc/recovery"
	"github.com/stacklok/httpexc/upgrade"
)

// Environment variables overriding file settings.
const (
	EnvLogFormat           = "HTTPEXC_LOG_FORMAT"
	EnvLogLevel            = "HTTPEXC_LOG_LEVEL"
	EnvDeprecationWarnings = "HTTPEXC_DEPRECATION_WARNINGS"
	EnvExposeDetail        = "HTTPEXC_EXPOSE_DETAIL"
)

// RelativePath is the location of the config file below an XDG config directory.
var RelativePath = filepath.Join("httpexc", "config.yaml")

// ErrInvalidConfig is returned for configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed config.schema.json
var schema []byte

// Config holds the settings.
type Config struct {
	Logging Logging `yaml:"logging"`

	// DeprecationWarnings controls the notice logged for legacy string
	// identifiers. Nil means enabled.
	DeprecationWarnings *bool `yaml:"deprecationWarnings,omitempty"`

	// ExposeDetail is a policy rule deciding whether exception messages
	// reach the client. Empty means policy.DefaultExposeDetail.
	ExposeDetail string `yaml:"exposeDetail,omitempty"`
}

// Logging configures the logger.
type Logging struct {
	Format string `yaml:"format,omitempty"`
	Level  string `yaml:"level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging:      Logging{Format: "json", Level: "info"},
		ExposeDetail: policy.DefaultExposeDetail,
	}
}

// Parse decodes YAML data on top of Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the path of the config file in the XDG config directories.
// The boolean is false when there is none.
func Find() (string, bool) {
	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		return "", false
	}
	return path, true
}

// LoadDefault loads the XDG config file when present, falls back to
// Default otherwise, and applies environment overrides from r.
func LoadDefault(r env.Reader) (*Config, error) {
	cfg := Default()
	if path, ok := Find(); ok {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(r); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables and revalidates.
func (c *Config) ApplyEnv(r env.Reader) error {
	if v, ok := r.LookupEnv(EnvLogFormat); ok {
		c.Logging.Format = v
	}
	if v, ok := r.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := r.LookupEnv(EnvDeprecationWarnings); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvDeprecationWarnings, err)
		}
		c.DeprecationWarnings = &enabled
	}
	if v, ok := r.LookupEnv(EnvExposeDetail); ok {
		c.ExposeDetail = v
	}
	return c.Validate()
}

// Validate checks values the schema cannot express.
func (c *Config) Validate() error {
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ExposeDetail != "" {
		if err := policy.NewEngine().Check(c.ExposeDetail); err != nil {
			return fmt.Errorf("%w: exposeDetail: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// DeprecationWarningsEnabled reports whether legacy identifiers are logged.
func (c *Config) DeprecationWarningsEnabled() bool {
	return c.DeprecationWarnings == nil || *c.DeprecationWarnings
}

// Logger builds the configured logger. opts are applied after the
// configured format and level.
func (c *Config) Logger(opts ...logging.Option) (*slog.Logger, error) {
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	all := append([]logging.Option{logging.WithFormat(format), logging.WithLevel(level)}, opts...)
	return logging.New(all...), nil
}

// Upgrader builds an upgrader logging to logger and recording on m. Either
// may be nil.
func (c *Config) Upgrader(logger *slog.Logger, m *metrics.Collector) *upgrade.Upgrader {
	return upgrade.NewUpgrader(
		upgrade.WithLogger(logger),
		upgrade.WithDeprecationWarnings(c.DeprecationWarningsEnabled()),
		upgrade.WithMetrics(m),
	)
}

// ExposePredicate compiles the exposure rule.
func (c *Config) ExposePredicate() (*policy.Predicate, error) {
	rule := c.ExposeDetail
	if rule == "" {
		rule = policy.DefaultExposeDetail
	}
	p, err := policy.NewEngine().Compile(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: exposeDetail: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Middleware builds the recovery middleware from the configuration.
func (c *Config) Middleware(logger *slog.Logger, m *metrics.Collector) (func(http.Handler) http.Handler, error) {
	expose, err := c.ExposePredicate()
	if err != nil {
		return nil, err
	}
	return recovery.New(
		recovery.WithLogger(logger),
		recovery.WithUpgrader(c.Upgrader(logger, m)),
		recovery.WithExposePolicy(expose),
		recovery.WithMetrics(m),
	), nil
}

func validateSchema(raw any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
