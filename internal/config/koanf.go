// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/earlylog/internal/logging"
)

// DefaultConfigPaths are searched in order when no path is given.
var DefaultConfigPaths = []string{
	"earlylog.yaml",
	"earlylog.yml",
	"/etc/earlylog/earlylog.yaml",
	"/etc/earlylog/earlylog.yml",
}

// ConfigPathEnvVar overrides the configuration file path.
const ConfigPathEnvVar = "EARLYLOG_CONFIG"

// overridePath collects handler overrides from the environment until the
// handler name is known.
const overridePath = "override"

// Load builds the configuration from defaults, the YAML file at path (or the
// first file found when path is empty) and the environment, then validates
// it. An explicit path that does not exist is an error; a missing default
// file is not.
func Load(path string) (*Config, error) {
	return LoadHandler(path, "")
}

// LoadHandler is Load with the handler selection forced to handler (when
// non-empty), ahead of LOG_HANDLER and the file. Environment overrides are
// applied to that handler's section.
func LoadHandler(path, handler string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if handler != "" {
		if err := k.Set("logging.handler", handler); err != nil {
			return nil, fmt.Errorf("failed to select handler %s: %w", handler, err)
		}
	}

	if err := applyOverrides(k); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return fromKoanf(k, configPath)
}

// LoadBytes is Load for an in-memory YAML document, without file or
// environment layers.
func LoadBytes(b []byte) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if len(b) > 0 {
		if err := k.Load(rawBytes(b), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return fromKoanf(k, "")
}

func fromKoanf(k *koanf.Koanf, path string) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.File = path
	cfg.k = k

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		_, err := os.Stat(envPath)
		if err == nil {
			return envPath
		}
		logging.Warn().
			Err(err).
			Str("path", envPath).
			Msgf("%s file not readable, searching default paths", ConfigPathEnvVar)
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyOverrides moves the handler overrides collected under overridePath
// into the selected handler section and expands LOG_LEVELS.
func applyOverrides(k *koanf.Koanf) error {
	if !k.Exists(overridePath) {
		return nil
	}
	overrides := k.Cut(overridePath)
	k.Delete(overridePath)

	if raw := overrides.String("levels"); raw != "" {
		var levels map[string]string
		if err := json.Unmarshal([]byte(raw), &levels); err != nil {
			return fmt.Errorf("LOG_LEVELS is not a JSON object of strings: %w", err)
		}
		for category, level := range levels {
			if err := k.Set("logging.levels."+category, level); err != nil {
				return fmt.Errorf("failed to set level for %s: %w", category, err)
			}
		}
		overrides.Delete("levels")
	}

	handler := HandlersPath + "." + k.String("logging.handler")
	for key, val := range overrides.All() {
		if err := k.Set(handler+"."+key, val); err != nil {
			return fmt.Errorf("failed to set %s.%s: %w", handler, key, err)
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf paths. Unmapped
// names return "" and are skipped.
//
// Examples:
//   - LOG_HANDLER -> logging.handler
//   - LOG_LEVEL_SQL -> logging.levels.sql
//   - LOG_FORMATTER -> override.formatter (moved into the handler later)
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		"log_handler":            "logging.handler",
		"log_levels":             overridePath + ".levels",
		"log_formatter":          overridePath + ".formatter",
		"log_time_format":        overridePath + ".time_format",
		"log_level_format":       overridePath + ".level_format",
		"log_single_line":        overridePath + ".single_line",
		"log_plaintext_format":   overridePath + ".plaintext.format",
		"log_json_field_map":     overridePath + ".json.field_map",
		"log_json_verbosity_map": overridePath + ".json.verbosity_map",
		"log_use_colors":         overridePath + ".use_colors",
		"earlylog_log_level":     "diagnostics.level",
		"earlylog_log_format":    "diagnostics.format",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	if category, ok := strings.CutPrefix(key, "log_level_"); ok && category != "" {
		return "logging.levels." + category
	}

	return ""
}
