// Package core contains the business logic for focusring: the session timer
// engine, the productivity-curve sampler, the break recommendation table,
// the in-memory task list, and configuration loading.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/flowstate-dev/focusring/pkg/models"
)

// ConfigFileName is the optional configuration file looked up in the search
// paths and written by `focusring config init`.
const ConfigFileName = ".focusring.yaml"

// ConfigurationManager defines the interface for loading and validating the
// optional .focusring.yaml configuration file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// YAML configuration files.
type viperConfigManager struct {
	// searchPaths are the directories checked for .focusring.yaml, in order.
	searchPaths []string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .focusring.yaml in the given directories.
func NewConfigurationManager(searchPaths ...string) ConfigurationManager {
	return &viperConfigManager{searchPaths: searchPaths}
}

// DefaultGlobalConfig returns a GlobalConfig populated with the defaults
// used when no configuration file exists.
func DefaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		DefaultDurationMin: 25,
		Sound:              models.SoundConfig{Enabled: true},
		Celebration:        models.CelebrationConfig{ReducedMotion: false},
		Theme: models.ThemeConfig{
			Accent: "#7D56F4",
			Dim:    "#565F89",
		},
	}
}

// LoadGlobalConfig reads .focusring.yaml from the search paths using Viper.
// If no file exists, the defaults are returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".focusring")
	v.SetConfigType("yaml")
	for _, p := range cm.searchPaths {
		v.AddConfigPath(p)
	}

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("default_duration", cfg.DefaultDurationMin)
	v.SetDefault("sound.enabled", cfg.Sound.Enabled)
	v.SetDefault("celebration.reduced_motion", cfg.Celebration.ReducedMotion)
	v.SetDefault("theme.accent", cfg.Theme.Accent)
	v.SetDefault("theme.dim", cfg.Theme.Dim)
	v.SetDefault("debug.log_file", cfg.Debug.LogFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .focusring.yaml: %w", err)
	}

	cfg.DefaultDurationMin = v.GetInt("default_duration")
	cfg.Sound.Enabled = v.GetBool("sound.enabled")
	cfg.Celebration.ReducedMotion = v.GetBool("celebration.reduced_motion")
	cfg.Theme.Accent = v.GetString("theme.accent")
	cfg.Theme.Dim = v.GetString("theme.dim")
	cfg.Debug.LogFile = v.GetString("debug.log_file")

	return cfg, nil
}

// ValidateConfig checks the configuration for invalid values and returns a
// clear error message identifying every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if !IsPresetDuration(cfg.DefaultDurationMin) {
		errs = append(errs, fmt.Sprintf(
			"default_duration %d is invalid, must be one of: %s",
			cfg.DefaultDurationMin, presetList(),
		))
	}

	if _, err := colorful.Hex(cfg.Theme.Accent); err != nil {
		errs = append(errs, fmt.Sprintf("theme.accent %q is not a valid hex color", cfg.Theme.Accent))
	}
	if _, err := colorful.Hex(cfg.Theme.Dim); err != nil {
		errs = append(errs, fmt.Sprintf("theme.dim %q is not a valid hex color", cfg.Theme.Dim))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// presetList formats the preset durations for error messages.
func presetList() string {
	parts := make([]string, len(Durations))
	for i, d := range Durations {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ", ")
}

// EncodeConfig renders cfg as the YAML document .focusring.yaml holds. The
// output round-trips through LoadGlobalConfig.
func EncodeConfig(cfg *models.GlobalConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteDefaultConfig writes a starter .focusring.yaml with the default
// settings into dir and returns its path. An existing file is never
// overwritten.
func WriteDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	data, err := EncodeConfig(DefaultGlobalConfig())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
