package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"

	// envPrefix is the prefix for settings overrides, e.g.
	// DIFFSNAP_DEFAULTS_OUTPUT_FILENAME.
	envPrefix = "DIFFSNAP"
)

// settingsEnvKeys lists every overridable settings leaf. A key maps to
// its env var by upper-casing and replacing dots with underscores, e.g.
// defaults.output_filename → DIFFSNAP_DEFAULTS_OUTPUT_FILENAME.
var settingsEnvKeys = []string{
	"defaults.output_filename",
	"logging.file_enabled",
	"logging.max_size_mb",
	"logging.max_age_days",
	"logging.max_backups",
}

// SettingsLoader handles loading and saving of user settings.
type SettingsLoader struct {
	path string
}

// NewSettingsLoader creates a SettingsLoader rooted at the diffsnap home.
func NewSettingsLoader() (*SettingsLoader, error) {
	home, err := Home()
	if err != nil {
		return nil, fmt.Errorf("failed to determine diffsnap home: %w", err)
	}
	return &SettingsLoader{
		path: filepath.Join(home, SettingsFileName),
	}, nil
}

// NewSettingsLoaderAt creates a SettingsLoader for an explicit file path.
// Used by tests to avoid touching the real home directory.
func NewSettingsLoaderAt(path string) *SettingsLoader {
	return &SettingsLoader{path: path}
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists checks if the settings file exists.
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads the settings file through viper so DIFFSNAP_* environment
// variables override file values. A missing file yields default settings.
func (l *SettingsLoader) Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Viper only honors env overrides during Unmarshal for keys it knows
	// about, so every settings leaf is bound explicitly.
	for _, key := range settingsEnvKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env key %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return settings, nil
}

// Save writes the settings to the file, creating the parent directory
// if needed.
func (l *SettingsLoader) Save(s *Settings) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// EnsureExists creates the settings file with the commented default
// template if it doesn't exist. Returns true if the file was created.
func (l *SettingsLoader) EnsureExists() (bool, error) {
	if l.Exists() {
		return false, nil
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(l.path, []byte(DefaultSettingsYAML), 0644); err != nil {
		return false, fmt.Errorf("failed to write settings file: %w", err)
	}

	return true, nil
}
