package config

import (
	"os"
	"path/filepath"
)

const (
	// HomeEnv is the environment variable overriding the diffsnap home directory.
	HomeEnv = "DIFFSNAP_HOME"
	// DefaultHomeDir is the default directory name under the user home.
	DefaultHomeDir = ".diffsnap"
	// LogsSubdir is the subdirectory for log files.
	LogsSubdir = "logs"
)

// Home returns the diffsnap home directory.
// It checks DIFFSNAP_HOME first, then defaults to ~/.diffsnap.
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHomeDir), nil
}

// LogsDir returns the log file directory (~/.diffsnap/logs).
func LogsDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
