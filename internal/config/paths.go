package config

import (
	"os"
	"path/filepath"
)

// RootPath returns the root directory for ailfred data.
// It uses $AILFRED_PATH if set, otherwise defaults to ~/.ailfred.
func RootPath() string {
	if v := os.Getenv("AILFRED_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ailfred")
	}
	return filepath.Join(home, ".ailfred")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(RootPath(), "config.yaml")
}

// DataFilePath returns the default save file location.
func DataFilePath() string {
	return filepath.Join(RootPath(), "data", "tasks.txt")
}
