package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory name under the platform config root
const (
	AppDirName = "ndot-clock"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// ConfigDir returns the app's configuration directory without creating it.
// Falls back to ~/.config when the platform config root cannot be resolved.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to resolve config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppDirName), nil
}

// EnsureConfigDir returns the app's configuration directory, creating it if
// it does not exist
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
