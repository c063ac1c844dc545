package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "deckd"

	// settingsFile holds runtime options; buttonsFile holds the button tree.
	settingsFile = "deckd.yaml"
	buttonsFile  = "buttons.yaml"
)

// ConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/deckd or $HOME/.config/deckd
//   - macOS: $HOME/.config/deckd
//   - Windows: %LOCALAPPDATA%\deckd
func ConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// SettingsPath returns the default path of the settings file.
func SettingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

// DefaultButtonsPath returns the default path of the button tree file.
func DefaultButtonsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, buttonsFile), nil
}
