package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "reflections"

// DataDir returns the per-OS directory that holds the journal data.
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", appName)
	default: // Primarily Linux, but also other UNIX-like systems.
		return filepath.Join(homeDir, ".local", "share", appName)
	}
}

// DefaultDataPath returns the default journal file for a storage backend:
// journal.db for sqlite, journal.json otherwise.
func DefaultDataPath(backend string) string {
	name := "journal.json"
	if backend == "sqlite" {
		name = "journal.db"
	}
	return filepath.Join(DataDir(), name)
}

// DefaultConfigPath returns the optional YAML config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || runtime.GOOS != "windows" {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", appName+".yaml")
		}
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, appName, "config.yaml")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory to expand path '%s': %w", path, err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// ResolveAndEnsurePath expands and absolutizes path, creating its parent
// directory when missing. ":memory:" is returned unchanged.
func ResolveAndEnsurePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}

	targetPath, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for '%s': %w", targetPath, err)
	}

	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to stat directory '%s': %w", dir, err)
	}

	return absPath, nil
}
