// Package storage persists window preferences between runs.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "boarddraw"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/boarddraw/
// - Linux: ~/.local/share/boarddraw/
// - Windows: %APPDATA%/boarddraw/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return DatabaseDirIn(dataDir)
}

// DatabaseDirIn returns the database directory under base, creating it.
func DatabaseDirIn(base string) (string, error) {
	dbDir := filepath.Join(base, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log.Printf("Database directory: %s", dbDir)

	return dbDir, nil
}
