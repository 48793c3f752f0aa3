package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.WindowWidth != 800 || prefs.WindowHeight != 600 {
		t.Errorf("Expected 800x600, got %dx%d", prefs.WindowWidth, prefs.WindowHeight)
	}
	if prefs.Overlay {
		t.Errorf("Expected overlay off by default")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer s.Close()

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if *prefs != *DefaultPreferences() {
		t.Errorf("Expected defaults from empty store, got %+v", prefs)
	}

	prefs.WindowWidth = 1280
	prefs.WindowHeight = 720
	prefs.Overlay = true
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}
	if prefs.LastRun.IsZero() {
		t.Errorf("Expected LastRun to be set on save")
	}

	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if got.WindowWidth != 1280 || got.WindowHeight != 720 || !got.Overlay {
		t.Errorf("Round trip mismatch: %+v", got)
	}
}

func TestPreferencesClampedToMinimum(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer s.Close()

	if err := s.SavePreferences(&Preferences{WindowWidth: 100, WindowHeight: 50}); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}
	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if got.WindowWidth != DefaultWindowWidth || got.WindowHeight != DefaultWindowHeight {
		t.Errorf("Expected clamp to minimum, got %dx%d", got.WindowWidth, got.WindowHeight)
	}
}

func TestFirstLaunch(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer s.Close()

	first, err := s.IsFirstLaunch()
	if err != nil || !first {
		t.Fatalf("Expected first launch, got %v (%v)", first, err)
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete failed: %v", err)
	}
	first, err = s.IsFirstLaunch()
	if err != nil || first {
		t.Errorf("Expected not first launch, got %v (%v)", first, err)
	}
}

func TestOpenPersists(t *testing.T) {
	dir, err := DatabaseDirIn(t.TempDir())
	if err != nil {
		t.Fatalf("DatabaseDirIn failed: %v", err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.SavePreferences(&Preferences{WindowWidth: 1024, WindowHeight: 768}); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s.Close()
	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if got.WindowWidth != 1024 || got.WindowHeight != 768 {
		t.Errorf("Expected 1024x768 after reopen, got %dx%d", got.WindowWidth, got.WindowHeight)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if filepath.Dir(dbDir) != dataDir {
		t.Errorf("Database dir %s not under %s", dbDir, dataDir)
	}
}
