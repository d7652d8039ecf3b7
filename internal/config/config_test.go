package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func resetConfig() {
	configOnce = sync.Once{}
	globalConfig = nil
	configErr = nil
}

func TestDefaultConfig(t *testing.T) {
	resetConfig()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !strings.HasSuffix(cfg.StorePath, DefaultStoreFile) {
		t.Errorf("StorePath = %q, want a path ending in %q", cfg.StorePath, DefaultStoreFile)
	}

	if cfg.DefaultPriority != DefaultDefaultPriority {
		t.Errorf("DefaultPriority = %q, want %q", cfg.DefaultPriority, DefaultDefaultPriority)
	}

	if cfg.DefaultCategory != DefaultDefaultCategory {
		t.Errorf("DefaultCategory = %q, want %q", cfg.DefaultCategory, DefaultDefaultCategory)
	}

	if cfg.Logging.MaxSize != 10 {
		t.Errorf("Logging.MaxSize = %d, want 10", cfg.Logging.MaxSize)
	}
}

func TestEnvOverrides(t *testing.T) {
	resetConfig()

	os.Setenv("TODO_STORE_PATH", "/tmp/custom-tasks.json")
	os.Setenv("TODO_DEFAULT_PRIORITY", "high")
	os.Setenv("TODO_DEFAULT_CATEGORY", "work")
	os.Setenv("TODO_LOG_LEVEL", "debug")
	os.Setenv("TODO_LOG_MAX_SIZE", "25")
	defer func() {
		os.Unsetenv("TODO_STORE_PATH")
		os.Unsetenv("TODO_DEFAULT_PRIORITY")
		os.Unsetenv("TODO_DEFAULT_CATEGORY")
		os.Unsetenv("TODO_LOG_LEVEL")
		os.Unsetenv("TODO_LOG_MAX_SIZE")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.StorePath != "/tmp/custom-tasks.json" {
		t.Errorf("StorePath = %q, want %q", cfg.StorePath, "/tmp/custom-tasks.json")
	}

	if cfg.DefaultPriority != "high" {
		t.Errorf("DefaultPriority = %q, want %q", cfg.DefaultPriority, "high")
	}

	if cfg.DefaultCategory != "work" {
		t.Errorf("DefaultCategory = %q, want %q", cfg.DefaultCategory, "work")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	if cfg.Logging.MaxSize != 25 {
		t.Errorf("Logging.MaxSize = %d, want 25", cfg.Logging.MaxSize)
	}
}

func TestWriteExample(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	err := WriteExample(path)
	if err != nil {
		t.Fatalf("WriteExample() failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read example config: %v", err)
	}
	if !strings.Contains(string(data), "default_priority") {
		t.Error("example config should mention default_priority")
	}
}

func TestWriteExampleCreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "config.yaml")

	if err := WriteExample(path); err != nil {
		t.Fatalf("WriteExample() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", path)
	}
}
