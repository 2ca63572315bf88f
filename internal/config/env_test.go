package config

import (
	"os"
	"testing"
)

// clearEnv unsets the option variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ALCOCALC_LOG_LEVEL",
		"ALCOCALC_LANG",
		"ALCOCALC_WINDOW_WIDTH",
		"ALCOCALC_WINDOW_HEIGHT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadOptions_Defaults(t *testing.T) {
	clearEnv(t)

	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts != DefaultOptions() {
		t.Errorf("LoadOptions() = %+v, expected %+v", opts, DefaultOptions())
	}
}

func TestLoadOptions_FromEnv(t *testing.T) {
	t.Setenv("ALCOCALC_LOG_LEVEL", "debug")
	t.Setenv("ALCOCALC_LANG", "pt")
	t.Setenv("ALCOCALC_WINDOW_WIDTH", "500")
	t.Setenv("ALCOCALC_WINDOW_HEIGHT", "100")

	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got %s", opts.LogLevel)
	}
	if opts.Language != "pt" {
		t.Errorf("Expected language 'pt', got %s", opts.Language)
	}
	if opts.WindowWidth != 500 {
		t.Errorf("Expected width 500, got %v", opts.WindowWidth)
	}

	// Height below the minimum is raised
	if opts.WindowHeight != MinWindowHeight {
		t.Errorf("Expected height %v, got %v", MinWindowHeight, opts.WindowHeight)
	}
}

func TestLoadOptions_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALCOCALC_WINDOW_WIDTH", "wide")

	opts, err := LoadOptions()
	if err == nil {
		t.Fatal("Expected error for invalid width, got nil")
	}
	if opts != DefaultOptions() {
		t.Errorf("Expected defaults on error, got %+v", opts)
	}
}
