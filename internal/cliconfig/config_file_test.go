package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "json",
				Frames:    &trueVal,
				Strict:    &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "json",
				Frames:    true,
				Strict:    true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				LogLevel: "debug",
				Frames:   &falseVal,
			},
			changed: map[string]bool{"log-level": true, "frames": true},
			initial: Config{LogLevel: "error", Frames: true},
			expected: Config{
				LogLevel: "error", // unchanged because flag was set
				Frames:   true,
			},
		},
		{
			name:       "absent keys keep current values",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{LogLevel: "info", Output: "text", Strict: true},
			expected:   Config{LogLevel: "info", Output: "text", Strict: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
log_level = "info"
log_format = "json"
output = "json"
frames = true
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", fc.LogLevel)
	}
	if fc.LogFormat != "json" {
		t.Errorf("LogFormat = %v, want json", fc.LogFormat)
	}
	if fc.Output != "json" {
		t.Errorf("Output = %v, want json", fc.Output)
	}
	if fc.Frames == nil || *fc.Frames != true {
		t.Errorf("Frames = %v, want true", fc.Frames)
	}
	if fc.Strict != nil {
		t.Errorf("Strict = %v, want nil", *fc.Strict)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
log_level = "info"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".tenpin") {
		t.Errorf("DefaultConfigPath() = %v, should contain .tenpin", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
