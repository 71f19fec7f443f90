package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "scale = \"double\"\noptimize = true\npalette = \"/tmp/colors.yaml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Scale != "double" || !cfg.Optimize || cfg.Palette != "/tmp/colors.yaml" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error, got %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("missing config should be zero, got %+v", cfg)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("scale = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		flag  string
		input string
		want  string
	}{
		{
			name:  "flag wins",
			cfg:   Config{OutputDir: "/models"},
			flag:  "custom.ldr",
			input: "castle.schem",
			want:  "custom.ldr",
		},
		{
			name:  "extension swapped",
			input: "dir/castle.schem",
			want:  "dir/castle.ldr",
		},
		{
			name:  "output dir from config",
			cfg:   Config{OutputDir: "/models"},
			input: "dir/castle.schematic",
			want:  "/models/castle.ldr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.outputPath(tt.flag, tt.input); got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.flag, tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	oldXdg := os.Getenv("XDG_CONFIG_HOME")
	os.Unsetenv("XDG_CONFIG_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CONFIG_HOME", oldXdg)
		}
	}()

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("configDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("configDir() = %q, should end with %q", dir, appName)
	}
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if dir != filepath.Join("/xdg/config", appName) {
		t.Errorf("configDir() = %q", dir)
	}
}
