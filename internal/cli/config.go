package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/brickforge/brickforge/pkg/errors"
)

// Config holds user defaults read from ~/.config/brickforge/config.toml.
// Command-line flags beat config values, which beat built-in defaults.
//
//	scale = "double"
//	optimize = true
//	palette = "/home/me/colors.yaml"
//	output_dir = "/home/me/models"
type Config struct {
	Scale     string `toml:"scale"`
	Optimize  bool   `toml:"optimize"`
	Palette   string `toml:"palette"`
	OutputDir string `toml:"output_dir"`
}

// loadConfig reads the config file. A missing file is not an error and
// yields the zero config.
func loadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return &Config{}, nil
	}
	return loadConfigFile(filepath.Join(dir, "config.toml"))
}

func loadConfigFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}
	return &cfg, nil
}

// outputPath derives the output file path: an explicit flag wins, then the
// configured output directory with the input's base name, then the input
// path with its extension swapped for .ldr.
func (cfg *Config) outputPath(flag, input string) string {
	if flag != "" {
		return flag
	}
	base := input[:len(input)-len(filepath.Ext(input))] + ".ldr"
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, filepath.Base(base))
	}
	return base
}
