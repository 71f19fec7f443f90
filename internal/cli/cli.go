// Package cli implements the brickforge command-line interface.
//
// This package provides commands for converting voxel schematics into
// LDraw brick models, inspecting schematic files, and interactively
// picking a file to convert. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Run the full schematic → brick model pipeline
//   - inspect: Decode a schematic and report its contents
//   - pick: Interactively choose a schematic and convert it
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/brickforge/brickforge/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/pkg/buildinfo"
	"github.com/brickforge/brickforge/pkg/convert"
	"github.com/brickforge/brickforge/pkg/palette"
)

// appName is the application name used for directories and display.
const appName = "brickforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the on-disk
// config (if any).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = &Config{}
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Brickforge converts voxel schematics into LDraw brick models",
		Long:         `Brickforge is a CLI tool that decodes Minecraft schematic files and rebuilds them as LDraw brick models, optionally merging adjacent bricks into larger stock pieces.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a conversion runner with the user's palette overrides
// applied. An empty path means the built-in palette.
func (c *CLI) newRunner(palettePath string) (*convert.Runner, error) {
	table := palette.Default()
	if palettePath != "" {
		overrides, err := palette.LoadOverrides(palettePath)
		if err != nil {
			return nil, err
		}
		table = table.Apply(overrides)
		c.Logger.Debug("applied palette overrides", "file", palettePath, "entries", len(overrides.Colors))
	}
	return convert.NewRunner(table, c.Logger), nil
}

// configDir returns the config directory using the XDG standard
// (~/.config/brickforge/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
