package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/pkg/convert"
	"github.com/brickforge/brickforge/pkg/errors"
	"github.com/brickforge/brickforge/pkg/ldraw"
	"github.com/brickforge/brickforge/pkg/schematic"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output   string // output file path (derived from input if empty)
	scale    string // scale mode: "standard" or "double"
	optimize bool   // merge adjacent bricks into larger pieces
	palette  string // palette override file (YAML)
	workers  int    // classification concurrency (0 = one per CPU)
}

// newConvertOpts seeds the flag defaults from the config file, so flags
// beat config beats built-ins.
func (c *CLI) newConvertOpts() convertOpts {
	opts := convertOpts{
		scale:   string(convert.DefaultScale),
		palette: c.Config.Palette,
	}
	if c.Config.Scale != "" {
		opts.scale = c.Config.Scale
	}
	opts.optimize = c.Config.Optimize
	return opts
}

// convertCommand creates the convert command: the full decode → classify →
// merge → serialize pipeline.
func (c *CLI) convertCommand() *cobra.Command {
	opts := c.newConvertOpts()

	cmd := &cobra.Command{
		Use:   "convert <schematic>",
		Short: "Convert a schematic into an LDraw brick model",
		Long: `Convert a Minecraft schematic file (.schematic or .schem) into an LDraw
model (.ldr) that can be opened in any LDraw viewer.

Examples:
  brickforge convert castle.schem                    # castle.ldr next to the input
  brickforge convert castle.schem -o model.ldr       # explicit output
  brickforge convert castle.schem --scale double     # 2x bricks, richer stairs
  brickforge convert castle.schem --optimize         # merge runs into wide bricks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runConvert(ctx, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (input name with .ldr if empty)")
	cmd.Flags().StringVar(&opts.scale, "scale", opts.scale, "scale mode: standard (1x) or double (2x)")
	cmd.Flags().BoolVar(&opts.optimize, "optimize", opts.optimize, "merge adjacent identical bricks")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "palette override file (YAML)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "classification workers (0 = one per CPU)")

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, input string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.palette)
	if err != nil {
		return err
	}

	file, err := schematic.Load(input)
	if err != nil {
		return err
	}
	w, h, l := file.Grid.Bounds()
	logger.Debug("decoded schematic",
		"format", file.Format,
		"bounds", fmt.Sprintf("%dx%dx%d", w, h, l),
		"occupied", file.Grid.Occupied())

	output := c.Config.outputPath(opts.output, input)
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "create output directory %s", dir)
		}
	}
	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", output)
	}
	defer out.Close()

	mode := convert.ScaleMode(opts.scale)
	writer := ldraw.NewWriter(out, mode)
	name := filepath.Base(output)
	if err := writer.WriteHeader(name); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Converting "+filepath.Base(input)+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, file.Grid, writer, convert.Options{
		Scale:    mode,
		Optimize: opts.optimize,
		Workers:  opts.workers,
		Logger:   logger,
	})
	if err != nil {
		spinner.StopWithError("Conversion failed")
		return err
	}
	if err := writer.Close(); err != nil {
		spinner.StopWithError("Conversion failed")
		return err
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Converted %d voxels into %d bricks", result.Stats.Voxels, result.Stats.Primitives))
	printSuccess("Wrote %s", name)
	printFile(output)
	printStats(result.Stats.Voxels, result.Stats.Primitives, result.Stats.Merged)
	if result.Stats.UnknownBlocks > 0 {
		printWarning("%d cells used unmapped block types (run with -v for details)", result.Stats.UnknownBlocks)
	}
	if result.Stats.MalformedBlocks > 0 {
		printWarning("%d cells were missing properties and used defaults", result.Stats.MalformedBlocks)
	}
	return nil
}
