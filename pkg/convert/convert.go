// Package convert implements the block geometry and optimization engine:
// the classify → resolve → transform → merge pipeline that turns a voxel
// grid into placed brick primitives.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Classify: map every occupied voxel to 1-2 placed primitives using
//     the palette table and the scale-mode geometry rules.
//  2. Optimize: greedily merge adjacent identical cubes into wide bricks
//     (only when requested).
//  3. Assemble: sort the final primitives into a stable bottom-up order
//     and hand them to the output sink one at a time.
//
// Classification is per-voxel independent and runs layer-parallel; the
// merge pass always runs as a single deterministic pass over the complete
// primitive list afterward.
//
// # Usage
//
//	runner := convert.NewRunner(palette.Default(), logger)
//	result, err := runner.Execute(ctx, grid, sink, convert.Options{
//	    Scale:    convert.ScaleDouble,
//	    Optimize: true,
//	})
package convert

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/errors"
	"github.com/brickforge/brickforge/pkg/palette"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// Sink receives the final primitives, one call per primitive, in the
// assembler's order. Implemented by the output serializer.
type Sink interface {
	Emit(p brick.Primitive) error
}

// Runner executes conversions against a fixed palette table. It is
// stateless apart from the table and logger; multiple goroutines can
// safely share one Runner with different options.
type Runner struct {
	Table  *palette.Table
	Logger *log.Logger
}

// NewRunner creates a runner. A nil table means the built-in palette; a
// nil logger means the default logger.
func NewRunner(table *palette.Table, logger *log.Logger) *Runner {
	if table == nil {
		table = palette.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Table: table, Logger: logger}
}

// Execute runs the complete classify → optimize → emit pipeline.
//
// The run always completes once classification starts: unknown or
// malformed blocks are recovered locally and surfaced only in the
// aggregated warning report. An empty grid is not an error and produces
// zero primitives.
func (r *Runner) Execute(ctx context.Context, grid *voxel.Grid, sink Sink, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{UnknownIdentifiers: make(map[string]int)}
	result.Stats.Voxels = grid.Occupied()

	classifyStart := time.Now()
	prims, err := r.classifyAll(ctx, grid, opts, result)
	if err != nil {
		return nil, err
	}
	result.Stats.ClassifyTime = time.Since(classifyStart)

	logger.Info("classified voxels",
		"voxels", result.Stats.Voxels,
		"primitives", len(prims),
		"scale", opts.Scale,
		"duration", result.Stats.ClassifyTime)

	if opts.Optimize {
		optimizeStart := time.Now()
		before := len(prims)
		prims, result.Stats.Merged = optimize(prims, opts.Scale.Factor())
		result.Stats.OptimizeTime = time.Since(optimizeStart)

		logger.Info("merged bricks",
			"before", before,
			"after", len(prims),
			"duration", result.Stats.OptimizeTime)
	}

	emitStart := time.Now()
	if err := assemble(prims, sink); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "emit primitives")
	}
	result.Stats.Primitives = len(prims)
	result.Stats.EmitTime = time.Since(emitStart)

	r.reportWarnings(logger, result)
	return result, nil
}

// classifyAll classifies every occupied voxel, one goroutine per vertical
// layer. Each layer writes to its own result slot, so no locking is
// needed; slots are flattened in layer order afterward so the primitive
// list is independent of scheduling.
func (r *Runner) classifyAll(ctx context.Context, grid *voxel.Grid, opts Options, result *Result) ([]brick.Primitive, error) {
	w, h, l := grid.Bounds()
	cls := newClassifier(r.Table, grid, opts.Scale)

	type layerOut struct {
		prims     []brick.Primitive
		unknown   map[string]int
		malformed int
	}
	layers := make([]layerOut, h)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for y := 0; y < h; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := &layers[y]
			for z := 0; z < l; z++ {
				for x := 0; x < w; x++ {
					spec, ok := grid.At(x, y, z)
					if !ok {
						continue
					}
					res := cls.classify(spec, x, y, z)
					out.prims = append(out.prims, res.prims...)
					if res.unknown != "" {
						if out.unknown == nil {
							out.unknown = make(map[string]int)
						}
						out.unknown[res.unknown]++
					}
					if res.malformed {
						out.malformed++
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "classify voxels")
	}

	var prims []brick.Primitive
	for _, layer := range layers {
		prims = append(prims, layer.prims...)
		result.Stats.MalformedBlocks += layer.malformed
		for id, n := range layer.unknown {
			result.UnknownIdentifiers[id] += n
			result.Stats.UnknownBlocks += n
		}
	}
	return prims, nil
}

// assemble sorts the primitives into a stable bottom-up order (largest
// output Y first, since output Y grows downward, then Z, then X) and hands
// each one to the sink exactly once.
func assemble(prims []brick.Primitive, sink Sink) error {
	sort.SliceStable(prims, func(a, b int) bool {
		if prims[a].Y != prims[b].Y {
			return prims[a].Y > prims[b].Y
		}
		if prims[a].Z != prims[b].Z {
			return prims[a].Z < prims[b].Z
		}
		return prims[a].X < prims[b].X
	})
	for _, p := range prims {
		if err := sink.Emit(p); err != nil {
			return err
		}
	}
	return nil
}

// reportWarnings emits the aggregated warning report once, at the end of
// the run.
func (r *Runner) reportWarnings(logger *log.Logger, result *Result) {
	if result.Stats.UnknownBlocks > 0 {
		logger.Warn("unmapped block identifiers rendered as neutral cubes",
			"cells", result.Stats.UnknownBlocks,
			"identifiers", len(result.UnknownIdentifiers))
		for id, n := range result.UnknownIdentifiers {
			logger.Debug("unmapped block", "identifier", id, "cells", n)
		}
	}
	if result.Stats.MalformedBlocks > 0 {
		logger.Warn("blocks with missing properties used defaults",
			"cells", result.Stats.MalformedBlocks)
	}
}
