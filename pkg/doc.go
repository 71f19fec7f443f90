// Package pkg provides the core libraries for Brickforge schematic conversion.
//
// # Overview
//
// Brickforge converts Minecraft schematic files into LDraw brick models. The
// pkg directory is organized around the stages of that conversion:
//
//  1. [schematic] - Decoding .schematic and .schem files into voxel grids
//  2. [voxel] - The voxel grid and block-state model
//  3. [palette] - Block identifier to brick color and category mapping
//  4. [convert] - Classification, merge optimization, and assembly
//  5. [brick] - Brick primitive types shared across the pipeline
//  6. [ldraw] - LDraw model output
//
// # Architecture
//
// The typical data flow through Brickforge:
//
//	.schem / .schematic file
//	         ↓
//	    [schematic] package (decompress + decode NBT)
//	         ↓
//	    [voxel] grid with interned block states
//	         ↓
//	    [convert] runner (classify → optimize → assemble)
//	         ↓
//	    [ldraw] writer (.ldr output)
//
// # Quick Start
//
// Convert a schematic to an LDraw file:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/brickforge/brickforge/pkg/convert"
//	    "github.com/brickforge/brickforge/pkg/ldraw"
//	    "github.com/brickforge/brickforge/pkg/schematic"
//	)
//
//	file, err := schematic.Load("castle.schem")
//	if err != nil {
//	    return err
//	}
//	out, err := os.Create("castle.ldr")
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	writer := ldraw.NewWriter(out, convert.ScaleStandard)
//	if err := writer.WriteHeader("castle"); err != nil {
//	    return err
//	}
//
//	runner := convert.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), file.Grid, writer, convert.Options{
//	    Optimize: true,
//	})
//	if err != nil {
//	    return err
//	}
//	_ = result // stats: voxels, primitives, merge savings
//
//	return writer.Close()
package pkg
