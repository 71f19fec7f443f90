// Package palette implements the block-to-brick lookup table: it maps a
// block spec to a shape category and an LDraw color.
//
// The table is pure data. It is built once (optionally merged with user
// overrides, see Overrides) and then only consulted; lookups never mutate
// it, so a single Table is safe to share across concurrent classification
// workers.
package palette

import (
	"strings"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// Category is the coarse shape family a block belongs to. The classifier
// switches exhaustively over it.
type Category uint8

const (
	// CategoryAir marks cells that produce no primitive at all.
	CategoryAir Category = iota

	// CategorySolid blocks fill their whole cell and merge freely.
	CategorySolid

	// CategoryStairs blocks route through the stair geometry resolver.
	CategoryStairs

	// CategorySlab blocks occupy half their cell (or all of it for the
	// double variant).
	CategorySlab

	// CategoryCarpet blocks are thin floor coverings.
	CategoryCarpet

	// CategoryDecor covers non-solid decorative blocks (torches, signs,
	// fences, ...) that have no direct brick analogue. They render as a
	// best-effort floor plate so the model keeps its visual detail.
	CategoryDecor
)

// String returns the category name.
func (c Category) String() string {
	return [...]string{"air", "solid", "stairs", "slab", "carpet", "decor"}[c]
}

// Entry is the result of a table lookup.
type Entry struct {
	Category Category
	Color    brick.ColorID

	// Known is false when the block identifier had no table entry and the
	// documented fallback (solid cube, neutral color) was applied. The
	// pipeline counts these as UnknownBlockIdentifier warnings.
	Known bool
}

// Table maps block identifiers to shape categories and colors.
type Table struct {
	colors map[string]brick.ColorID
	legacy map[int]brick.ColorID
	wool   map[int]brick.ColorID
	decor  map[string]struct{}
}

// Default returns the built-in table covering the vanilla block set.
func Default() *Table {
	return &Table{
		colors: blockColors,
		legacy: legacyColors,
		wool:   woolColors,
		decor:  decorBlocks,
	}
}

// legacyColorVariants are the legacy block IDs whose data value selects a
// wool-style color (wool, stained glass, stained clay, carpet, concrete).
var legacyColorVariants = map[int]struct{}{
	35: {}, 95: {}, 159: {}, 160: {}, 171: {}, 251: {}, 252: {},
}

// Lookup resolves a block spec to its category and color. It is total:
// unknown identifiers fall back to a solid cube in the neutral color with
// Known=false, never an error.
func (t *Table) Lookup(spec voxel.BlockSpec) Entry {
	if spec.Legacy() {
		return t.lookupLegacy(spec)
	}
	return t.lookupName(spec.Name)
}

func (t *Table) lookupLegacy(spec voxel.BlockSpec) Entry {
	if spec.LegacyID == 0 {
		return Entry{Category: CategoryAir, Known: true}
	}
	color, ok := t.legacy[spec.LegacyID]
	if !ok {
		return Entry{Category: CategorySolid, Color: brick.ColorUnknown}
	}
	if _, variant := legacyColorVariants[spec.LegacyID]; variant {
		if c, ok := t.wool[spec.ColorIndex]; ok {
			color = c
		}
	}
	// Legacy schematics carry no block-state properties, so stairs and
	// slabs cannot be oriented; they render as plain solid cells.
	return Entry{Category: CategorySolid, Color: color, Known: true}
}

func (t *Table) lookupName(name string) Entry {
	switch name {
	case "air", "cave_air", "void_air":
		return Entry{Category: CategoryAir, Known: true}
	}

	color, known := t.colors[name]
	if !known {
		color = brick.ColorUnknown
	}

	// Membership in the decor set counts as a known identifier even when
	// no color entry exists; the neutral color is the documented rendering
	// for those, not a fallback.
	if _, ok := t.decor[name]; ok {
		return Entry{Category: CategoryDecor, Color: color, Known: true}
	}
	switch {
	case strings.Contains(name, "stair"):
		return Entry{Category: CategoryStairs, Color: color, Known: known}
	case strings.Contains(name, "slab"):
		return Entry{Category: CategorySlab, Color: color, Known: known}
	case strings.Contains(name, "carpet"):
		return Entry{Category: CategoryCarpet, Color: color, Known: known}
	}
	return Entry{Category: CategorySolid, Color: color, Known: known}
}
