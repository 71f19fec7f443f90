// Package voxel models the decoded input to the conversion pipeline: a
// bounded 3D grid of typed blocks.
//
// The grid is built once by a decoder (see pkg/schematic) and is read-only
// for the duration of a conversion. Cells are stored as indices into an
// interned block palette, so grids with millions of cells but a few dozen
// distinct block states stay small.
package voxel

import (
	"fmt"
	"strings"
)

// Facing is the horizontal orientation carried by stairs and similar blocks.
type Facing string

// The four cardinal facings. North is the default when a stair block
// carries no facing property.
const (
	FacingNorth Facing = "north"
	FacingEast  Facing = "east"
	FacingSouth Facing = "south"
	FacingWest  Facing = "west"
)

// Half selects the vertical half a stair or slab occupies.
type Half string

const (
	HalfBottom Half = "bottom"
	HalfTop    Half = "top"
)

// SlabType distinguishes single slabs from the double variant that fills
// the whole block.
type SlabType string

const (
	SlabSingle SlabType = "single"
	SlabDouble SlabType = "double"
)

// BlockSpec describes one occupied cell. Exactly one of Name or LegacyID
// identifies the block: modern schematics carry block-state names
// ("oak_stairs"), legacy ones carry numeric IDs plus a data value that is
// surfaced as ColorIndex.
//
// Property fields use a fixed schema rather than an open map: every known
// property has a field with a deterministic default, and unknown properties
// from the input are dropped during parsing.
type BlockSpec struct {
	Name     string // modern block name without the "minecraft:" prefix
	LegacyID int    // legacy numeric block ID, -1 when absent

	ColorIndex int      // legacy data value / color variant, -1 when absent
	Facing     Facing   // stair orientation, defaults to north
	Half       Half     // stair/slab vertical half, defaults to bottom
	Slab       SlabType // slab variant, defaults to single

	// HasFacing records whether the input actually carried a facing
	// property, so the classifier can distinguish a real default from a
	// malformed stair block.
	HasFacing bool
}

// Legacy returns true when the block is identified by a numeric ID.
func (b BlockSpec) Legacy() bool { return b.Name == "" && b.LegacyID >= 0 }

// String renders the spec for logs, e.g. "oak_stairs[facing=east]".
func (b BlockSpec) String() string {
	if b.Legacy() {
		if b.ColorIndex >= 0 {
			return fmt.Sprintf("legacy:%d/%d", b.LegacyID, b.ColorIndex)
		}
		return fmt.Sprintf("legacy:%d", b.LegacyID)
	}
	if b.HasFacing {
		return fmt.Sprintf("%s[facing=%s]", b.Name, b.Facing)
	}
	return b.Name
}

// key returns a canonical interning key for palette deduplication.
func (b BlockSpec) key() string {
	return fmt.Sprintf("%s|%d|%d|%s|%s|%s|%t",
		b.Name, b.LegacyID, b.ColorIndex, b.Facing, b.Half, b.Slab, b.HasFacing)
}

// ParseBlockState parses a full block-state string as found in Sponge
// schematic palettes, e.g. "minecraft:oak_stairs[facing=east,half=bottom]".
// Unknown properties are ignored; missing ones take their defaults.
func ParseBlockState(state string) BlockSpec {
	name := strings.TrimPrefix(state, "minecraft:")
	spec := BlockSpec{
		LegacyID:   -1,
		ColorIndex: -1,
		Facing:     FacingNorth,
		Half:       HalfBottom,
		Slab:       SlabSingle,
	}

	idx := strings.IndexByte(name, '[')
	if idx < 0 {
		spec.Name = name
		return spec
	}
	spec.Name = name[:idx]

	props := strings.TrimSuffix(name[idx+1:], "]")
	for _, prop := range strings.Split(props, ",") {
		k, v, ok := strings.Cut(prop, "=")
		if !ok {
			continue
		}
		switch k {
		case "facing":
			switch Facing(v) {
			case FacingNorth, FacingEast, FacingSouth, FacingWest:
				spec.Facing = Facing(v)
				spec.HasFacing = true
			}
		case "half":
			if v == string(HalfTop) {
				spec.Half = HalfTop
			}
		case "type":
			switch v {
			case "double":
				spec.Slab = SlabDouble
			case "top":
				// Slabs carry type=top|bottom|double; top/bottom map
				// onto the Half field used by the geometry resolver.
				spec.Half = HalfTop
			}
		}
	}
	return spec
}

// LegacyBlock builds a BlockSpec for an old-format numeric block ID and
// data value.
func LegacyBlock(id, data int) BlockSpec {
	return BlockSpec{
		LegacyID:   id,
		ColorIndex: data,
		Facing:     FacingNorth,
		Half:       HalfBottom,
		Slab:       SlabSingle,
	}
}

// Grid is an immutable 3D block array with fixed bounds. X runs along the
// width, Y up along the height, Z along the length. Cell (0,0,0) is the
// bottom north-west corner.
type Grid struct {
	w, h, l int
	cells   []int32     // palette indices, 0 = empty
	palette []BlockSpec // palette[0] is the empty sentinel
	intern  map[string]int32
}

// NewGrid returns an empty grid with the given bounds. Bounds are fixed at
// construction; Set panics outside them (a programmer error, per the
// pipeline's precondition on grid accessors).
func NewGrid(w, h, l int) *Grid {
	if w <= 0 || h <= 0 || l <= 0 {
		panic(fmt.Sprintf("voxel: invalid grid bounds %dx%dx%d", w, h, l))
	}
	return &Grid{
		w:       w,
		h:       h,
		l:       l,
		cells:   make([]int32, w*h*l),
		palette: []BlockSpec{{}},
		intern:  map[string]int32{},
	}
}

// Bounds returns the grid dimensions (width, height, length).
func (g *Grid) Bounds() (w, h, l int) { return g.w, g.h, g.l }

// index maps a coordinate to the flat cell slice. Layout matches the
// schematic wire order: Y-major, then Z, then X.
func (g *Grid) index(x, y, z int) int {
	if x < 0 || x >= g.w || y < 0 || y >= g.h || z < 0 || z >= g.l {
		panic(fmt.Sprintf("voxel: (%d,%d,%d) out of bounds %dx%dx%d", x, y, z, g.w, g.h, g.l))
	}
	return (y*g.l+z)*g.w + x
}

// Set places a block at (x,y,z), interning the spec into the palette.
func (g *Grid) Set(x, y, z int, spec BlockSpec) {
	k := spec.key()
	idx, ok := g.intern[k]
	if !ok {
		idx = int32(len(g.palette))
		g.palette = append(g.palette, spec)
		g.intern[k] = idx
	}
	g.cells[g.index(x, y, z)] = idx
}

// Clear empties the cell at (x,y,z).
func (g *Grid) Clear(x, y, z int) {
	g.cells[g.index(x, y, z)] = 0
}

// At returns the block at (x,y,z) and whether the cell is occupied.
func (g *Grid) At(x, y, z int) (BlockSpec, bool) {
	idx := g.cells[g.index(x, y, z)]
	if idx == 0 {
		return BlockSpec{}, false
	}
	return g.palette[idx], true
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// PaletteSize returns the number of distinct block states in the grid,
// excluding the empty sentinel.
func (g *Grid) PaletteSize() int { return len(g.palette) - 1 }
