// Package schematic decodes Minecraft schematic containers into voxel
// grids.
//
// Two container families are supported:
//
//   - Legacy ".schematic" (MCEdit, pre-1.13): numeric block IDs in a byte
//     array plus a parallel data-value array.
//   - Sponge ".schem" (WorldEdit, 1.13+): a palette of block-state strings
//     and varint-packed palette indices. Versions 1 and 2 keep the palette
//     at the root, version 3 nests it under a Blocks compound; all three
//     may additionally be wrapped in a Schematic tag.
//
// Both are NBT documents, usually gzip-compressed. NBT decoding uses
// github.com/Tnze/go-mc/nbt; decompression uses
// github.com/klauspost/compress/gzip.
package schematic

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"

	"github.com/brickforge/brickforge/pkg/errors"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// Format identifies the container variant a file was decoded from.
type Format string

const (
	FormatLegacy Format = "schematic" // MCEdit .schematic
	FormatSponge Format = "schem"     // Sponge/WorldEdit .schem
)

// File is a decoded schematic: the voxel grid plus container metadata.
type File struct {
	Grid   *voxel.Grid
	Format Format

	// PaletteSize is the number of distinct block states in the container
	// palette (Sponge) or the number of distinct ID/data pairs (legacy).
	PaletteSize int
}

// Load reads and decodes the schematic at path. The container family is
// chosen by file extension, matching the conventions of the tools that
// produce these files.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "schematic %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	data, err = decompress(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decompress %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".schem":
		return decodeSponge(data, path)
	default:
		return decodeLegacy(data, path)
	}
}

// decompress strips gzip framing when present. Uncompressed NBT passes
// through untouched; some exporters skip compression.
func decompress(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// legacyRoot is the MCEdit .schematic NBT layout.
type legacyRoot struct {
	Width  int16 `nbt:"Width"`
	Height int16 `nbt:"Height"`
	Length int16 `nbt:"Length"`
	Blocks []byte
	Data   []byte
}

func decodeLegacy(data []byte, path string) (*File, error) {
	var root legacyRoot
	if err := nbt.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	grid, paletteSize, err := gridFromLegacy(int(root.Width), int(root.Height), int(root.Length), root.Blocks, root.Data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	return &File{Grid: grid, Format: FormatLegacy, PaletteSize: paletteSize}, nil
}

// gridFromLegacy builds a grid from legacy ID and data-value arrays laid
// out in Y-Z-X order. The byte arrays are unsigned: IDs above 127 arrive
// correctly without the sign fixups signed-byte NBT readers need.
func gridFromLegacy(w, h, l int, blocks, dataVals []byte) (*voxel.Grid, int, error) {
	if w <= 0 || h <= 0 || l <= 0 {
		return nil, 0, fmt.Errorf("invalid dimensions %dx%dx%d", w, h, l)
	}
	if len(blocks) < w*h*l {
		return nil, 0, fmt.Errorf("block array has %d entries, need %d", len(blocks), w*h*l)
	}

	grid := voxel.NewGrid(w, h, l)
	for y := 0; y < h; y++ {
		for z := 0; z < l; z++ {
			for x := 0; x < w; x++ {
				i := (y*l+z)*w + x
				id := int(blocks[i])
				if id == 0 {
					continue
				}
				data := 0
				if i < len(dataVals) {
					data = int(dataVals[i])
				}
				grid.Set(x, y, z, voxel.LegacyBlock(id, data))
			}
		}
	}
	return grid, grid.PaletteSize(), nil
}

// spongeBlocks is the v3 nested container for palette and cell data.
type spongeBlocks struct {
	Palette map[string]int32 `nbt:"Palette"`
	Data    []byte           `nbt:"Data"`
}

// spongeRoot covers Sponge schematic v1 through v3 layouts.
type spongeRoot struct {
	Width     int16            `nbt:"Width"`
	Height    int16            `nbt:"Height"`
	Length    int16            `nbt:"Length"`
	Palette   map[string]int32 `nbt:"Palette"`
	BlockData []byte           `nbt:"BlockData"`
	Blocks    spongeBlocks     `nbt:"Blocks"`
}

// spongeWrapper handles files that nest everything under a Schematic tag.
type spongeWrapper struct {
	Schematic spongeRoot `nbt:"Schematic"`
}

func decodeSponge(data []byte, path string) (*File, error) {
	var root spongeRoot
	if err := nbt.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if !root.hasPalette() {
		var wrapped spongeWrapper
		if err := nbt.Unmarshal(data, &wrapped); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
		root = wrapped.Schematic
	}

	palette, cells := root.payload()
	if palette == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s: no palette found", path)
	}

	grid, err := gridFromSponge(int(root.Width), int(root.Height), int(root.Length), palette, cells)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	return &File{Grid: grid, Format: FormatSponge, PaletteSize: len(palette)}, nil
}

func (r *spongeRoot) hasPalette() bool {
	return len(r.Palette) > 0 || len(r.Blocks.Palette) > 0
}

// payload picks the palette and cell data out of whichever layout the file
// used: v3 nests them under Blocks, v1/v2 keep them at the root.
func (r *spongeRoot) payload() (map[string]int32, []byte) {
	if len(r.Blocks.Palette) > 0 {
		return r.Blocks.Palette, r.Blocks.Data
	}
	if len(r.Palette) > 0 {
		return r.Palette, r.BlockData
	}
	return nil, nil
}

// airNames are the block states that decode to empty cells.
var airNames = map[string]struct{}{
	"air": {}, "cave_air": {}, "void_air": {},
}

// gridFromSponge builds a grid from a block-state palette and
// varint-packed cell indices in Y-Z-X order.
func gridFromSponge(w, h, l int, palette map[string]int32, cells []byte) (*voxel.Grid, error) {
	if w <= 0 || h <= 0 || l <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%dx%d", w, h, l)
	}

	// Invert the palette and parse each block state once; specs are then
	// shared by every cell that references them.
	specs := make(map[int32]voxel.BlockSpec, len(palette))
	for state, idx := range palette {
		specs[idx] = voxel.ParseBlockState(state)
	}

	indices := decodeVarints(cells, w*h*l)
	if len(indices) < w*h*l {
		return nil, fmt.Errorf("block data has %d cells, need %d", len(indices), w*h*l)
	}

	grid := voxel.NewGrid(w, h, l)
	for y := 0; y < h; y++ {
		for z := 0; z < l; z++ {
			for x := 0; x < w; x++ {
				idx := indices[(y*l+z)*w+x]
				spec, ok := specs[int32(idx)]
				if !ok {
					// Out-of-palette index: treat as empty rather than
					// failing the whole file.
					continue
				}
				if _, air := airNames[spec.Name]; air {
					continue
				}
				grid.Set(x, y, z, spec)
			}
		}
	}
	return grid, nil
}

// decodeVarints unpacks the LEB128-style varint stream used by Sponge
// BlockData. Decoding stops at expected values or when the stream ends.
func decodeVarints(data []byte, expected int) []int {
	result := make([]int, 0, expected)
	for i := 0; i < len(data) && len(result) < expected; {
		value, shift := 0, 0
		for i < len(data) {
			b := data[i]
			i++
			value |= int(b&0x7f) << shift
			if b&0x80 == 0 {
				break
			}
			shift += 7
		}
		result = append(result, value)
	}
	return result
}
