package convert

import (
	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/palette"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// classifier turns one occupied voxel into its placed primitives. It is
// stateless apart from read-only configuration, so a single classifier is
// shared by all concurrent layer workers.
type classifier struct {
	table   *palette.Table
	scale   int
	w, h, l int
}

func newClassifier(table *palette.Table, grid *voxel.Grid, mode ScaleMode) *classifier {
	w, h, l := grid.Bounds()
	return &classifier{table: table, scale: mode.Factor(), w: w, h: h, l: l}
}

// cellResult is the outcome of classifying one voxel: its primitives plus
// any locally-recovered warning.
type cellResult struct {
	prims []brick.Primitive

	// unknown holds the block identifier when the table had no entry for
	// it and the neutral-cube fallback was applied.
	unknown string

	// malformed is set when a property was missing and a documented
	// default was substituted (a stair without facing renders north).
	malformed bool
}

// classify maps one voxel to 1-2 placed primitives. It is total: every
// occupied voxel yields at least one primitive.
func (c *classifier) classify(spec voxel.BlockSpec, x, y, z int) cellResult {
	entry := c.table.Lookup(spec)

	var res cellResult
	if !entry.Known {
		res.unknown = spec.String()
	}

	switch entry.Category {
	case palette.CategoryAir:
		return res
	case palette.CategoryStairs:
		if !spec.HasFacing {
			res.malformed = true
		}
		res.prims = c.stair(spec, entry.Color, x, y, z)
	case palette.CategorySlab:
		res.prims = c.slab(spec, entry.Color, x, y, z)
	case palette.CategoryCarpet:
		res.prims = c.floorPlate(entry.Color, x, y, z)
	case palette.CategoryDecor:
		// Best-effort floor plate keeps the visual detail of a block that
		// has no direct brick analogue, rather than dropping it.
		res.prims = c.floorPlate(entry.Color, x, y, z)
	default:
		res.prims = c.cubes(entry.Color, x, y, z)
	}
	return res
}

// origin returns the output-space reference point of the voxel's cell: the
// horizontal center and the vertical top of the cell's extent. The vertical
// axis is inverted because the output format treats increasing Y as
// downward.
func (c *classifier) origin(x, y, z int) (fx, fy, fz float64) {
	s := float64(c.scale)
	fx = (float64(x) - float64(c.w)/2) * brick.StudLDU * s
	fy = -float64(y) * brick.BrickLDU * s
	fz = (float64(z) - float64(c.l)/2) * brick.StudLDU * s
	return fx, fy, fz
}

// rotationFor maps a facing to its output rotation. The mapping is a fixed
// bijective lookup over the four cardinal directions.
func rotationFor(f voxel.Facing) brick.Rotation {
	switch f {
	case voxel.FacingEast:
		return brick.Deg90
	case voxel.FacingSouth:
		return brick.Deg180
	case voxel.FacingWest:
		return brick.Deg270
	default:
		return brick.Deg0
	}
}

// stepOffset returns the horizontal nudge that pushes a stair tread
// against the cell edge the stair faces, in LDU at double scale (half a
// cell along the facing axis). North is negative Z.
func stepOffset(f voxel.Facing) (dx, dz float64) {
	switch f {
	case voxel.FacingSouth:
		return 0, 10
	case voxel.FacingEast:
		return 10, 0
	case voxel.FacingWest:
		return -10, 0
	default:
		return 0, -10
	}
}

// cubes fills the voxel's whole cell. Standard scale needs a single brick;
// double scale stacks two full-footprint bricks, one per vertical layer.
func (c *classifier) cubes(color brick.ColorID, x, y, z int) []brick.Primitive {
	fx, fy, fz := c.origin(x, y, z)
	cube := brick.Primitive{Shape: brick.Shape{Kind: brick.Cube}, X: fx, Y: fy, Z: fz, Color: color}
	if c.scale == 1 {
		return []brick.Primitive{cube}
	}
	lower := cube
	lower.Y += brick.BrickLDU
	return []brick.Primitive{cube, lower}
}

// stair resolves stair geometry for the active scale.
//
// Standard scale renders a single slope; the half=top (ceiling) variant is
// not distinguished and renders the same as half=bottom, a documented
// fidelity gap of the 1x1 slope piece.
//
// Double scale builds the L: a full-footprint StepLower on one layer and a
// half-height StepUpper tread on the other, pushed to the facing edge.
// Exactly one of the two pieces is ever the stepped shape.
func (c *classifier) stair(spec voxel.BlockSpec, color brick.ColorID, x, y, z int) []brick.Primitive {
	fx, fy, fz := c.origin(x, y, z)
	rot := rotationFor(spec.Facing)

	if c.scale == 1 {
		return []brick.Primitive{{
			Shape: brick.Shape{Kind: brick.Slope},
			X:     fx, Y: fy, Z: fz,
			Rot: rot, Color: color,
		}}
	}

	dx, dz := stepOffset(spec.Facing)
	full := brick.Primitive{Shape: brick.Shape{Kind: brick.StepLower}, X: fx, Z: fz, Rot: rot, Color: color}
	step := brick.Primitive{Shape: brick.Shape{Kind: brick.StepUpper}, X: fx + dx, Z: fz + dz, Rot: rot, Color: color}

	if spec.Half == voxel.HalfTop {
		// Ceiling stair: the full piece hangs on the upper layer and the
		// tread drops into the top of the lower layer.
		full.Y = fy
		step.Y = fy + brick.BrickLDU
	} else {
		full.Y = fy + brick.BrickLDU
		step.Y = fy + brick.HalfBrick
	}
	return []brick.Primitive{full, step}
}

// slab resolves slab geometry. A double slab fills the whole cell like any
// solid block. A single slab is a third-height plate at standard scale and
// a half-cell cube at double scale, giving the exact 1:2 height ratio.
func (c *classifier) slab(spec voxel.BlockSpec, color brick.ColorID, x, y, z int) []brick.Primitive {
	if spec.Slab == voxel.SlabDouble {
		return c.cubes(color, x, y, z)
	}
	fx, fy, fz := c.origin(x, y, z)

	if c.scale == 1 {
		p := brick.Primitive{Shape: brick.Shape{Kind: brick.Plate}, X: fx, Z: fz, Color: color}
		if spec.Half == voxel.HalfTop {
			p.Y = fy
		} else {
			p.Y = fy + brick.BrickLDU - brick.PlateLDU
		}
		return []brick.Primitive{p}
	}

	p := brick.Primitive{Shape: brick.Shape{Kind: brick.Cube}, X: fx, Z: fz, Color: color}
	if spec.Half == voxel.HalfTop {
		p.Y = fy
	} else {
		p.Y = fy + brick.BrickLDU
	}
	return []brick.Primitive{p}
}

// floorPlate places a thin plate on the cell floor; used for carpet and
// for the best-effort rendering of decorative blocks.
func (c *classifier) floorPlate(color brick.ColorID, x, y, z int) []brick.Primitive {
	fx, fy, fz := c.origin(x, y, z)
	return []brick.Primitive{{
		Shape: brick.Shape{Kind: brick.Plate},
		X:     fx,
		Y:     fy + float64(c.scale)*brick.BrickLDU - brick.PlateLDU,
		Z:     fz,
		Color: color,
	}}
}
