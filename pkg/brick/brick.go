// Package brick defines the primitive value types shared across the
// conversion pipeline: brick shapes, rotations, LDraw color codes, and the
// placed Primitive that the output serializer consumes.
//
// All types in this package are immutable values. A Primitive is created
// once by the conversion engine and never modified; the merge optimizer
// replaces primitives rather than mutating them.
package brick

import "fmt"

// LDraw base units. One stud is 20 LDU across, one brick is 24 LDU tall,
// and one plate is a third of a brick.
const (
	StudLDU   = 20
	BrickLDU  = 24
	PlateLDU  = 8
	HalfBrick = BrickLDU / 2
)

// ColorID is an LDraw color code (e.g. 15 = white, 71 = light bluish gray).
type ColorID int

// ColorUnknown is the fallback color for block types with no mapping.
// Light bluish gray reads as "generic plastic" in most viewers.
const ColorUnknown ColorID = 7

// Rotation is a quarter-turn rotation about the vertical axis.
type Rotation uint8

// The four rotations a brick can take on the stud grid.
const (
	Deg0 Rotation = iota
	Deg90
	Deg180
	Deg270
)

// String returns the rotation in degrees, e.g. "90°".
func (r Rotation) String() string {
	return [...]string{"0°", "90°", "180°", "270°"}[r&3]
}

// Kind enumerates the closed set of shapes the engine can emit. Every kind
// is handled exhaustively by the classifier, the geometry resolver, and the
// serializer; adding a kind requires touching all three.
type Kind uint8

const (
	// Cube is a full-footprint, full-layer-height brick. The only kind
	// eligible for merging.
	Cube Kind = iota

	// Slope is a 1x1 cheese-slope used for stairs at standard scale.
	Slope

	// Plate is a third-height piece used for slabs, carpet, and the
	// best-effort rendering of decorative blocks.
	Plate

	// StepLower is the full-footprint half of a double-scale stair.
	StepLower

	// StepUpper is the half-height, half-footprint tread of a
	// double-scale stair, offset to the facing edge.
	StepUpper

	// Wide is a merged rectangular brick; width and depth live on Shape.
	Wide
)

// String returns the kind name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Slope:
		return "slope"
	case Plate:
		return "plate"
	case StepLower:
		return "step-lower"
	case StepUpper:
		return "step-upper"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is a shape kind plus, for Wide, its footprint in stud units.
// W runs across the scan axis (at most 2), D along it (at most 8).
type Shape struct {
	Kind Kind
	W, D int
}

// WideBrick returns the Wide shape with the given footprint in studs.
func WideBrick(w, d int) Shape { return Shape{Kind: Wide, W: w, D: d} }

// String renders the shape for diagnostics, e.g. "wide(2x4)".
func (s Shape) String() string {
	if s.Kind == Wide {
		return fmt.Sprintf("wide(%dx%d)", s.W, s.D)
	}
	return s.Kind.String()
}

// Footprint returns the shape's footprint in stud units for the given scale
// (1 or 2). Non-wide footprints depend on scale: a Cube covers one stud per
// axis at standard scale and two at double scale.
func (s Shape) Footprint(scale int) (w, d int) {
	switch s.Kind {
	case Wide:
		return s.W, s.D
	case StepUpper:
		return 2, 1
	default:
		return scale, scale
	}
}

// HeightLDU returns the shape's height in LDU. A full brick is 24, a plate
// 8, and a StepUpper tread half a brick.
func (s Shape) HeightLDU() int {
	switch s.Kind {
	case Plate:
		return PlateLDU
	case StepUpper:
		return HalfBrick
	default:
		return BrickLDU
	}
}

// Primitive is one placed, colored brick in LDraw output space. Position is
// the reference point handed to the serializer: the top-center of the
// occupied extent for single-cell shapes, and the first (lowest-coordinate)
// merged cell for Wide shapes.
type Primitive struct {
	Shape Shape
	X     float64 // studs axis, LDU
	Y     float64 // vertical axis, LDU, increasing downward
	Z     float64 // studs axis, LDU
	Rot   Rotation
	Color ColorID
}

// FootprintArea returns the covered area in square studs at the given scale.
func (p Primitive) FootprintArea(scale int) int {
	w, d := p.Shape.Footprint(scale)
	return w * d
}
