package ldraw

import (
	"github.com/brickforge/brickforge/pkg/brick"
)

// Stock part numbers for the single-cell shapes, by scale factor.
const (
	partBrick1x1 = "3005.dat"
	partBrick2x2 = "3003.dat"
	partPlate1x1 = "3024.dat"
	partPlate2x2 = "3022.dat"
	partSlope1x1 = "54200.dat"

	// partStepTread stands in for the half-height stair tread. No stock
	// part is exactly half a brick tall at a 1x2 footprint; the 1x2 plate
	// is the nearest match and keeps the step silhouette readable.
	partStepTread = "3023.dat"
)

// wideParts maps a merged brick's normalized footprint (small side first)
// to its stock part. These are the discrete sizes the merge optimizer is
// allowed to produce.
var wideParts = map[[2]int]string{
	{1, 2}: "3004.dat",
	{1, 3}: "3622.dat",
	{1, 4}: "3010.dat",
	{1, 6}: "3009.dat",
	{1, 8}: "3008.dat",
	{2, 2}: "3003.dat",
	{2, 3}: "3002.dat",
	{2, 4}: "3001.dat",
	{2, 6}: "2456.dat",
	{2, 8}: "3007.dat",
}

// rotations are the four permitted orientation matrices, row-major, about
// the vertical axis.
var rotations = map[brick.Rotation]string{
	brick.Deg0:   "1 0 0 0 1 0 0 0 1",
	brick.Deg90:  "0 0 -1 0 1 0 1 0 0",
	brick.Deg180: "-1 0 0 0 1 0 0 0 -1",
	brick.Deg270: "0 0 1 0 1 0 -1 0 0",
}

// partFor resolves a shape to its part file at the given scale factor.
// The second return is false for a footprint outside the catalog.
func partFor(shape brick.Shape, scale int) (string, bool) {
	switch shape.Kind {
	case brick.Cube:
		if scale == 2 {
			return partBrick2x2, true
		}
		return partBrick1x1, true
	case brick.Plate:
		if scale == 2 {
			return partPlate2x2, true
		}
		return partPlate1x1, true
	case brick.Slope:
		return partSlope1x1, true
	case brick.StepLower:
		return partBrick2x2, true
	case brick.StepUpper:
		return partStepTread, true
	case brick.Wide:
		w, d := shape.W, shape.D
		if w > d {
			w, d = d, w
		}
		part, ok := wideParts[[2]int{w, d}]
		return part, ok
	}
	return "", false
}
