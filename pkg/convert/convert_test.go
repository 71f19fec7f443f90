package convert

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/palette"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// captureSink records emitted primitives in order.
type captureSink struct {
	prims []brick.Primitive
}

func (s *captureSink) Emit(p brick.Primitive) error {
	s.prims = append(s.prims, p)
	return nil
}

func testRunner() *Runner {
	return NewRunner(palette.Default(), log.New(io.Discard))
}

func execute(t *testing.T, grid *voxel.Grid, opts Options) (*Result, []brick.Primitive) {
	t.Helper()
	sink := &captureSink{}
	result, err := testRunner().Execute(context.Background(), grid, sink, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return result, sink.prims
}

func TestSingleStoneVoxelStandard(t *testing.T) {
	grid := voxel.NewGrid(1, 1, 1)
	grid.Set(0, 0, 0, voxel.ParseBlockState("minecraft:stone"))

	result, prims := execute(t, grid, Options{Scale: ScaleStandard})

	if len(prims) != 1 {
		t.Fatalf("got %d primitives, want 1", len(prims))
	}
	p := prims[0]
	if p.Shape.Kind != brick.Cube {
		t.Errorf("shape = %s, want cube", p.Shape)
	}
	if p.X != -10 || p.Y != 0 || p.Z != -10 {
		t.Errorf("position = (%v,%v,%v), want (-10,0,-10)", p.X, p.Y, p.Z)
	}
	if p.Color != 71 {
		t.Errorf("color = %d, want 71 (stone)", p.Color)
	}
	if result.Stats.Voxels != 1 || result.Stats.Primitives != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestEmptyGrid(t *testing.T) {
	grid := voxel.NewGrid(4, 4, 4)
	result, prims := execute(t, grid, Options{})
	if len(prims) != 0 {
		t.Errorf("got %d primitives, want 0", len(prims))
	}
	if result.Stats.Voxels != 0 {
		t.Errorf("voxels = %d, want 0", result.Stats.Voxels)
	}
}

func TestWoolRowMerges(t *testing.T) {
	grid := voxel.NewGrid(4, 1, 1)
	wool := voxel.ParseBlockState("minecraft:red_wool")
	for x := 0; x < 4; x++ {
		grid.Set(x, 0, 0, wool)
	}

	result, prims := execute(t, grid, Options{Optimize: true})

	if len(prims) != 1 {
		t.Fatalf("got %d primitives, want 1 merged brick", len(prims))
	}
	p := prims[0]
	if p.Shape != brick.WideBrick(1, 4) {
		t.Errorf("shape = %s, want wide(1x4)", p.Shape)
	}
	// Positioned at the run's first (lowest X) member.
	if p.X != -40 || p.Z != -10 {
		t.Errorf("position = (%v,%v), want (-40,-10)", p.X, p.Z)
	}
	if p.Color != 4 {
		t.Errorf("color = %d, want 4 (red)", p.Color)
	}
	if result.Stats.Merged != 4 {
		t.Errorf("merged = %d, want 4", result.Stats.Merged)
	}
}

func TestRunOfFiveLeavesRemainder(t *testing.T) {
	grid := voxel.NewGrid(5, 1, 1)
	wool := voxel.ParseBlockState("minecraft:blue_wool")
	for x := 0; x < 5; x++ {
		grid.Set(x, 0, 0, wool)
	}

	_, prims := execute(t, grid, Options{Optimize: true})

	// Largest fitting size is 4, leaving one cube that cannot merge alone.
	if len(prims) != 2 {
		t.Fatalf("got %d primitives, want 2", len(prims))
	}
	kinds := map[brick.Kind]int{}
	for _, p := range prims {
		kinds[p.Shape.Kind]++
	}
	if kinds[brick.Wide] != 1 || kinds[brick.Cube] != 1 {
		t.Errorf("shapes = %v, want one wide and one cube", kinds)
	}
}

func TestPatchWidensToTwo(t *testing.T) {
	grid := voxel.NewGrid(4, 1, 2)
	wool := voxel.ParseBlockState("minecraft:white_wool")
	for z := 0; z < 2; z++ {
		for x := 0; x < 4; x++ {
			grid.Set(x, 0, z, wool)
		}
	}

	_, prims := execute(t, grid, Options{Optimize: true})

	if len(prims) != 1 {
		t.Fatalf("got %d primitives, want 1", len(prims))
	}
	if prims[0].Shape != brick.WideBrick(2, 4) {
		t.Errorf("shape = %s, want wide(2x4)", prims[0].Shape)
	}
}

func TestDoubleScaleRowMerges(t *testing.T) {
	grid := voxel.NewGrid(4, 1, 1)
	stone := voxel.ParseBlockState("minecraft:stone")
	for x := 0; x < 4; x++ {
		grid.Set(x, 0, 0, stone)
	}

	_, prims := execute(t, grid, Options{Scale: ScaleDouble, Optimize: true})

	// Each voxel spans two studs and two layers: four voxels become one
	// 2x8 per layer.
	if len(prims) != 2 {
		t.Fatalf("got %d primitives, want 2", len(prims))
	}
	for _, p := range prims {
		if p.Shape != brick.WideBrick(2, 8) {
			t.Errorf("shape = %s, want wide(2x8)", p.Shape)
		}
	}
}

// cellVolume is the output volume of one voxel cell in stud-area x LDU.
func cellVolume(scale int) int {
	return scale * scale * scale * brick.BrickLDU
}

func primitiveVolume(prims []brick.Primitive, scale int) int {
	total := 0
	for _, p := range prims {
		total += p.FootprintArea(scale) * p.Shape.HeightLDU()
	}
	return total
}

func TestVolumeConservation(t *testing.T) {
	grid := voxel.NewGrid(5, 3, 4)
	stone := voxel.ParseBlockState("minecraft:stone")
	wool := voxel.ParseBlockState("minecraft:lime_wool")
	occupied := 0
	for y := 0; y < 3; y++ {
		for z := 0; z < 4; z++ {
			for x := 0; x < 5; x++ {
				if (x+y+z)%3 == 0 {
					continue
				}
				if (x+z)%2 == 0 {
					grid.Set(x, y, z, stone)
				} else {
					grid.Set(x, y, z, wool)
				}
				occupied++
			}
		}
	}

	for _, scale := range []ScaleMode{ScaleStandard, ScaleDouble} {
		for _, optimize := range []bool{false, true} {
			_, prims := execute(t, grid, Options{Scale: scale, Optimize: optimize})
			got := primitiveVolume(prims, scale.Factor())
			want := occupied * cellVolume(scale.Factor())
			if got != want {
				t.Errorf("scale=%s optimize=%v: volume = %d, want %d", scale, optimize, got, want)
			}
		}
	}
}

func TestMergeIdempotence(t *testing.T) {
	grid := voxel.NewGrid(6, 2, 3)
	stone := voxel.ParseBlockState("minecraft:stone")
	for y := 0; y < 2; y++ {
		for z := 0; z < 3; z++ {
			for x := 0; x < 6; x++ {
				if (x*z+y)%4 != 1 {
					grid.Set(x, y, z, stone)
				}
			}
		}
	}

	_, prims := execute(t, grid, Options{Optimize: true})

	again, merged := optimize(prims, 1)
	if merged != 0 {
		t.Errorf("second pass merged %d cubes, want 0", merged)
	}
	if len(again) != len(prims) {
		t.Fatalf("second pass changed count: %d -> %d", len(prims), len(again))
	}
	for i := range prims {
		if again[i] != prims[i] {
			t.Errorf("primitive %d changed: %+v -> %+v", i, prims[i], again[i])
		}
	}
}

func TestMergePreservesColorAndArea(t *testing.T) {
	grid := voxel.NewGrid(8, 1, 2)
	red := voxel.ParseBlockState("minecraft:red_wool")
	blue := voxel.ParseBlockState("minecraft:blue_wool")
	for x := 0; x < 8; x++ {
		grid.Set(x, 0, 0, red)
		if x < 5 {
			grid.Set(x, 0, 1, blue)
		}
	}

	_, plain := execute(t, grid, Options{})
	_, merged := execute(t, grid, Options{Optimize: true})

	areas := func(prims []brick.Primitive) map[brick.ColorID]int {
		m := map[brick.ColorID]int{}
		for _, p := range prims {
			m[p.Color] += p.FootprintArea(1)
		}
		return m
	}
	before, after := areas(plain), areas(merged)
	if len(before) != len(after) {
		t.Fatalf("color sets differ: %v vs %v", before, after)
	}
	for c, a := range before {
		if after[c] != a {
			t.Errorf("color %d area = %d, want %d", c, after[c], a)
		}
	}
	if len(merged) >= len(plain) {
		t.Errorf("merging did not reduce count: %d -> %d", len(plain), len(merged))
	}
}

func TestRotationBijection(t *testing.T) {
	facings := []voxel.Facing{voxel.FacingNorth, voxel.FacingEast, voxel.FacingSouth, voxel.FacingWest}
	seen := map[brick.Rotation]voxel.Facing{}
	for _, f := range facings {
		rot := rotationFor(f)
		if prev, dup := seen[rot]; dup {
			t.Errorf("facings %s and %s both map to %s", prev, f, rot)
		}
		seen[rot] = f
	}
	if len(seen) != 4 {
		t.Errorf("got %d distinct rotations, want 4", len(seen))
	}
}

func TestDoubleModeHeightSplit(t *testing.T) {
	grid := voxel.NewGrid(1, 1, 1)
	grid.Set(0, 0, 0, voxel.ParseBlockState("minecraft:stone"))

	_, prims := execute(t, grid, Options{Scale: ScaleDouble})

	if len(prims) != 2 {
		t.Fatalf("got %d primitives, want 2", len(prims))
	}
	// The two layers tile the 48-LDU cell exactly: tops at 0 and 24, each
	// a full brick tall.
	ys := []float64{prims[0].Y, prims[1].Y}
	if !(ys[0] == 24 && ys[1] == 0) && !(ys[0] == 0 && ys[1] == 24) {
		t.Errorf("layer tops = %v, want {0, 24}", ys)
	}
	for _, p := range prims {
		if p.Shape.Kind != brick.Cube || p.Shape.HeightLDU() != brick.BrickLDU {
			t.Errorf("layer = %s height %d, want full-height cube", p.Shape, p.Shape.HeightLDU())
		}
	}
}

func TestStairLShapeAllCombinations(t *testing.T) {
	facings := []voxel.Facing{voxel.FacingNorth, voxel.FacingEast, voxel.FacingSouth, voxel.FacingWest}
	halves := []voxel.Half{voxel.HalfBottom, voxel.HalfTop}

	for _, facing := range facings {
		for _, half := range halves {
			t.Run(string(facing)+"/"+string(half), func(t *testing.T) {
				grid := voxel.NewGrid(1, 1, 1)
				state := "minecraft:oak_stairs[facing=" + string(facing) + ",half=" + string(half) + "]"
				grid.Set(0, 0, 0, voxel.ParseBlockState(state))

				_, prims := execute(t, grid, Options{Scale: ScaleDouble})

				if len(prims) != 2 {
					t.Fatalf("got %d primitives, want 2", len(prims))
				}
				var full, step *brick.Primitive
				for i := range prims {
					switch prims[i].Shape.Kind {
					case brick.StepLower:
						full = &prims[i]
					case brick.StepUpper:
						step = &prims[i]
					}
				}
				if full == nil || step == nil {
					t.Fatalf("want exactly one full piece and one stepped piece, got %v", prims)
				}

				// The tread footprint is a strict subset of the full
				// piece's column.
				fw, fd := full.Shape.Footprint(2)
				sw, sd := step.Shape.Footprint(2)
				if sw*sd >= fw*fd {
					t.Errorf("step footprint %dx%d not smaller than full %dx%d", sw, sd, fw, fd)
				}

				// Layer roles swap for ceiling stairs.
				if half == voxel.HalfBottom {
					if full.Y != 24 || step.Y != 12 {
						t.Errorf("bottom stair layers: full=%v step=%v, want 24/12", full.Y, step.Y)
					}
				} else {
					if full.Y != 0 || step.Y != 24 {
						t.Errorf("top stair layers: full=%v step=%v, want 0/24", full.Y, step.Y)
					}
				}

				// The tread hugs the facing edge.
				dx, dz := step.X-full.X, step.Z-full.Z
				wantDX, wantDZ := stepOffset(facing)
				if dx != wantDX || dz != wantDZ {
					t.Errorf("step offset = (%v,%v), want (%v,%v)", dx, dz, wantDX, wantDZ)
				}

				if full.Rot != step.Rot || full.Rot != rotationFor(facing) {
					t.Errorf("rotations = %s/%s, want %s", full.Rot, step.Rot, rotationFor(facing))
				}
			})
		}
	}
}

func TestStandardStairIsSlope(t *testing.T) {
	for _, half := range []voxel.Half{voxel.HalfBottom, voxel.HalfTop} {
		grid := voxel.NewGrid(1, 1, 1)
		state := "minecraft:oak_stairs[facing=east,half=" + string(half) + "]"
		grid.Set(0, 0, 0, voxel.ParseBlockState(state))

		_, prims := execute(t, grid, Options{Scale: ScaleStandard})

		// Ceiling stairs are not distinguished at this scale; both halves
		// render the same slope.
		if len(prims) != 1 || prims[0].Shape.Kind != brick.Slope {
			t.Fatalf("half=%s: got %v, want one slope", half, prims)
		}
		if prims[0].Rot != brick.Deg90 {
			t.Errorf("half=%s: rotation = %s, want 90°", half, prims[0].Rot)
		}
	}
}

func TestSlabPlacementStandard(t *testing.T) {
	tests := []struct {
		state string
		kind  brick.Kind
		y     float64
	}{
		{"minecraft:stone_slab", brick.Plate, 16},
		{"minecraft:stone_slab[type=top]", brick.Plate, 0},
		{"minecraft:stone_slab[type=double]", brick.Cube, 0},
		{"minecraft:red_carpet", brick.Plate, 16},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			grid := voxel.NewGrid(1, 1, 1)
			grid.Set(0, 0, 0, voxel.ParseBlockState(tt.state))

			_, prims := execute(t, grid, Options{Scale: ScaleStandard})

			if len(prims) != 1 {
				t.Fatalf("got %d primitives, want 1", len(prims))
			}
			if prims[0].Shape.Kind != tt.kind || prims[0].Y != tt.y {
				t.Errorf("got %s at y=%v, want %s at y=%v", prims[0].Shape, prims[0].Y, tt.kind, tt.y)
			}
		})
	}
}

func TestSlabDoubleScaleHalfCell(t *testing.T) {
	grid := voxel.NewGrid(1, 1, 1)
	grid.Set(0, 0, 0, voxel.ParseBlockState("minecraft:stone_slab"))

	_, prims := execute(t, grid, Options{Scale: ScaleDouble})

	// A single slab fills exactly the lower half of the 48-LDU cell.
	if len(prims) != 1 {
		t.Fatalf("got %d primitives, want 1", len(prims))
	}
	p := prims[0]
	if p.Shape.Kind != brick.Cube || p.Y != 24 {
		t.Errorf("got %s at y=%v, want cube at y=24", p.Shape, p.Y)
	}
}

func TestCarpetAndDecorFloorPlateDouble(t *testing.T) {
	for _, state := range []string{"minecraft:red_carpet", "minecraft:torch", "minecraft:oak_fence"} {
		grid := voxel.NewGrid(1, 1, 1)
		grid.Set(0, 0, 0, voxel.ParseBlockState(state))

		result, prims := execute(t, grid, Options{Scale: ScaleDouble})

		if len(prims) != 1 || prims[0].Shape.Kind != brick.Plate {
			t.Fatalf("%s: got %v, want one plate", state, prims)
		}
		if prims[0].Y != 40 {
			t.Errorf("%s: y = %v, want 40 (cell floor)", state, prims[0].Y)
		}
		if result.Stats.UnknownBlocks != 0 {
			t.Errorf("%s: unknown = %d, want 0", state, result.Stats.UnknownBlocks)
		}
	}
}

func TestUnknownBlockFallsBack(t *testing.T) {
	grid := voxel.NewGrid(2, 1, 1)
	grid.Set(0, 0, 0, voxel.ParseBlockState("minecraft:some_modded_block"))
	grid.Set(1, 0, 0, voxel.ParseBlockState("minecraft:some_modded_block"))

	result, prims := execute(t, grid, Options{})

	if len(prims) != 2 {
		t.Fatalf("got %d primitives, want 2 (never silently dropped)", len(prims))
	}
	for _, p := range prims {
		if p.Shape.Kind != brick.Cube || p.Color != brick.ColorUnknown {
			t.Errorf("fallback = %s color %d", p.Shape, p.Color)
		}
	}
	if result.Stats.UnknownBlocks != 2 {
		t.Errorf("unknown count = %d, want 2", result.Stats.UnknownBlocks)
	}
	if result.UnknownIdentifiers["some_modded_block"] != 2 {
		t.Errorf("identifier report = %v", result.UnknownIdentifiers)
	}
}

func TestStairMissingFacingUsesDefault(t *testing.T) {
	grid := voxel.NewGrid(1, 1, 1)
	grid.Set(0, 0, 0, voxel.ParseBlockState("minecraft:oak_stairs"))

	result, prims := execute(t, grid, Options{})

	if len(prims) != 1 || prims[0].Rot != brick.Deg0 {
		t.Fatalf("got %v, want one north-facing slope", prims)
	}
	if result.Stats.MalformedBlocks != 1 {
		t.Errorf("malformed count = %d, want 1", result.Stats.MalformedBlocks)
	}
}

func TestEmitOrderIsBottomUp(t *testing.T) {
	grid := voxel.NewGrid(2, 3, 2)
	stone := voxel.ParseBlockState("minecraft:stone")
	for y := 0; y < 3; y++ {
		grid.Set(0, y, 0, stone)
		grid.Set(1, y, 1, stone)
	}

	_, prims := execute(t, grid, Options{})

	for i := 1; i < len(prims); i++ {
		a, b := prims[i-1], prims[i]
		if a.Y < b.Y {
			t.Fatalf("emit order not bottom-up at %d: y=%v then y=%v", i, a.Y, b.Y)
		}
		if a.Y == b.Y && (a.Z > b.Z || (a.Z == b.Z && a.X > b.X)) {
			t.Fatalf("emit order not stable within layer at %d", i)
		}
	}
}

func TestClassificationIsParallelSafe(t *testing.T) {
	grid := voxel.NewGrid(8, 16, 8)
	stone := voxel.ParseBlockState("minecraft:stone")
	for y := 0; y < 16; y++ {
		for z := 0; z < 8; z++ {
			for x := 0; x < 8; x++ {
				if (x+y+z)%2 == 0 {
					grid.Set(x, y, z, stone)
				}
			}
		}
	}

	_, serial := execute(t, grid, Options{Workers: 1})
	_, parallel := execute(t, grid, Options{Workers: 8})

	if len(serial) != len(parallel) {
		t.Fatalf("counts differ: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("primitive %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
	}
}

func TestInvalidScaleRejected(t *testing.T) {
	grid := voxel.NewGrid(1, 1, 1)
	sink := &captureSink{}
	_, err := testRunner().Execute(context.Background(), grid, sink, Options{Scale: "triple"})
	if err == nil {
		t.Fatal("invalid scale should be rejected")
	}
}

func TestCancelledContext(t *testing.T) {
	grid := voxel.NewGrid(2, 2, 2)
	grid.Set(0, 0, 0, voxel.ParseBlockState("minecraft:stone"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &captureSink{}
	if _, err := testRunner().Execute(ctx, grid, sink, Options{}); err == nil {
		t.Fatal("cancelled context should abort the run")
	}
}
