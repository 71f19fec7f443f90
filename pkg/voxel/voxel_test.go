package voxel

import "testing"

func TestParseBlockState(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  BlockSpec
	}{
		{
			name:  "bare name",
			state: "minecraft:stone",
			want:  BlockSpec{Name: "stone", LegacyID: -1, ColorIndex: -1, Facing: FacingNorth, Half: HalfBottom, Slab: SlabSingle},
		},
		{
			name:  "no namespace prefix",
			state: "stone",
			want:  BlockSpec{Name: "stone", LegacyID: -1, ColorIndex: -1, Facing: FacingNorth, Half: HalfBottom, Slab: SlabSingle},
		},
		{
			name:  "stair with facing and half",
			state: "minecraft:oak_stairs[facing=east,half=top]",
			want:  BlockSpec{Name: "oak_stairs", LegacyID: -1, ColorIndex: -1, Facing: FacingEast, Half: HalfTop, Slab: SlabSingle, HasFacing: true},
		},
		{
			name:  "double slab",
			state: "minecraft:stone_slab[type=double]",
			want:  BlockSpec{Name: "stone_slab", LegacyID: -1, ColorIndex: -1, Facing: FacingNorth, Half: HalfBottom, Slab: SlabDouble},
		},
		{
			name:  "top slab maps type onto half",
			state: "minecraft:stone_slab[type=top]",
			want:  BlockSpec{Name: "stone_slab", LegacyID: -1, ColorIndex: -1, Facing: FacingNorth, Half: HalfTop, Slab: SlabSingle},
		},
		{
			name:  "unknown properties ignored",
			state: "minecraft:oak_stairs[facing=south,waterlogged=true,shape=straight]",
			want:  BlockSpec{Name: "oak_stairs", LegacyID: -1, ColorIndex: -1, Facing: FacingSouth, Half: HalfBottom, Slab: SlabSingle, HasFacing: true},
		},
		{
			name:  "invalid facing keeps default without HasFacing",
			state: "minecraft:oak_stairs[facing=up]",
			want:  BlockSpec{Name: "oak_stairs", LegacyID: -1, ColorIndex: -1, Facing: FacingNorth, Half: HalfBottom, Slab: SlabSingle},
		},
		{
			name:  "malformed property skipped",
			state: "minecraft:oak_stairs[facing]",
			want:  BlockSpec{Name: "oak_stairs", LegacyID: -1, ColorIndex: -1, Facing: FacingNorth, Half: HalfBottom, Slab: SlabSingle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBlockState(tt.state); got != tt.want {
				t.Errorf("ParseBlockState(%q) = %+v, want %+v", tt.state, got, tt.want)
			}
		})
	}
}

func TestBlockSpecString(t *testing.T) {
	tests := []struct {
		spec BlockSpec
		want string
	}{
		{ParseBlockState("minecraft:stone"), "stone"},
		{ParseBlockState("minecraft:oak_stairs[facing=east]"), "oak_stairs[facing=east]"},
		{LegacyBlock(35, 14), "legacy:35/14"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLegacyBlock(t *testing.T) {
	spec := LegacyBlock(35, 14)
	if !spec.Legacy() {
		t.Error("LegacyBlock should report Legacy()")
	}
	if spec.LegacyID != 35 || spec.ColorIndex != 14 {
		t.Errorf("spec = %+v", spec)
	}
	if ParseBlockState("minecraft:stone").Legacy() {
		t.Error("named block should not report Legacy()")
	}
}

func TestGridSetAtClear(t *testing.T) {
	g := NewGrid(3, 2, 4)
	if w, h, l := g.Bounds(); w != 3 || h != 2 || l != 4 {
		t.Fatalf("bounds = %dx%dx%d", w, h, l)
	}

	stone := ParseBlockState("minecraft:stone")
	g.Set(2, 1, 3, stone)
	g.Set(0, 0, 0, stone)

	spec, ok := g.At(2, 1, 3)
	if !ok || spec.Name != "stone" {
		t.Errorf("At(2,1,3) = %v %v", spec, ok)
	}
	if _, ok := g.At(1, 0, 0); ok {
		t.Error("unset cell should be empty")
	}
	if g.Occupied() != 2 {
		t.Errorf("occupied = %d, want 2", g.Occupied())
	}

	g.Clear(0, 0, 0)
	if _, ok := g.At(0, 0, 0); ok {
		t.Error("cleared cell should be empty")
	}
	if g.Occupied() != 1 {
		t.Errorf("occupied after clear = %d, want 1", g.Occupied())
	}
}

func TestGridPaletteInterning(t *testing.T) {
	g := NewGrid(4, 1, 1)
	stone := ParseBlockState("minecraft:stone")
	dirt := ParseBlockState("minecraft:dirt")
	g.Set(0, 0, 0, stone)
	g.Set(1, 0, 0, stone)
	g.Set(2, 0, 0, dirt)
	g.Set(3, 0, 0, stone)

	if g.PaletteSize() != 2 {
		t.Errorf("palette size = %d, want 2", g.PaletteSize())
	}
}

func TestGridPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}

	mustPanic("zero bounds", func() { NewGrid(0, 1, 1) })
	mustPanic("negative bounds", func() { NewGrid(2, -1, 2) })
	mustPanic("out of bounds access", func() {
		g := NewGrid(2, 2, 2)
		g.At(2, 0, 0)
	})
	mustPanic("out of bounds set", func() {
		g := NewGrid(2, 2, 2)
		g.Set(0, 0, -1, BlockSpec{Name: "stone"})
	})
}
