package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/pkg/palette"
	"github.com/brickforge/brickforge/pkg/schematic"
)

// inspectCommand creates the inspect command: decode a schematic and
// report its contents without converting anything.
func (c *CLI) inspectCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "inspect <schematic>",
		Short: "Decode a schematic and report its contents",
		Long: `Decode a schematic file and print its dimensions, occupancy, and block
composition, without writing any output.

Examples:
  brickforge inspect castle.schem
  brickforge inspect castle.schematic --top 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], top)
		},
	}

	cmd.Flags().IntVar(&top, "top", 15, "number of block types to list")

	return cmd
}

func runInspect(input string, top int) error {
	file, err := schematic.Load(input)
	if err != nil {
		return err
	}
	grid := file.Grid
	w, h, l := grid.Bounds()

	printInfo("%s", StyleTitle.Render(input))
	printKeyValue("format", string(file.Format))
	printKeyValue("size", fmt.Sprintf("%d × %d × %d", w, h, l))
	printKeyValue("voxels", fmt.Sprintf("%d occupied of %d", grid.Occupied(), w*h*l))
	printKeyValue("block types", fmt.Sprintf("%d", grid.PaletteSize()))

	counts := make(map[string]int)
	table := palette.Default()
	unknown := 0
	for y := 0; y < h; y++ {
		for z := 0; z < l; z++ {
			for x := 0; x < w; x++ {
				spec, ok := grid.At(x, y, z)
				if !ok {
					continue
				}
				counts[spec.String()]++
				if entry := table.Lookup(spec); !entry.Known {
					unknown++
				}
			}
		}
	}

	type blockCount struct {
		name  string
		count int
	}
	sorted := make([]blockCount, 0, len(counts))
	for name, n := range counts {
		sorted = append(sorted, blockCount{name, n})
	}
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].count != sorted[b].count {
			return sorted[a].count > sorted[b].count
		}
		return sorted[a].name < sorted[b].name
	})

	fmt.Println()
	printInfo("composition")
	shown := sorted
	if top > 0 && len(shown) > top {
		shown = shown[:top]
	}
	for _, bc := range shown {
		printKeyValue(fmt.Sprintf("%d", bc.count), bc.name)
	}
	if rest := len(sorted) - len(shown); rest > 0 {
		fmt.Println("  " + StyleDim.Render(fmt.Sprintf("… and %d more block types", rest)))
	}
	if unknown > 0 {
		printWarning("%d cells would fall back to the neutral color", unknown)
	}
	return nil
}
