package convert

import (
	"sort"

	"github.com/brickforge/brickforge/pkg/brick"
)

// wideDepths are the available wide-brick lengths in studs, largest first.
// A contiguous run is consumed greedily with the largest length that fits,
// so a run of 5 becomes a 4 plus a leftover cube. Greedy-maximal, not
// globally optimal.
var wideDepths = [...]int{8, 6, 4, 3, 2}

// mergeKey groups merge candidates: only cubes of identical color,
// rotation, and vertical layer may combine.
type mergeKey struct {
	color brick.ColorID
	rot   brick.Rotation
	y     float64
}

// optimize merges adjacent cube primitives into wide bricks. It operates
// on an index arena with a parallel consumed mask; non-cube primitives
// pass through untouched, in their original positions in the slice.
//
// The pass is deterministic: rows are scanned in increasing Z, cells in
// increasing X, and the largest fitting size always wins. Running it on an
// already-merged set is a no-op, since wide bricks are never candidates.
//
// It returns the reduced primitive list and the number of cubes consumed.
func optimize(prims []brick.Primitive, scale int) ([]brick.Primitive, int) {
	cell := float64(scale * brick.StudLDU)

	// Index cubes by group, then by row (Z), then by X for adjacency
	// lookups when widening a run into the neighboring row.
	groups := make(map[mergeKey]map[float64][]int)
	for i, p := range prims {
		if p.Shape.Kind != brick.Cube {
			continue
		}
		k := mergeKey{color: p.Color, rot: p.Rot, y: p.Y}
		rows, ok := groups[k]
		if !ok {
			rows = make(map[float64][]int)
			groups[k] = rows
		}
		rows[p.Z] = append(rows[p.Z], i)
	}

	consumed := make([]bool, len(prims))
	replacement := make(map[int]brick.Primitive)
	merged := 0

	for _, rows := range groups {
		zs := make([]float64, 0, len(rows))
		for z := range rows {
			zs = append(zs, z)
		}
		sort.Float64s(zs)

		// X-indexed lookup per row, for pairing a run with its neighbor.
		byX := make(map[float64]map[float64]int, len(rows))
		for z, idxs := range rows {
			sort.Slice(idxs, func(a, b int) bool { return prims[idxs[a]].X < prims[idxs[b]].X })
			m := make(map[float64]int, len(idxs))
			for _, i := range idxs {
				m[prims[i].X] = i
			}
			byX[z] = m
		}

		for _, z := range zs {
			idxs := rows[z]
			for i := 0; i < len(idxs); {
				if consumed[idxs[i]] {
					i++
					continue
				}
				// Extend the contiguous run starting here.
				j := i + 1
				for j < len(idxs) && !consumed[idxs[j]] && prims[idxs[j]].X == prims[idxs[j-1]].X+cell {
					j++
				}

				pos := i
				remaining := j - i
				for remaining >= 2 {
					n := fitRun(remaining, scale)
					first := idxs[pos]
					wide := consumeRun(prims, consumed, idxs[pos:pos+n], byX[z+cell], cell, scale)
					replacement[first] = wide
					merged += wide.FootprintArea(scale) / (scale * scale)
					pos += n
					remaining -= n
				}
				i = j
			}
		}
	}

	out := make([]brick.Primitive, 0, len(prims)-merged+len(replacement))
	for i, p := range prims {
		if wide, ok := replacement[i]; ok {
			out = append(out, wide)
			continue
		}
		if consumed[i] {
			continue
		}
		out = append(out, p)
	}
	return out, merged
}

// fitRun returns how many cells of a contiguous run the largest fitting
// wide brick covers. At standard scale cells are one stud deep; at double
// scale each cell is two studs, so the 2x8 caps runs at four cells.
func fitRun(run, scale int) int {
	for _, d := range wideDepths {
		if cells := d / scale; cells >= 2 && cells <= run {
			return cells
		}
	}
	return 0
}

// consumeRun marks the run's cubes consumed, tries to widen the run into
// the adjacent row at standard scale, and returns the replacement wide
// brick positioned at the run's first member.
func consumeRun(prims []brick.Primitive, consumed []bool, run []int, nextRow map[float64]int, cell float64, scale int) brick.Primitive {
	for _, i := range run {
		consumed[i] = true
	}
	first := prims[run[0]]

	width := scale
	if scale == 1 && nextRow != nil {
		partner := make([]int, 0, len(run))
		for _, i := range run {
			pi, ok := nextRow[prims[i].X]
			if !ok || consumed[pi] {
				partner = nil
				break
			}
			partner = append(partner, pi)
		}
		if partner != nil {
			for _, pi := range partner {
				consumed[pi] = true
			}
			width = 2
		}
	}

	depth := len(run) * scale
	return brick.Primitive{
		Shape: brick.WideBrick(width, depth),
		X:     first.X,
		Y:     first.Y,
		Z:     first.Z,
		Rot:   first.Rot,
		Color: first.Color,
	}
}
