// Package tables builds and lazily caches the transition and pruning
// tables the search engine looks up during IDDFS.
package tables

import (
	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
)

// Sentinel marks a pruning-table entry that was never reached within
// the table's depth cap.
const Sentinel byte = 255

// TransitionTable maps (coordinate, generator index) to the coordinate
// reached by applying that generator once.
type TransitionTable [][7]uint32

// BuildTransitionTable decodes every coordinate of idx, applies each of
// the 7 generators once, and records the resulting coordinate.
func BuildTransitionTable(idx index.Index) TransitionTable {
	n := idx.NumElems()
	table := make(TransitionTable, n)
	for coord := uint32(0); coord < n; coord++ {
		base := idx.FromIndex(coord)
		for g, m := range cube.Generators {
			next := base
			next.DoMove(m)
			table[coord][g] = idx.FromCube(next)
		}
	}
	return table
}

// PruningTable stores, per coordinate, the minimum number of moves to
// reach the goal coordinate the table was built from, for every
// distance strictly less than depthLimit.
type PruningTable []byte

// BuildPruningTable runs a depth-capped DFS outward from goal over
// trans, visiting each of the 7 generators with multiplicity 1, 2, 3.
// depthLimit is exclusive: passing maxDepth+1 records every true
// distance 0..maxDepth, matching the original suite's
// gen_prune_table(table, max_depth, ...) convention, where the table
// walk itself runs one level deeper than max_depth. Entries never
// reached within depthLimit stay at Sentinel.
func BuildPruningTable(trans TransitionTable, depthLimit int, goal uint32) PruningTable {
	table := make(PruningTable, len(trans))
	for i := range table {
		table[i] = Sentinel
	}

	var visit func(coord uint32, depth int)
	visit = func(coord uint32, depth int) {
		if depth == depthLimit || table[coord] <= byte(depth) {
			return
		}
		table[coord] = byte(depth)
		for g := 0; g < 7; g++ {
			next := coord
			for rep := 0; rep < 3; rep++ {
				next = trans[next][g]
				visit(next, depth+1)
			}
		}
	}
	visit(goal, 0)

	return table
}
