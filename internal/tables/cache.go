package tables

import (
	"sync"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
)

// CMLLMaxDepth bounds the CMLL pruning table, matching the original
// suite's gen_prune_table(table, 7, CMLL.from_cube(&solved)) call.
const CMLLMaxDepth = 7

// FBMaxDepth bounds the first-block pruning tables. The original suite
// does not ship a first-block pruning table (FBInfo is absent from its
// checked-in roux/src/first_block.rs), so this is set to the solve
// depth ceiling used by the first-block search itself, which keeps the
// tables admissible for every depth the search can try.
const FBMaxDepth = 10

type lazyIndexTables struct {
	once  sync.Once
	trans TransitionTable
	prune PruningTable
}

func (l *lazyIndexTables) build(idx index.Index, maxDepth int) (TransitionTable, PruningTable) {
	l.once.Do(func() {
		l.trans = BuildTransitionTable(idx)
		goal := idx.FromCube(cube.Solved())
		// BuildPruningTable's depth bound is exclusive: +1 so every true
		// distance 0..maxDepth gets recorded instead of 0..maxDepth-1.
		l.prune = BuildPruningTable(l.trans, maxDepth+1, goal)
	})
	return l.trans, l.prune
}

var (
	fbEdges   lazyIndexTables
	fbCorners lazyIndexTables
	cmll      lazyIndexTables
)

// FBEdges returns the first-block edge transition and pruning tables,
// building them on first call and reusing them for the life of the
// process thereafter.
func FBEdges() (TransitionTable, PruningTable) {
	return fbEdges.build(index.FBEdges, FBMaxDepth)
}

// FBCorners returns the first-block corner transition and pruning
// tables, built lazily like FBEdges.
func FBCorners() (TransitionTable, PruningTable) {
	return fbCorners.build(index.FBCorners, FBMaxDepth)
}

// CMLL returns the CMLL corner transition and pruning tables, built
// lazily like FBEdges.
func CMLL() (TransitionTable, PruningTable) {
	return cmll.build(index.CMLL, CMLLMaxDepth)
}
