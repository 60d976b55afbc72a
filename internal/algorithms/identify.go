package algorithms

import (
	"sync"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
)

var (
	casesOnce  sync.Once
	casesByKey map[uint32]*Algorithm
)

// caseCoordinates lazily computes, for each Database entry, the CMLL
// coordinate reached by applying its inverse to a solved cube: the
// state that entry's Moves is meant to solve.
func caseCoordinates() map[uint32]*Algorithm {
	casesOnce.Do(func() {
		casesByKey = make(map[uint32]*Algorithm, len(Database))
		for i := range Database {
			alg := &Database[i]
			moves, err := cube.ParseMoves(alg.Moves)
			if err != nil {
				panic("algorithms: invalid built-in move sequence for " + alg.CaseID + ": " + err.Error())
			}

			c := cube.Solved()
			c.DoMoves(cube.InverseMoves(moves))

			coord := index.CMLL.FromCube(c)
			casesByKey[coord] = alg
		}
	})
	return casesByKey
}

// IdentifyCMLL looks up which database case c's CMLL corners present.
// It assumes the first block is already solved; callers should check
// that separately if it isn't already known to be true.
func IdentifyCMLL(c cube.Cube) (*Algorithm, bool) {
	coord := index.CMLL.FromCube(c)
	alg, ok := caseCoordinates()[coord]
	return alg, ok
}
