package search_test

import (
	"reflect"
	"testing"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
	"github.com/jgouly/cube-solver-suite/internal/search"
	"github.com/jgouly/cube-solver-suite/internal/tables"
)

// ufInfo is a minimal single-edge search state, used only to exercise
// the IDDFS engine end to end against the spec's minimal-UF scenario.
type ufInfo struct {
	trans tables.TransitionTable
	prune tables.PruningTable
	goal  uint32
}

func (u ufInfo) IsSolved(s uint32) bool { return s == u.goal }

func (u ufInfo) Transition(s uint32, moveIndex int) uint32 {
	return u.trans[s][moveIndex]
}

func (u ufInfo) Prune(s uint32, depthRemaining int) bool {
	return depthRemaining < int(u.prune[s])
}

func TestMinimalUFSolve(t *testing.T) {
	ufIndex := index.EdgeIndex{Pairs: []index.EdgePair{{F1: cube.U, F2: cube.F}}}
	trans := tables.BuildTransitionTable(ufIndex)
	goal := ufIndex.FromCube(cube.Solved())
	prune := tables.BuildPruningTable(trans, 2, goal)

	moves, err := cube.ParseMoves("F U' R U")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	c := cube.Solved()
	c.DoMoves(moves)

	initial := ufIndex.FromCube(c)

	info := ufInfo{trans: trans, prune: prune, goal: goal}
	solution, ok := search.IDDFS(initial, info, 2)
	if !ok {
		t.Fatal("expected a solution within depth 2")
	}

	want := []cube.Move{cube.FaceTurn(cube.U, 2), cube.SliceTurn(cube.M, 1)}
	if !reflect.DeepEqual(solution, want) {
		t.Errorf("solution = %v, want %v", solution, want)
	}

	state := initial
	for i := range solution {
		for j, gen := range cube.Generators {
			if gen.IsSameMovement(solution[i]) {
				for n := uint8(0); n < solution[i].Amount; n++ {
					state = trans[state][j]
				}
			}
		}
	}
	if state != goal {
		t.Errorf("applying solution left state %d, want goal %d", state, goal)
	}
}
