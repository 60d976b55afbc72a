package algorithms

import (
	"testing"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
)

func TestIdentifyCMLLRoundTrip(t *testing.T) {
	solved := cube.Solved()
	fbEdgesGoal := index.FBEdges.FromCube(solved)
	fbCornersGoal := index.FBCorners.FromCube(solved)
	sbEdgesGoal := index.SBEdges.FromCube(solved)
	sbCornersGoal := index.SBCorners.FromCube(solved)

	for _, alg := range Database {
		t.Run(alg.CaseID, func(t *testing.T) {
			moves, err := cube.ParseMoves(alg.Moves)
			if err != nil {
				t.Fatalf("ParseMoves(%q): %v", alg.Moves, err)
			}

			caseCube := cube.Solved()
			caseCube.DoMoves(cube.InverseMoves(moves))

			got, ok := IdentifyCMLL(caseCube)
			if !ok {
				t.Fatalf("IdentifyCMLL did not recognise %s's own case", alg.CaseID)
			}
			if got.CaseID != alg.CaseID {
				t.Fatalf("IdentifyCMLL = %s, want %s (coordinate collision)", got.CaseID, alg.CaseID)
			}

			applied := cube.Solved()
			applied.DoMoves(moves)

			if index.FBEdges.FromCube(applied) != fbEdgesGoal || index.FBCorners.FromCube(applied) != fbCornersGoal {
				t.Error("applying Moves from solved disturbed the first block")
			}
			if index.SBEdges.FromCube(applied) != sbEdgesGoal || index.SBCorners.FromCube(applied) != sbCornersGoal {
				t.Error("applying Moves from solved disturbed the second block")
			}
		})
	}
}
