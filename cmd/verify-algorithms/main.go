// Command verify-algorithms checks every entry in the CMLL algorithm
// database two ways: that its inverse reproduces the case it claims to
// recognise (catching coordinate collisions between entries), and that
// its own moves are block-safe (leave the first and second blocks
// untouched when applied to a solved cube, the way a genuine
// last-layer-corner algorithm must).
package main

import (
	"fmt"
	"os"

	"github.com/jgouly/cube-solver-suite/internal/algorithms"
	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
)

func main() {
	verbose := len(os.Args) > 1 && os.Args[1] == "--verbose"

	solved := cube.Solved()
	failures := 0

	for _, alg := range algorithms.Database {
		if err := verify(alg, solved, verbose); err != nil {
			fmt.Printf("FAIL %s (%s): %v\n", alg.Name, alg.CaseID, err)
			failures++
			continue
		}
		fmt.Printf("PASS %s (%s)\n", alg.Name, alg.CaseID)
	}

	fmt.Printf("\n%d/%d algorithms verified\n", len(algorithms.Database)-failures, len(algorithms.Database))
	if failures > 0 {
		os.Exit(1)
	}
}

func verify(alg algorithms.Algorithm, solved cube.Cube, verbose bool) error {
	moves, err := cube.ParseMoves(alg.Moves)
	if err != nil {
		return fmt.Errorf("parsing moves: %w", err)
	}

	caseCube := cube.Solved()
	caseCube.DoMoves(cube.InverseMoves(moves))

	got, ok := algorithms.IdentifyCMLL(caseCube)
	if !ok {
		return fmt.Errorf("inverse does not reproduce a recognised case")
	}
	if got.CaseID != alg.CaseID {
		return fmt.Errorf("inverse is recognised as %s, not itself (coordinate collision)", got.CaseID)
	}

	if verbose {
		fmt.Printf("  case state:\n%s", caseCube.Display(false))
	}

	applied := cube.Solved()
	applied.DoMoves(moves)

	if index.FBEdges.FromCube(applied) != index.FBEdges.FromCube(solved) ||
		index.FBCorners.FromCube(applied) != index.FBCorners.FromCube(solved) {
		return fmt.Errorf("first block disturbed")
	}
	if index.SBEdges.FromCube(applied) != index.SBEdges.FromCube(solved) ||
		index.SBCorners.FromCube(applied) != index.SBCorners.FromCube(solved) {
		return fmt.Errorf("second block disturbed")
	}

	return nil
}
