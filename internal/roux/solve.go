package roux

import (
	"sort"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/search"
)

// solveDepthCeiling bounds the first-block IDDFS per orientation.
const solveDepthCeiling = 10

// Solution is one first-block solve result.
type Solution struct {
	// Moves is the orientation prefix, optional X realignment, and
	// solution moves, whitespace-joined.
	Moves string
	// Len is the number of moves in the solution proper, excluding the
	// orientation prefix and any X realignment.
	Len int
	// DL names the EdgePos whose DLOrientations entry this solution was
	// searched from, before any X realignment.
	DL string
}

// SolveFirstBlock parses scramble, applies it to a solved cube, then
// searches for a first block at each of the 24 DL-edge orientations
// except those with their bit set in skipMask. For each orientation it
// tries 0, 1, 2, and 3 applications of X before searching, keeping the
// shortest solution found. Orientations with no solution within
// solveDepthCeiling are omitted. Results are ordered by ascending Len;
// results of equal Len keep EdgePos order.
func SolveFirstBlock(scramble string, skipMask uint32) ([]Solution, error) {
	moves, err := cube.ParseMoves(scramble)
	if err != nil {
		return nil, err
	}

	base := cube.Solved()
	base.DoMoves(moves)

	info := NewFBInfo()
	var solutions []Solution

	for o := 0; o < 24; o++ {
		if skipMask&(1<<uint(o)) != 0 {
			continue
		}

		orientation := DLOrientations[o]
		best := bestOrientationSolve(base, orientation, info)
		if best == nil {
			continue
		}
		best.DL = cube.EdgePos(o).String()
		solutions = append(solutions, *best)
	}

	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].Len < solutions[j].Len
	})

	return solutions, nil
}

func bestOrientationSolve(base cube.Cube, orientation []cube.Move, info *FBInfo) *Solution {
	var best *Solution

	for x := uint8(0); x <= 3; x++ {
		c := base
		c.DoMoves(orientation)

		prefix := append([]cube.Move{}, orientation...)
		if x > 0 {
			realign := cube.CubeRotation(cube.X, x)
			c.DoMove(realign)
			prefix = append(prefix, realign)
		}

		state := info.GetState(c)
		sol, ok := search.IDDFS(state, info, solveDepthCeiling)
		if !ok {
			continue
		}

		if best == nil || len(sol) < best.Len {
			full := append(append([]cube.Move{}, prefix...), sol...)
			best = &Solution{
				Moves: cube.FormatMoves(full),
				Len:   len(sol),
			}
		}
	}

	return best
}
