// Package search implements the iterative-deepening depth-first search
// that drives every solve: a depth-limited DFS with move-redundancy
// filtering and pruning-table cutoff, wrapped in iterative deepening.
package search

import "github.com/jgouly/cube-solver-suite/internal/cube"

// Info is the capability a composite search state exposes to the IDDFS
// engine. S is the state type, expected to be cheaply copyable.
type Info[S any] interface {
	// IsSolved reports whether s is a goal state.
	IsSolved(s S) bool
	// Transition advances s by one quarter-turn of Generators[moveIndex].
	Transition(s S, moveIndex int) S
	// Prune reports whether the search may cut this node: true means
	// the remaining depth cannot possibly reach a solution from s.
	Prune(s S, depthRemaining int) bool
}

// IDDFS runs depth-limited search at increasing depths 0, 1, 2, ... up
// to maxDepth, returning the first solution found and true, or nil and
// false if none exists within maxDepth.
func IDDFS[S any](state S, info Info[S], maxDepth int) ([]cube.Move, bool) {
	for depth := 0; depth <= maxDepth; depth++ {
		solution := make([]cube.Move, 0, depth)
		if search(state, info, depth, &solution) {
			return solution, true
		}
	}
	return nil, false
}

// search is the depth-limited DFS core. It mutates solution in place so
// that a returned true leaves solution holding the full move sequence.
func search[S any](state S, info Info[S], depthRemaining int, solution *[]cube.Move) bool {
	if depthRemaining == 0 {
		return info.IsSolved(state)
	}

	for i, m := range cube.Generators {
		if isRedundant(*solution, m) {
			continue
		}

		next := state
		for n := uint8(1); n <= 3; n++ {
			next = info.Transition(next, i)
			if info.Prune(next, depthRemaining-1) {
				continue
			}

			*solution = append(*solution, m.WithAmount(n))
			if search(next, info, depthRemaining-1, solution) {
				return true
			}
			*solution = (*solution)[:len(*solution)-1]
		}
	}

	return false
}

// isRedundant reports whether appending m to solution would produce a
// move sequence whose tail is known-suboptimal: either m repeats the
// movement of the last move, or the last two moves were face turns of
// opposite faces and the earlier of the two already turned m's face
// (the canonical "A B A" commuting pair).
func isRedundant(solution []cube.Move, m cube.Move) bool {
	n := len(solution)
	if n == 0 {
		return false
	}

	last := solution[n-1]
	if last.IsSameMovement(m) {
		return true
	}

	if n >= 2 && m.Kind == cube.FaceTurnKind && last.Kind == cube.FaceTurnKind {
		prev := solution[n-2]
		if prev.Kind == cube.FaceTurnKind && last.Face.IsOpposite(prev.Face) && prev.Face == m.Face {
			return true
		}
	}

	return false
}
