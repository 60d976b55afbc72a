package index

import (
	"testing"

	"github.com/jgouly/cube-solver-suite/internal/cube"
)

func scramble(t *testing.T, moves string) cube.Cube {
	t.Helper()
	ms, err := cube.ParseMoves(moves)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", moves, err)
	}
	c := cube.Solved()
	c.DoMoves(ms)
	return c
}

func TestGenericEdgeIndexFixedPoints(t *testing.T) {
	solved := cube.Solved()

	if got := GenericEdgeIndex(solved, []EdgePair{{cube.U, cube.F}}); got != 0 {
		t.Errorf("[(U,F)] = %d, want 0", got)
	}
	if got := GenericEdgeIndex(solved, []EdgePair{{cube.U, cube.L}}); got != 2 {
		t.Errorf("[(U,L)] = %d, want 2", got)
	}
	if got := GenericEdgeIndex(solved, []EdgePair{{cube.L, cube.U}}); got != 3 {
		t.Errorf("[(L,U)] = %d, want 3", got)
	}

	flipUL := scramble(t, "L U' F U")
	if got := GenericEdgeIndex(flipUL, []EdgePair{{cube.U, cube.F}, {cube.U, cube.L}}); got != 1 {
		t.Errorf("after flip-UL [(U,F),(U,L)] = %d, want 1", got)
	}

	flipUF := scramble(t, "F U' R U")
	if got := GenericEdgeIndex(flipUF, []EdgePair{{cube.U, cube.F}, {cube.U, cube.L}}); got != 22 {
		t.Errorf("after flip-UF [(U,F),(U,L)] = %d, want 22", got)
	}
	if got := GenericEdgeIndex(flipUF, []EdgePair{{cube.U, cube.L}, {cube.U, cube.F}}); got != 45 {
		t.Errorf("after flip-UF [(U,L),(U,F)] = %d, want 45", got)
	}
}

func TestGenericCornerIndexFixedPoints(t *testing.T) {
	solved := cube.Solved()

	if got := GenericCornerIndex(solved, []CornerTriple{{cube.U, cube.R, cube.F}}); got != 0 {
		t.Errorf("[(U,R,F)] = %d, want 0", got)
	}
	if got := GenericCornerIndex(solved, []CornerTriple{{cube.U, cube.F, cube.L}}); got != 3 {
		t.Errorf("[(U,F,L)] = %d, want 3", got)
	}
	if got := GenericCornerIndex(solved, []CornerTriple{{cube.L, cube.U, cube.F}}); got != 5 {
		t.Errorf("[(L,U,F)] = %d, want 5", got)
	}

	twistUFL := scramble(t, "L2 D L'")
	if got := GenericCornerIndex(twistUFL, []CornerTriple{{cube.U, cube.R, cube.F}, {cube.U, cube.F, cube.L}}); got != 1 {
		t.Errorf("after twist-UFL [(U,R,F),(U,F,L)] = %d, want 1", got)
	}

	twistURF := scramble(t, "R' D R2")
	if got := GenericCornerIndex(twistURF, []CornerTriple{{cube.U, cube.R, cube.F}, {cube.U, cube.F, cube.L}}); got != 21 {
		t.Errorf("after twist-URF [(U,R,F),(U,F,L)] = %d, want 21", got)
	}
}

func TestExhaustiveRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		idx  Index
	}{
		{"FBEdges", FBEdges},
		{"FBCorners", FBCorners},
		{"CMLL", CMLL},
		{"SBEdges", SBEdges},
		{"SBCorners", SBCorners},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.idx.NumElems()
			for i := uint32(0); i < n; i++ {
				c := tc.idx.FromIndex(i)
				if got := tc.idx.FromCube(c); got != i {
					t.Fatalf("round trip at %d: got %d", i, got)
				}
			}
		})
	}
}
