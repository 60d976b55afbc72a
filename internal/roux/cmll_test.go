package roux

import (
	"testing"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/search"
)

func TestCMLLBasicSolve(t *testing.T) {
	scramble, err := cube.ParseMoves("R U2 R' U' R U' R'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	c := cube.Solved()
	c.DoMoves(scramble)

	info := NewCMLLInfo()
	state := info.GetState(c)

	solution, ok := search.IDDFS(state, info, 7)
	if !ok {
		t.Fatal("expected a CMLL solution within depth 7")
	}

	want, err := cube.ParseMoves("F' U2 F U F' U F")
	if err != nil {
		t.Fatalf("ParseMoves(want): %v", err)
	}
	if len(solution) != len(want) {
		t.Fatalf("solution = %v, want %v", solution, want)
	}
	for i := range want {
		if solution[i] != want[i] {
			t.Fatalf("solution = %v, want %v", solution, want)
		}
	}

	c.DoMoves(solution)
	if !info.IsSolved(info.GetState(c)) {
		t.Error("applying solution did not leave CMLL solved")
	}
}
