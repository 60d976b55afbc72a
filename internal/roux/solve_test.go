package roux

import "testing"

func TestSolveFirstBlockSolvedCube(t *testing.T) {
	solutions, err := SolveFirstBlock("", 0)
	if err != nil {
		t.Fatalf("SolveFirstBlock: %v", err)
	}
	if len(solutions) == 0 {
		t.Fatal("expected at least one solution for a solved cube")
	}
	if solutions[0].Len != 0 {
		t.Errorf("shortest solution length = %d, want 0", solutions[0].Len)
	}
	if solutions[0].DL != "DL" {
		t.Errorf("shortest solution DL = %q, want %q", solutions[0].DL, "DL")
	}
}

func TestSolveFirstBlockSkipMask(t *testing.T) {
	// Skip every orientation except DL itself (EdgePos 10).
	var mask uint32 = 0xFFFFFFFF &^ (1 << 10)
	solutions, err := SolveFirstBlock("", mask)
	if err != nil {
		t.Fatalf("SolveFirstBlock: %v", err)
	}
	if len(solutions) != 1 {
		t.Fatalf("len(solutions) = %d, want 1", len(solutions))
	}
	if solutions[0].DL != "DL" {
		t.Errorf("DL = %q, want %q", solutions[0].DL, "DL")
	}
}

func TestSolveFirstBlockParseError(t *testing.T) {
	if _, err := SolveFirstBlock("U Q", 0); err == nil {
		t.Fatal("expected parse error")
	}
}
