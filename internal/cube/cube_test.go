package cube

import (
	"reflect"
	"testing"
)

func TestSolvedCubeUMove(t *testing.T) {
	c := Solved()
	c.DoMove(FaceTurn(U, 1))

	wantEdges := [24]Face{
		U, R, U, F, U, L, U, B,
		D, F, D, L, D, B, D, R,
		F, R, F, L, B, L, B, R,
	}
	wantCorners := [24]Face{
		U, B, R, U, R, F, U, F, L, U, L, B,
		D, F, R, D, L, F, D, B, L, D, R, B,
	}

	if c.Edges != wantEdges {
		t.Errorf("edges after U = %v, want %v", c.Edges, wantEdges)
	}
	if c.Corners != wantCorners {
		t.Errorf("corners after U = %v, want %v", c.Corners, wantCorners)
	}
	if c.Centres != [6]Face{U, R, F, D, B, L} {
		t.Errorf("centres after U = %v, want unchanged", c.Centres)
	}
}

func TestTPerm(t *testing.T) {
	c := Solved()
	moves, err := ParseMoves("U F2 U' F2 D R2 B2 U B2 D' R2")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	c.DoMoves(moves)

	wantEdges := [24]Face{
		U, F, U, R, U, B, U, L,
		D, F, D, L, D, B, D, R,
		F, R, F, L, B, L, B, R,
	}
	wantCorners := [24]Face{
		U, B, R, U, F, L, U, L, B, U, R, F,
		D, F, R, D, L, F, D, B, L, D, R, B,
	}

	if c.Edges != wantEdges {
		t.Errorf("edges after T-perm = %v, want %v", c.Edges, wantEdges)
	}
	if c.Corners != wantCorners {
		t.Errorf("corners after T-perm = %v, want %v", c.Corners, wantCorners)
	}
	if c.Centres != [6]Face{U, R, F, D, B, L} {
		t.Errorf("centres after T-perm = %v, want unchanged", c.Centres)
	}
}

func TestMoveInvolution(t *testing.T) {
	faces := []Face{U, D, F, B, R, L}
	for _, f := range faces {
		c := Solved()
		want := c
		for i := 0; i < 4; i++ {
			c.DoMove(FaceTurn(f, 1))
		}
		if c != want {
			t.Errorf("four %s turns != identity", f)
		}
	}
}

func TestInverseComposition(t *testing.T) {
	faces := []Face{U, D, F, B, R, L}
	for _, f := range faces {
		c := Solved()
		want := c
		c.DoMove(FaceTurn(f, 3))
		c.DoMove(FaceTurn(f, 1))
		if c != want {
			t.Errorf("%s' then %s != identity", f, f)
		}
	}
}

func TestParserRoundTrip(t *testing.T) {
	original := []Move{
		FaceTurn(U, 1),
		FaceTurn(F, 2),
		FaceTurn(U, 3),
		SliceTurn(M, 1),
		CubeRotation(X, 3),
	}

	text := FormatMoves(original)
	reparsed, err := ParseMoves(text)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", text, err)
	}

	if !reflect.DeepEqual(original, reparsed) {
		t.Errorf("round trip = %#v, want %#v", reparsed, original)
	}
}

func TestParseMovesError(t *testing.T) {
	_, err := ParseMoves("U Q")
	if err == nil {
		t.Fatal("expected error for invalid token")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Offset != 2 {
		t.Errorf("offset = %d, want 2", perr.Offset)
	}
}

func TestFindEdgeAndCorner(t *testing.T) {
	c := Solved()
	if got := c.FindEdge(U, F); got != UF {
		t.Errorf("FindEdge(U,F) = %v, want UF", got)
	}
	if got := c.FindCorner(U, R, F); got != URF {
		t.Errorf("FindCorner(U,R,F) = %v, want URF", got)
	}
}
