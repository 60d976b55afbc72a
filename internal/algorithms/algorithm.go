// Package algorithms provides a small named-case database for the CMLL
// stage: given a cube with a solved first block, recognise which
// well-known corner case it presents and look up a solving algorithm.
//
// This is a coordinate-based analogue of a facelet-pattern algorithm
// database: instead of matching a masked sticker grid, each case is
// identified by the exact CMLL coordinate its inverse produces from a
// solved cube.
package algorithms

// Algorithm is a named CMLL case with its solving move sequence.
type Algorithm struct {
	// Name is a human-friendly label, e.g. "Sune".
	Name string
	// CaseID is a short stable identifier, e.g. "CMLL-SUNE".
	CaseID string
	// Moves solves this case's corners from the case's own recognised
	// state, expressed in the same grammar internal/cube.ParseMoves
	// accepts.
	Moves string
	// MoveCount is the number of moves in Moves, a half turn counting
	// as one move.
	MoveCount int
	// Description explains what the case looks like before solving.
	Description string
	// Recognition is a short recognition hint.
	Recognition string
	// Mirror names another case's CaseID that mirrors this one, if any.
	Mirror string
	// Related lists CaseIDs of cases commonly confused with this one.
	Related []string
}
