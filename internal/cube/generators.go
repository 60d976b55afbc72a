package cube

// Generators is the fixed 7-move alphabet the search engine explores,
// in the canonical order that determines tie-breaking among equally
// short solutions: U, D, F, B, R, L, M.
var Generators = [7]Move{
	FaceTurn(U, 1),
	FaceTurn(D, 1),
	FaceTurn(F, 1),
	FaceTurn(B, 1),
	FaceTurn(R, 1),
	FaceTurn(L, 1),
	SliceTurn(M, 1),
}
