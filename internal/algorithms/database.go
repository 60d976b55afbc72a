package algorithms

// Database is a representative set of named CMLL cases, not the full
// 42/44-case set: a solid starting point for identify/verify tooling
// rather than an exhaustive trainer.
var Database = []Algorithm{
	{
		Name:        "Sune",
		CaseID:      "CMLL-SUNE",
		Moves:       "R U R' U R U2 R'",
		MoveCount:   7,
		Description: "One corner already oriented, the other three rotated one way",
		Recognition: "Headlights on the back-left, facing left",
	},
	{
		Name:        "Antisune",
		CaseID:      "CMLL-ANTISUNE",
		Moves:       "R U2 R' U' R U' R'",
		MoveCount:   7,
		Description: "One corner already oriented, the other three rotated the other way",
		Recognition: "Headlights on the back-right, facing right",
		Mirror:      "CMLL-SUNE",
		Related:     []string{"CMLL-SUNE"},
	},
	{
		Name:        "Pi",
		CaseID:      "CMLL-PI",
		Moves:       "R U2 R2 U' R2 U' R2 U2 R",
		MoveCount:   9,
		Description: "No corners oriented, diagonal corners swapped",
		Recognition: "No headlights anywhere, checkerboard-like corner colours",
	},
	{
		Name:        "H",
		CaseID:      "CMLL-H",
		Moves:       "F R U R' U' R U R' U' F'",
		MoveCount:   10,
		Description: "Two pairs of corners already paired diagonally",
		Recognition: "Headlights on two opposite sides",
		Related:     []string{"CMLL-PI"},
	},
	{
		Name:        "T",
		CaseID:      "CMLL-T",
		Moves:       "R U R' U' R' F R2 U' R' U' R U R' F'",
		MoveCount:   14,
		Description: "Adjacent corners swapped, the rest oriented",
		Recognition: "Headlights on adjacent sides",
	},
	{
		Name:        "Double Sune",
		CaseID:      "CMLL-BOWTIE",
		Moves:       "R U R' U R U' R' U R U2 R'",
		MoveCount:   11,
		Description: "Sune's trigger applied twice, a 3-cycle of corners",
		Recognition: "Bowtie pattern across the four corners",
		Related:     []string{"CMLL-SUNE", "CMLL-ANTISUNE"},
	},
}
