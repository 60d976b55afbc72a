package cube

// EdgePos names one of the 24 edge facelets. Positions come in pairs:
// 2k and 2k^1 are the two stickers of the same physical edge cubie.
type EdgePos int

const (
	UF EdgePos = iota
	FU
	UL
	LU
	UB
	BU
	UR
	RU
	DF
	FD
	DL
	LD
	DB
	BD
	DR
	RD
	FR
	RF
	FL
	LF
	BL
	LB
	BR
	RB
)

var edgePosNames = [...]string{
	"UF", "FU", "UL", "LU", "UB", "BU", "UR", "RU",
	"DF", "FD", "DL", "LD", "DB", "BD", "DR", "RD",
	"FR", "RF", "FL", "LF", "BL", "LB", "BR", "RB",
}

func (e EdgePos) String() string { return edgePosNames[e] }

// edgePosNaturalOrder lists every EdgePos in its declared order, i.e.
// edgePosNaturalOrder[i] == EdgePos(i).
var edgePosNaturalOrder = [24]EdgePos{
	UF, FU, UL, LU, UB, BU, UR, RU,
	DF, FD, DL, LD, DB, BD, DR, RD,
	FR, RF, FL, LF, BL, LB, BR, RB,
}

// CornerPos names one of the 24 corner facelets. Positions come in
// triples: 3k, 3k+1, 3k+2 are the three stickers of the same physical
// corner cubie, listed clockwise as seen from outside the cube.
type CornerPos int

const (
	URF CornerPos = iota
	RFU
	FUR
	UFL
	FLU
	LUF
	ULB
	LBU
	BUL
	UBR
	BRU
	RUB
	DFR
	FRD
	RDF
	DLF
	LFD
	FDL
	DBL
	BLD
	LDB
	DRB
	RBD
	BDR
)

var cornerPosNames = [...]string{
	"URF", "RFU", "FUR", "UFL", "FLU", "LUF", "ULB", "LBU",
	"BUL", "UBR", "BRU", "RUB", "DFR", "FRD", "RDF", "DLF",
	"LFD", "FDL", "DBL", "BLD", "LDB", "DRB", "RBD", "BDR",
}

func (c CornerPos) String() string { return cornerPosNames[c] }

// cornerPosNaturalOrder lists every CornerPos in its declared order.
var cornerPosNaturalOrder = [24]CornerPos{
	URF, RFU, FUR, UFL, FLU, LUF, ULB, LBU,
	BUL, UBR, BRU, RUB, DFR, FRD, RDF, DLF,
	LFD, FDL, DBL, BLD, LDB, DRB, RBD, BDR,
}

// CentrePos names one of the 6 centre facelets, fixed order U, R, F, D, B, L.
type CentrePos int

const (
	CentreU CentrePos = iota
	CentreR
	CentreF
	CentreD
	CentreB
	CentreL
)
