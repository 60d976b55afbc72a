package cube

// Cube is a 3x3x3 cube represented as sticker colours at fixed facelet
// positions. It has no notion of "which way is up" beyond the labels
// of Face: turning the cube is just relabelling these arrays.
type Cube struct {
	Edges   [24]Face
	Corners [24]Face
	Centres [6]Face
}

// Solved returns a cube in the solved state.
func Solved() Cube {
	return Cube{
		Edges: [24]Face{
			U, F, U, L, U, B, U, R,
			D, F, D, L, D, B, D, R,
			F, R, F, L, B, L, B, R,
		},
		Corners: [24]Face{
			U, R, F, U, F, L, U, L, B, U, B, R,
			D, F, R, D, L, F, D, B, L, D, R, B,
		},
		Centres: [6]Face{U, R, F, D, B, L},
	}
}

// Invalid returns a cube with every sticker set to U. It exists purely
// as a scratch buffer: index decoders only overwrite the piece slots
// they track, leaving the rest as this sentinel value.
func Invalid() Cube {
	var c Cube
	for i := range c.Edges {
		c.Edges[i] = U
	}
	for i := range c.Corners {
		c.Corners[i] = U
	}
	for i := range c.Centres {
		c.Centres[i] = U
	}
	return c
}

// SolveCentres overwrites the centres with the solved permutation. Index
// decoders call this when a caller needs a well-formed cube but only
// cares about edges or corners.
func (c *Cube) SolveCentres() {
	c.Centres = [6]Face{U, R, F, D, B, L}
}

// DoMove applies m to the cube.
func (c *Cube) DoMove(m Move) {
	for i := uint8(0); i < m.Amount; i++ {
		c.doQuarterTurn(m)
	}
}

// DoMoves applies every move in ms, in order.
func (c *Cube) DoMoves(ms []Move) {
	for _, m := range ms {
		c.DoMove(m)
	}
}

func (c *Cube) doQuarterTurn(m Move) {
	switch m.Kind {
	case FaceTurnKind:
		switch m.Face {
		case U:
			c.doU()
		case D:
			c.doD()
		case F:
			c.doF()
		case B:
			c.doB()
		case R:
			c.doR()
		case L:
			c.doL()
		}
	case SliceTurnKind:
		switch m.Slice {
		case M:
			c.doM()
		case E:
			c.doE()
		case S:
			c.doS()
		}
	case CubeRotationKind:
		switch m.Rotation {
		case X:
			c.doX()
		case Y:
			c.doY()
		case Z:
			c.doZ()
		}
	}
}

// FindEdge locates the EdgePos whose sticker is f1, on the physical edge
// shared with a sticker f2. Panics if no such edge exists, which only
// happens on a corrupted cube: every well-formed cube has every edge
// piece exactly once.
func (c *Cube) FindEdge(f1, f2 Face) EdgePos {
	for i := 0; i < 24; i += 2 {
		e0, e1 := c.Edges[i], c.Edges[i+1]
		if e0 == f1 && e1 == f2 {
			return edgePosNaturalOrder[i]
		}
		if e1 == f1 && e0 == f2 {
			return edgePosNaturalOrder[i+1]
		}
	}
	panic("cube: edge not found")
}

// FindCorner locates the CornerPos whose stickers read f1, f2, f3 going
// clockwise starting from f1. Panics on a corrupted cube.
func (c *Cube) FindCorner(f1, f2, f3 Face) CornerPos {
	for i := 0; i < 24; i += 3 {
		c0, c1, c2 := c.Corners[i], c.Corners[i+1], c.Corners[i+2]
		if c0 == f1 && c1 == f2 && c2 == f3 {
			return cornerPosNaturalOrder[i]
		}
		if c1 == f1 && c2 == f2 && c0 == f3 {
			return cornerPosNaturalOrder[i+1]
		}
		if c2 == f1 && c0 == f2 && c1 == f3 {
			return cornerPosNaturalOrder[i+2]
		}
	}
	panic("cube: corner not found")
}

func edge4(edges *[24]Face, a, b, c, d EdgePos) {
	oa, ob, oc, od := edges[a], edges[b], edges[c], edges[d]
	edges[a] = od
	edges[b] = oa
	edges[c] = ob
	edges[d] = oc
}

func corner4(corners *[24]Face, a, b, c, d CornerPos) {
	oa, ob, oc, od := corners[a], corners[b], corners[c], corners[d]
	corners[a] = od
	corners[b] = oa
	corners[c] = ob
	corners[d] = oc
}

func (c *Cube) doU() {
	edge4(&c.Edges, UF, UL, UB, UR)
	edge4(&c.Edges, FU, LU, BU, RU)

	corner4(&c.Corners, URF, UFL, ULB, UBR)
	corner4(&c.Corners, RFU, FLU, LBU, BRU)
	corner4(&c.Corners, FUR, LUF, BUL, RUB)
}

func (c *Cube) doD() {
	edge4(&c.Edges, DF, DR, DB, DL)
	edge4(&c.Edges, FD, RD, BD, LD)

	corner4(&c.Corners, DFR, DRB, DBL, DLF)
	corner4(&c.Corners, FRD, RBD, BLD, LFD)
	corner4(&c.Corners, RDF, BDR, LDB, FDL)
}

func (c *Cube) doR() {
	edge4(&c.Edges, UR, BR, DR, FR)
	edge4(&c.Edges, RU, RB, RD, RF)

	corner4(&c.Corners, URF, BRU, DRB, FRD)
	corner4(&c.Corners, RFU, RUB, RBD, RDF)
	corner4(&c.Corners, FUR, UBR, BDR, DFR)
}

func (c *Cube) doL() {
	edge4(&c.Edges, UL, FL, DL, BL)
	edge4(&c.Edges, LU, LF, LD, LB)

	corner4(&c.Corners, UFL, FDL, DBL, BUL)
	corner4(&c.Corners, FLU, DLF, BLD, ULB)
	corner4(&c.Corners, LUF, LFD, LDB, LBU)
}

func (c *Cube) doF() {
	edge4(&c.Edges, UF, RF, DF, LF)
	edge4(&c.Edges, FU, FR, FD, FL)

	corner4(&c.Corners, URF, RDF, DLF, LUF)
	corner4(&c.Corners, RFU, DFR, LFD, UFL)
	corner4(&c.Corners, FUR, FRD, FDL, FLU)
}

func (c *Cube) doB() {
	edge4(&c.Edges, UB, LB, DB, RB)
	edge4(&c.Edges, BU, BL, BD, BR)

	corner4(&c.Corners, UBR, LBU, DBL, RBD)
	corner4(&c.Corners, BRU, BUL, BLD, BDR)
	corner4(&c.Corners, RUB, ULB, LDB, DRB)
}

// doM turns the M slice (between R and L) in the direction of L.
// M passes through no corner, so corners are untouched.
func (c *Cube) doM() {
	edge4(&c.Edges, UF, FD, DB, BU)
	edge4(&c.Edges, FU, DF, BD, UB)

	centres := c.Centres
	c.Centres[CentreF] = centres[CentreU]
	c.Centres[CentreD] = centres[CentreF]
	c.Centres[CentreB] = centres[CentreD]
	c.Centres[CentreU] = centres[CentreB]
}

// doE turns the E slice (between U and D) in the direction of D.
func (c *Cube) doE() {
	edge4(&c.Edges, FR, RB, BL, LF)
	edge4(&c.Edges, RF, BR, LB, FL)

	centres := c.Centres
	c.Centres[CentreF] = centres[CentreL]
	c.Centres[CentreL] = centres[CentreB]
	c.Centres[CentreB] = centres[CentreR]
	c.Centres[CentreR] = centres[CentreF]
}

// doS turns the S slice (between F and B) in the direction of F.
func (c *Cube) doS() {
	edge4(&c.Edges, UR, RD, DL, LU)
	edge4(&c.Edges, RU, DR, LD, UL)

	centres := c.Centres
	c.Centres[CentreR] = centres[CentreU]
	c.Centres[CentreD] = centres[CentreR]
	c.Centres[CentreL] = centres[CentreD]
	c.Centres[CentreU] = centres[CentreL]
}

// doX applies one x-axis whole-cube rotation: x = R (M L) (M L) (M L),
// i.e. R M' L'.
func (c *Cube) doX() {
	c.doR()
	for i := 0; i < 3; i++ {
		c.doM()
		c.doL()
	}
}

// doY applies one y-axis whole-cube rotation: y = U (E D) (E D) (E D),
// i.e. U E' D'.
func (c *Cube) doY() {
	c.doU()
	for i := 0; i < 3; i++ {
		c.doE()
		c.doD()
	}
}

// doZ applies one z-axis whole-cube rotation: z = F (S' B) (S' B) (S' B).
func (c *Cube) doZ() {
	c.doF()
	for i := 0; i < 3; i++ {
		c.doSPrime()
		c.doB()
	}
}

func (c *Cube) doMPrime() {
	c.doM()
	c.doM()
	c.doM()
}

func (c *Cube) doEPrime() {
	c.doE()
	c.doE()
	c.doE()
}

func (c *Cube) doSPrime() {
	c.doS()
	c.doS()
	c.doS()
}
