package cli

import "github.com/jgouly/cube-solver-suite/internal/cube"

// edgePosNames mirrors cube.EdgePos's natural order for --dl flag parsing.
var edgePosNames = [24]string{
	"UF", "FU", "UL", "LU", "UB", "BU", "UR", "RU",
	"DF", "FD", "DL", "LD", "DB", "BD", "DR", "RD",
	"FR", "RF", "FL", "LF", "BL", "LB", "BR", "RB",
}

func parseEdgePos(s string) (cube.EdgePos, bool) {
	for i, name := range edgePosNames {
		if name == s {
			return cube.EdgePos(i), true
		}
	}
	return 0, false
}
