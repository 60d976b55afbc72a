package index

import "github.com/jgouly/cube-solver-suite/internal/cube"

// GenericEdgeIndex encodes the edges named by pairs into a single
// coordinate, following the factorial-number-system construction: find
// each edge's raw position, reduce the list to a mixed-radix digit
// sequence (each edge cubie removes two facelets from later choices),
// then combine the digits into one integer.
func GenericEdgeIndex(c cube.Cube, pairs []EdgePair) uint32 {
	n := len(pairs)
	raw := make([]uint32, n)
	for i, p := range pairs {
		raw[i] = uint32(c.FindEdge(p.F1, p.F2))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if raw[i] > raw[j] {
				raw[i] -= 2
			}
		}
	}

	var coord, mult uint32 = 0, 24
	for i := 0; i < n; i++ {
		mult -= 2
		coord = (coord + raw[i]) * mult
	}
	coord /= mult
	return coord
}

// GenericEdgeIndexDecode is the inverse of GenericEdgeIndex: it rebuilds
// an otherwise-invalid cube with just the tracked edges placed.
func GenericEdgeIndexDecode(index uint32, pairs []EdgePair) cube.Cube {
	n := len(pairs)
	digits := make([]uint32, n)

	div := uint32(24 - 2*(n-1))
	idx := index
	for i := n - 1; i >= 0; i-- {
		digits[i] = idx % div
		idx /= div
		div += 2
	}

	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if digits[j]>>1 >= digits[i]>>1 {
				digits[j] += 2
			}
		}
	}

	c := cube.Invalid()
	c.SolveCentres()
	for i, p := range pairs {
		e := cube.EdgePos(digits[i])
		c.Edges[e] = p.F1
		c.Edges[e^1] = p.F2
	}
	return c
}

// GenericCornerIndex is the corner analogue of GenericEdgeIndex: each
// corner cubie removes three facelets from later choices instead of two.
func GenericCornerIndex(c cube.Cube, triples []CornerTriple) uint32 {
	n := len(triples)
	raw := make([]uint32, n)
	for i, t := range triples {
		raw[i] = uint32(c.FindCorner(t.F1, t.F2, t.F3))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if raw[i]/3 > raw[j]/3 {
				raw[i] -= 3
			}
		}
	}

	var coord, mult uint32 = 0, 24
	for i := 0; i < n; i++ {
		mult -= 3
		coord = (coord + raw[i]) * mult
	}
	coord /= mult
	return coord
}

// GenericCornerIndexDecode is the inverse of GenericCornerIndex.
func GenericCornerIndexDecode(index uint32, triples []CornerTriple) cube.Cube {
	n := len(triples)
	digits := make([]uint32, n)

	div := uint32(24 - 3*(n-1))
	idx := index
	for i := n - 1; i >= 0; i-- {
		digits[i] = idx % div
		idx /= div
		div += 3
	}

	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if digits[j]/3 >= digits[i]/3 {
				digits[j] += 3
			}
		}
	}

	c := cube.Invalid()
	c.SolveCentres()
	for i, t := range triples {
		pos := digits[i]
		var a, b, d uint32
		switch pos % 3 {
		case 0:
			a, b, d = pos, pos+1, pos+2
		case 1:
			a, b, d = pos, pos+1, pos-1
		default:
			a, b, d = pos, pos-2, pos-1
		}
		c.Corners[cube.CornerPos(a)] = t.F1
		c.Corners[cube.CornerPos(b)] = t.F2
		c.Corners[cube.CornerPos(d)] = t.F3
	}
	return c
}
