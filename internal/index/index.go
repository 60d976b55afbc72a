// Package index implements the piece-subset coordinate indices used by
// the search engine: bijective mappings between a chosen list of edge
// or corner cubies and a compact integer in [0, NumElems).
package index

import "github.com/jgouly/cube-solver-suite/internal/cube"

// Index is a capability that picks a fixed ordered list of piece slots
// and maps a cube's placement of those pieces to a coordinate, and back.
type Index interface {
	// NumElems is the size of this index's coordinate space.
	NumElems() uint32
	// FromCube encodes the tracked pieces of c into a coordinate.
	FromCube(c cube.Cube) uint32
	// FromIndex decodes a coordinate into an otherwise-invalid cube with
	// only the tracked piece positions filled in.
	FromIndex(i uint32) cube.Cube
}

// EdgePair names one physical edge cubie by its two stickers, in the
// orientation this index tracks.
type EdgePair struct {
	F1, F2 cube.Face
}

// CornerTriple names one physical corner cubie by its three stickers,
// listed clockwise starting from the facelet this index tracks first.
type CornerTriple struct {
	F1, F2, F3 cube.Face
}

// EdgeIndex is an Index over a fixed list of edge pairs.
type EdgeIndex struct {
	Pairs []EdgePair
}

func (idx EdgeIndex) NumElems() uint32 {
	total := uint32(1)
	mult := uint32(24)
	for range idx.Pairs {
		total *= mult
		mult -= 2
	}
	return total
}

func (idx EdgeIndex) FromCube(c cube.Cube) uint32 {
	return GenericEdgeIndex(c, idx.Pairs)
}

func (idx EdgeIndex) FromIndex(i uint32) cube.Cube {
	return GenericEdgeIndexDecode(i, idx.Pairs)
}

// CornerIndex is an Index over a fixed list of corner triples.
type CornerIndex struct {
	Triples []CornerTriple
}

func (idx CornerIndex) NumElems() uint32 {
	total := uint32(1)
	mult := uint32(24)
	for range idx.Triples {
		total *= mult
		mult -= 3
	}
	return total
}

func (idx CornerIndex) FromCube(c cube.Cube) uint32 {
	return GenericCornerIndex(c, idx.Triples)
}

func (idx CornerIndex) FromIndex(i uint32) cube.Cube {
	return GenericCornerIndexDecode(i, idx.Triples)
}
