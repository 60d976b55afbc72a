package roux

import (
	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
	"github.com/jgouly/cube-solver-suite/internal/tables"
)

// FBState is the search state for the first block: the coordinates of
// its three edges and two corners.
type FBState struct {
	Edges   uint32
	Corners uint32
}

// FBInfo drives first-block search. It owns the edge and corner
// transition/pruning tables and knows the solved-state coordinates.
type FBInfo struct {
	edgeTrans   tables.TransitionTable
	cornerTrans tables.TransitionTable
	edgePrune   tables.PruningTable
	cornerPrune tables.PruningTable
	edgeGoal    uint32
	cornerGoal  uint32
}

// NewFBInfo builds (or reuses the cached) first-block tables.
func NewFBInfo() *FBInfo {
	edgeTrans, edgePrune := tables.FBEdges()
	cornerTrans, cornerPrune := tables.FBCorners()
	solved := cube.Solved()
	return &FBInfo{
		edgeTrans:   edgeTrans,
		cornerTrans: cornerTrans,
		edgePrune:   edgePrune,
		cornerPrune: cornerPrune,
		edgeGoal:    index.FBEdges.FromCube(solved),
		cornerGoal:  index.FBCorners.FromCube(solved),
	}
}

// GetState reads the first-block coordinates off c.
func (f *FBInfo) GetState(c cube.Cube) FBState {
	return FBState{
		Edges:   index.FBEdges.FromCube(c),
		Corners: index.FBCorners.FromCube(c),
	}
}

// IsSolved reports whether s is the solved first block.
func (f *FBInfo) IsSolved(s FBState) bool {
	return s.Edges == f.edgeGoal && s.Corners == f.cornerGoal
}

// Transition advances s by one quarter-turn of Generators[moveIndex].
func (f *FBInfo) Transition(s FBState, moveIndex int) FBState {
	return FBState{
		Edges:   f.edgeTrans[s.Edges][moveIndex],
		Corners: f.cornerTrans[s.Corners][moveIndex],
	}
}

// Prune reports whether s cannot be solved within depthRemaining moves,
// using the larger of the two component pruning-table lower bounds.
func (f *FBInfo) Prune(s FBState, depthRemaining int) bool {
	dist := int(f.edgePrune[s.Edges])
	if d := int(f.cornerPrune[s.Corners]); d > dist {
		dist = d
	}
	return depthRemaining < dist
}
