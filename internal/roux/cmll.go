package roux

import (
	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/jgouly/cube-solver-suite/internal/index"
	"github.com/jgouly/cube-solver-suite/internal/tables"
)

// CMLLState is the search state for the CMLL stage: the full cube (so
// second-block pieces can be checked for disturbance), the CMLL corner
// coordinate, and the nested first-block state.
type CMLLState struct {
	Cube cube.Cube
	CMLL uint32
	FB   FBState
}

// CMLLInfo composes FBInfo with the CMLL corner index and the second
// block's edge/corner sub-predicates: solving CMLL must not disturb the
// first block, and the second block's edges and corners must end where
// and as they are on a solved cube (their coordinates equal the solved
// cube's).
type CMLLInfo struct {
	fb            *FBInfo
	trans         tables.TransitionTable
	prune         tables.PruningTable
	goal          uint32
	sbEdgesGoal   uint32
	sbCornersGoal uint32
}

// NewCMLLInfo builds (or reuses the cached) CMLL tables on top of a
// fresh FBInfo.
func NewCMLLInfo() *CMLLInfo {
	trans, prune := tables.CMLL()
	solved := cube.Solved()
	return &CMLLInfo{
		fb:            NewFBInfo(),
		trans:         trans,
		prune:         prune,
		goal:          index.CMLL.FromCube(solved),
		sbEdgesGoal:   index.SBEdges.FromCube(solved),
		sbCornersGoal: index.SBCorners.FromCube(solved),
	}
}

// GetState reads the CMLL search state off c.
func (info *CMLLInfo) GetState(c cube.Cube) CMLLState {
	return CMLLState{
		Cube: c,
		CMLL: index.CMLL.FromCube(c),
		FB:   info.fb.GetState(c),
	}
}

// IsSolved reports whether the first block is intact, the CMLL corners
// are solved, and the second block's pieces are undisturbed.
func (info *CMLLInfo) IsSolved(s CMLLState) bool {
	if !info.fb.IsSolved(s.FB) {
		return false
	}
	if s.CMLL != info.goal {
		return false
	}
	if index.SBEdges.FromCube(s.Cube) != info.sbEdgesGoal {
		return false
	}
	if index.SBCorners.FromCube(s.Cube) != info.sbCornersGoal {
		return false
	}
	return true
}

// Transition advances the cube, the CMLL coordinate, and the nested
// first-block state by one quarter-turn of Generators[moveIndex].
func (info *CMLLInfo) Transition(s CMLLState, moveIndex int) CMLLState {
	next := s.Cube
	next.DoMove(cube.Generators[moveIndex])
	return CMLLState{
		Cube: next,
		CMLL: info.trans[s.CMLL][moveIndex],
		FB:   info.fb.Transition(s.FB, moveIndex),
	}
}

// Prune reports whether s cannot be solved within depthRemaining moves:
// either the nested first block can't, or the CMLL pruning table says
// the corners alone can't.
func (info *CMLLInfo) Prune(s CMLLState, depthRemaining int) bool {
	if info.fb.Prune(s.FB, depthRemaining) {
		return true
	}
	return depthRemaining < int(info.prune[s.CMLL])
}
