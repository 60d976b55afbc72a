package index

import "github.com/jgouly/cube-solver-suite/internal/cube"

// FBEdges tracks the three first-block edges: DL, FL, BL.
var FBEdges = EdgeIndex{Pairs: []EdgePair{
	{cube.D, cube.L},
	{cube.F, cube.L},
	{cube.B, cube.L},
}}

// FBCorners tracks the two first-block corners: DLF, DBL.
var FBCorners = CornerIndex{Triples: []CornerTriple{
	{cube.D, cube.L, cube.F},
	{cube.D, cube.B, cube.L},
}}

// CMLL tracks the four U-layer corners, in clockwise order around U.
var CMLL = CornerIndex{Triples: []CornerTriple{
	{cube.U, cube.R, cube.F},
	{cube.U, cube.F, cube.L},
	{cube.U, cube.L, cube.B},
	{cube.U, cube.B, cube.R},
}}

// SBEdges tracks the three second-block edges: DR, FR, BR.
var SBEdges = EdgeIndex{Pairs: []EdgePair{
	{cube.D, cube.R},
	{cube.F, cube.R},
	{cube.B, cube.R},
}}

// SBCorners tracks the two second-block corners: DFR, DRB.
var SBCorners = CornerIndex{Triples: []CornerTriple{
	{cube.D, cube.F, cube.R},
	{cube.D, cube.R, cube.B},
}}
