package roux

import "github.com/jgouly/cube-solver-suite/internal/cube"

// DLOrientations holds, for each EdgePos in natural order, the whole-
// cube rotation sequence that brings the edge originally at that
// position into DL with its sister at LD. Indexing by EdgePos lets the
// solver try every one of the 24 possible first-block edge placements
// without re-deriving which rotation to use.
var DLOrientations = [24][]cube.Move{
	{cube.CubeRotation(cube.X, 2), cube.CubeRotation(cube.Y, 3)},
	{cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 1)},
	{cube.CubeRotation(cube.X, 2)},
	{cube.CubeRotation(cube.Y, 1), cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 3)},
	{cube.CubeRotation(cube.X, 2), cube.CubeRotation(cube.Y, 1)},
	{cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 3)},
	{cube.CubeRotation(cube.X, 2), cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.Y, 1), cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 1)},
	{cube.CubeRotation(cube.Y, 1)},
	{cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 3)},
	{},
	{cube.CubeRotation(cube.Y, 1), cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 1)},
	{cube.CubeRotation(cube.Y, 3)},
	{cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 1)},
	{cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.Y, 1), cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 3)},
	{cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.Y, 3), cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.X, 3)},
	{cube.CubeRotation(cube.Y, 3), cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.X, 1)},
	{cube.CubeRotation(cube.Y, 1), cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.X, 1), cube.CubeRotation(cube.Y, 2)},
	{cube.CubeRotation(cube.Y, 1), cube.CubeRotation(cube.X, 3), cube.CubeRotation(cube.Y, 2)},
}
