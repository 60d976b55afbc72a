package cube

import "strings"

// faceColor maps a Face to the ANSI background escape used for --color
// output. Reset is appended by the caller.
var faceColor = map[Face]string{
	U: "\033[48;5;15m  \033[0m", // white
	D: "\033[48;5;226m  \033[0m", // yellow
	F: "\033[48;5;46m  \033[0m", // green
	B: "\033[48;5;21m  \033[0m", // blue
	R: "\033[48;5;196m  \033[0m", // red
	L: "\033[48;5;208m  \033[0m", // orange
}

// facelets reconstructs the 3x3 sticker grid for face f from the piece
// arrays, in row-major order starting at the corner nearest U/L (or the
// cube's own analogue on U/D). This only needs to be right-enough for
// human-readable display; it is never consulted by the solver.
func (c Cube) facelets(f Face) [9]Face {
	var grid [9]Face
	grid[4] = c.Centres[centreIndex(f)]

	// Positions are named by where those stickers sit on a solved cube;
	// corner names may be given in either rotational direction.
	ref := Solved()
	corner := func(f1, f2, f3 Face) Face {
		for i := 0; i < 24; i += 3 {
			t := ref.Corners[i : i+3]
			for k := 0; k < 3; k++ {
				a, b := t[(k+1)%3], t[(k+2)%3]
				if t[k] == f1 && (a == f2 && b == f3 || a == f3 && b == f2) {
					return c.Corners[i+k]
				}
			}
		}
		panic("cube: corner not found")
	}
	edge := func(f1, f2 Face) Face {
		return c.Edges[ref.FindEdge(f1, f2)]
	}

	switch f {
	case U:
		grid[0], grid[1], grid[2] = corner(U, L, B), edge(U, B), corner(U, B, R)
		grid[3], grid[5] = edge(U, L), edge(U, R)
		grid[6], grid[7], grid[8] = corner(U, F, L), edge(U, F), corner(U, R, F)
	case D:
		grid[0], grid[1], grid[2] = corner(D, F, L), edge(D, F), corner(D, R, F)
		grid[3], grid[5] = edge(D, L), edge(D, R)
		grid[6], grid[7], grid[8] = corner(D, L, B), edge(D, B), corner(D, B, R)
	case F:
		grid[0], grid[1], grid[2] = corner(F, U, L), edge(F, U), corner(F, R, U)
		grid[3], grid[5] = edge(F, L), edge(F, R)
		grid[6], grid[7], grid[8] = corner(F, D, L), edge(F, D), corner(F, R, D)
	case B:
		grid[0], grid[1], grid[2] = corner(B, U, R), edge(B, U), corner(B, L, U)
		grid[3], grid[5] = edge(B, R), edge(B, L)
		grid[6], grid[7], grid[8] = corner(B, D, R), edge(B, D), corner(B, L, D)
	case R:
		grid[0], grid[1], grid[2] = corner(R, U, B), edge(R, U), corner(R, F, U)
		grid[3], grid[5] = edge(R, B), edge(R, F)
		grid[6], grid[7], grid[8] = corner(R, D, B), edge(R, D), corner(R, F, D)
	case L:
		grid[0], grid[1], grid[2] = corner(L, U, F), edge(L, U), corner(L, B, U)
		grid[3], grid[5] = edge(L, F), edge(L, B)
		grid[6], grid[7], grid[8] = corner(L, D, F), edge(L, D), corner(L, B, D)
	}
	return grid
}

func centreIndex(f Face) int {
	switch f {
	case U:
		return 0
	case R:
		return 1
	case F:
		return 2
	case D:
		return 3
	case B:
		return 4
	default: // L
		return 5
	}
}

// Display renders c as an unfolded net, in colour when useColor is true.
func (c Cube) Display(useColor bool) string {
	var sb strings.Builder

	render := func(f Face) [9]string {
		grid := c.facelets(f)
		var out [9]string
		for i, face := range grid {
			if useColor {
				out[i] = faceColor[face]
			} else {
				out[i] = face.String()
			}
		}
		return out
	}

	u, d, fr, b, r, l := render(U), render(D), render(F), render(B), render(R), render(L)

	pad := "   "
	if useColor {
		pad = "    "
	}

	writeRow := func(grid [9]string, row int) {
		sb.WriteString(grid[row*3])
		sb.WriteString(" ")
		sb.WriteString(grid[row*3+1])
		sb.WriteString(" ")
		sb.WriteString(grid[row*3+2])
	}

	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		writeRow(u, row)
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, grid := range [][9]string{l, fr, r, b} {
			writeRow(grid, row)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		writeRow(d, row)
		sb.WriteString("\n")
	}

	return sb.String()
}
