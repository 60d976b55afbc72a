package cube

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed move string. It carries enough context
// to render the original Rust suite's two-line diagnostic: the input
// followed by a caret under the first unconsumed byte.
type ParseError struct {
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s\n%s^ parse error at position %d", e.Input, strings.Repeat(" ", e.Offset), e.Offset)
}

var faceTokens = map[byte]Face{
	'U': U, 'D': D, 'F': F, 'B': B, 'R': R, 'L': L,
}

var rotationTokens = map[byte]Rotation{
	'x': X, 'y': Y, 'z': Z,
}

// ParseMoves parses a whitespace-separated sequence of move tokens. Each
// token is one of U D F B R L M E S x y z, optionally followed by ' (amount
// 3) or 2 (amount 2); no suffix means amount 1. On malformed input it
// returns a *ParseError carrying the input and the byte offset of the
// first unconsumed byte.
func ParseMoves(s string) ([]Move, error) {
	var moves []Move
	i := 0
	n := len(s)

	for i < n {
		if isSpace(s[i]) {
			i++
			continue
		}

		token := s[i]
		var move Move
		switch {
		case token == 'M':
			move = SliceTurn(M, 1)
		case token == 'E':
			move = SliceTurn(E, 1)
		case token == 'S':
			move = SliceTurn(S, 1)
		default:
			if f, ok := faceTokens[token]; ok {
				move = FaceTurn(f, 1)
			} else if r, ok := rotationTokens[token]; ok {
				move = CubeRotation(r, 1)
			} else {
				return nil, &ParseError{Input: s, Offset: i}
			}
		}
		i++

		if i < n {
			switch s[i] {
			case '2':
				move = move.WithAmount(2)
				i++
			case '\'':
				move = move.WithAmount(3)
				i++
			}
		}

		moves = append(moves, move)
	}

	return moves, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// FormatMoves renders ms back to the whitespace-joined textual form that
// ParseMoves accepts, the inverse used by the parser round-trip property.
func FormatMoves(ms []Move) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
