package cube

import "fmt"

// MoveKind tags which of the three move families a Move belongs to.
type MoveKind int

const (
	FaceTurnKind MoveKind = iota
	SliceTurnKind
	CubeRotationKind
)

// Move is a single quarter-turn move, repeated Amount times. Amount is
// always in {1, 2, 3}; 3 means a quarter turn counter-clockwise.
type Move struct {
	Kind     MoveKind
	Face     Face
	Slice    Slice
	Rotation Rotation
	Amount   uint8
}

// FaceTurn builds a face-turn move.
func FaceTurn(f Face, amount uint8) Move {
	return Move{Kind: FaceTurnKind, Face: f, Amount: amount}
}

// SliceTurn builds a slice-turn move.
func SliceTurn(s Slice, amount uint8) Move {
	return Move{Kind: SliceTurnKind, Slice: s, Amount: amount}
}

// CubeRotation builds a whole-cube rotation move.
func CubeRotation(r Rotation, amount uint8) Move {
	return Move{Kind: CubeRotationKind, Rotation: r, Amount: amount}
}

// WithAmount returns a copy of m with the same movement but a different
// amount.
func (m Move) WithAmount(amount uint8) Move {
	m.Amount = amount
	return m
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return m.WithAmount(4 - m.Amount)
}

// InverseMoves returns the move sequence that undoes ms: each move
// inverted, in reverse order.
func InverseMoves(ms []Move) []Move {
	inv := make([]Move, len(ms))
	for i, m := range ms {
		inv[len(ms)-1-i] = m.Inverse()
	}
	return inv
}

// IsSameMovement reports whether m and other share a tag and
// discriminant, ignoring amount.
func (m Move) IsSameMovement(other Move) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case FaceTurnKind:
		return m.Face == other.Face
	case SliceTurnKind:
		return m.Slice == other.Slice
	default:
		return m.Rotation == other.Rotation
	}
}

// String renders m in standard cube notation: the face/slice/rotation
// letter, followed by nothing for a single turn, '2' for a double turn,
// or ''' for a counter-clockwise turn. Rotations render lowercase.
func (m Move) String() string {
	var letter string
	switch m.Kind {
	case FaceTurnKind:
		letter = m.Face.String()
	case SliceTurnKind:
		letter = m.Slice.String()
	case CubeRotationKind:
		letter = m.Rotation.String()
	}

	switch m.Amount {
	case 2:
		return letter + "2"
	case 3:
		return letter + "'"
	default:
		return letter
	}
}

// GoString supports %#v debug formatting, mostly useful in test failures.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}
