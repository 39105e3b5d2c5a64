package freshmg

import (
	"errors"
	"fmt"
)

// Move is a pair of board coordinates. A move with either coordinate
// invalid is the null move, used as the "no previous move" sentinel.
// Pawns reaching the last row promote to a queen; the move itself does
// not carry a promotion piece.
type Move struct {
	From, To Position
}

// NullMove returns the null-move sentinel.
func NullMove() Move { return Move{NoPosition, NoPosition} }

// IsNull reports whether either end of the move is off the board.
func (m Move) IsNull() bool { return !m.From.IsValid() || !m.To.IsValid() }

// String produces coordinate notation, e.g. "e2e4". The null move prints
// as "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate notation ("e2e4"). A trailing promotion
// letter is accepted and ignored since promotions always queen.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove(), fmt.Errorf("bad move %q", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return NullMove(), err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return NullMove(), err
	}
	return Move{from, to}, nil
}

func parseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoPosition, errors.New("bad square " + s)
	}
	return Position{int8(s[1] - '1'), int8(s[0] - 'a')}, nil
}
