package freshmg

// AttacksSquare reports whether the piece on from attacks target under
// the current occupancy, regardless of what stands on target. Used by
// exchange evaluation, where the target square holds a piece of either
// color as the sequence alternates.
func (b *Board) AttacksSquare(from, target Position) bool {
	piece := b.GetPieceAt(from)
	if piece == NoPiece || from == target {
		return false
	}
	dr := target.Row - from.Row
	dc := target.Col - from.Col

	switch piece.Type() {
	case PieceTypePawn:
		return dr == pawnForward(piece.Color()) && (dc == 1 || dc == -1)
	case PieceTypeKnight:
		return (abs8(dr) == 2 && abs8(dc) == 1) || (abs8(dr) == 1 && abs8(dc) == 2)
	case PieceTypeKing:
		return abs8(dr) <= 1 && abs8(dc) <= 1
	case PieceTypeBishop:
		if abs8(dr) != abs8(dc) {
			return false
		}
		return b.rayClear(from, target)
	case PieceTypeRook:
		if dr != 0 && dc != 0 {
			return false
		}
		return b.rayClear(from, target)
	case PieceTypeQueen:
		if abs8(dr) != abs8(dc) && dr != 0 && dc != 0 {
			return false
		}
		return b.rayClear(from, target)
	}
	return false
}

// rayClear reports whether every square strictly between from and target
// is empty. from and target must share a rank, file or diagonal.
func (b *Board) rayClear(from, target Position) bool {
	stepRow := sign8(target.Row - from.Row)
	stepCol := sign8(target.Col - from.Col)
	pos := Position{from.Row + stepRow, from.Col + stepCol}
	for pos != target {
		if b.GetPieceAt(pos) != NoPiece {
			return false
		}
		pos = Position{pos.Row + stepRow, pos.Col + stepCol}
	}
	return true
}

func sign8(x int8) int8 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
