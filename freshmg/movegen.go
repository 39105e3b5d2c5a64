package freshmg

var knightSteps = [8][2]int8{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingSteps = [8][2]int8{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var bishopDirs = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pawnForward is the row delta a pawn of the given color advances by.
func pawnForward(c Color) int8 {
	if c == White {
		return 1
	}
	return -1
}

func pawnStartRow(c Color) int8 {
	if c == White {
		return 1
	}
	return 6
}

// PieceMovesFrom generates the moves the piece on from could make by its
// movement rule alone: captures, quiet moves, castling and en passant.
// King safety is not considered here; GenerateLegalMoves filters for it.
func (b *Board) PieceMovesFrom(from Position) []Move {
	piece := b.GetPieceAt(from)
	if piece == NoPiece {
		return nil
	}
	var moves []Move
	b.appendPieceMoves(&moves, from, piece)
	return moves
}

func (b *Board) appendPieceMoves(moves *[]Move, from Position, piece Piece) {
	switch piece.Type() {
	case PieceTypePawn:
		b.appendPawnMoves(moves, from, piece.Color())
	case PieceTypeKnight:
		b.appendStepMoves(moves, from, piece.Color(), knightSteps[:])
	case PieceTypeBishop:
		b.appendSlideMoves(moves, from, piece.Color(), bishopDirs[:])
	case PieceTypeRook:
		b.appendSlideMoves(moves, from, piece.Color(), rookDirs[:])
	case PieceTypeQueen:
		b.appendSlideMoves(moves, from, piece.Color(), bishopDirs[:])
		b.appendSlideMoves(moves, from, piece.Color(), rookDirs[:])
	case PieceTypeKing:
		b.appendStepMoves(moves, from, piece.Color(), kingSteps[:])
		b.appendCastleMoves(moves, from, piece.Color())
	}
}

func (b *Board) appendPawnMoves(moves *[]Move, from Position, color Color) {
	fwd := pawnForward(color)

	one := Position{from.Row + fwd, from.Col}
	if one.IsValid() && b.GetPieceAt(one) == NoPiece {
		*moves = append(*moves, Move{from, one})
		two := Position{from.Row + 2*fwd, from.Col}
		if from.Row == pawnStartRow(color) && b.GetPieceAt(two) == NoPiece {
			*moves = append(*moves, Move{from, two})
		}
	}

	for _, dc := range [2]int8{-1, 1} {
		to := Position{from.Row + fwd, from.Col + dc}
		if !to.IsValid() {
			continue
		}
		target := b.GetPieceAt(to)
		if target != NoPiece && target.Color() != color {
			*moves = append(*moves, Move{from, to})
		} else if target == NoPiece && to == b.epTarget {
			*moves = append(*moves, Move{from, to})
		}
	}
}

func (b *Board) appendStepMoves(moves *[]Move, from Position, color Color, steps [][2]int8) {
	for _, s := range steps {
		to := Position{from.Row + s[0], from.Col + s[1]}
		if !to.IsValid() {
			continue
		}
		target := b.GetPieceAt(to)
		if target == NoPiece || target.Color() != color {
			*moves = append(*moves, Move{from, to})
		}
	}
}

func (b *Board) appendSlideMoves(moves *[]Move, from Position, color Color, dirs [][2]int8) {
	for _, d := range dirs {
		to := Position{from.Row + d[0], from.Col + d[1]}
		for to.IsValid() {
			target := b.GetPieceAt(to)
			if target == NoPiece {
				*moves = append(*moves, Move{from, to})
			} else {
				if target.Color() != color {
					*moves = append(*moves, Move{from, to})
				}
				break
			}
			to = Position{to.Row + d[0], to.Col + d[1]}
		}
	}
}

// appendCastleMoves emits the two-square king moves. The rook path must be
// empty and the king may not castle out of or through check; the landing
// square is verified by the legality filter like any other move.
func (b *Board) appendCastleMoves(moves *[]Move, from Position, color Color) {
	var row int8
	var kside, qside CastlingRights
	if color == White {
		row, kside, qside = 0, CastleWhiteKingside, CastleWhiteQueenside
	} else {
		row, kside, qside = 7, CastleBlackKingside, CastleBlackQueenside
	}
	if from.Row != row || from.Col != 4 {
		return
	}
	enemy := color.Other()

	if b.castlingRights&kside != 0 &&
		b.GetPieceAt(Position{row, 5}) == NoPiece &&
		b.GetPieceAt(Position{row, 6}) == NoPiece &&
		!b.isSquareAttacked(Position{row, 4}, enemy) &&
		!b.isSquareAttacked(Position{row, 5}, enemy) {
		*moves = append(*moves, Move{from, Position{row, 6}})
	}
	if b.castlingRights&qside != 0 &&
		b.GetPieceAt(Position{row, 3}) == NoPiece &&
		b.GetPieceAt(Position{row, 2}) == NoPiece &&
		b.GetPieceAt(Position{row, 1}) == NoPiece &&
		!b.isSquareAttacked(Position{row, 4}, enemy) &&
		!b.isSquareAttacked(Position{row, 3}, enemy) {
		*moves = append(*moves, Move{from, Position{row, 2}})
	}
}

// GeneratePseudoMoves generates all moves for the side to move by piece
// rules alone, without the king-safety filter.
func (b *Board) GeneratePseudoMoves() []Move {
	moves := make([]Move, 0, 48)
	for idx := 0; idx < 64; idx++ {
		piece := b.squares[idx]
		if piece == NoPiece || piece.Color() != b.sideToMove {
			continue
		}
		b.appendPieceMoves(&moves, Position{int8(idx / 8), int8(idx % 8)}, piece)
	}
	return moves
}

// GenerateLegalMoves generates every legal move for the side to move.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) hasLegalMoves() bool {
	for _, m := range b.GeneratePseudoMoves() {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			return true
		}
	}
	return false
}

// isSquareAttacked reports whether any piece of color by attacks pos.
func (b *Board) isSquareAttacked(pos Position, by Color) bool {
	// Pawns attack diagonally forward, so look one row behind pos.
	fwd := pawnForward(by)
	pawn := PieceFromType(by, PieceTypePawn)
	for _, dc := range [2]int8{-1, 1} {
		from := Position{pos.Row - fwd, pos.Col + dc}
		if from.IsValid() && b.GetPieceAt(from) == pawn {
			return true
		}
	}

	knight := PieceFromType(by, PieceTypeKnight)
	for _, s := range knightSteps {
		from := Position{pos.Row + s[0], pos.Col + s[1]}
		if from.IsValid() && b.GetPieceAt(from) == knight {
			return true
		}
	}

	king := PieceFromType(by, PieceTypeKing)
	for _, s := range kingSteps {
		from := Position{pos.Row + s[0], pos.Col + s[1]}
		if from.IsValid() && b.GetPieceAt(from) == king {
			return true
		}
	}

	if b.slideAttacked(pos, by, bishopDirs[:], PieceTypeBishop) {
		return true
	}
	return b.slideAttacked(pos, by, rookDirs[:], PieceTypeRook)
}

func (b *Board) slideAttacked(pos Position, by Color, dirs [][2]int8, slider PieceType) bool {
	for _, d := range dirs {
		from := Position{pos.Row + d[0], pos.Col + d[1]}
		for from.IsValid() {
			piece := b.GetPieceAt(from)
			if piece != NoPiece {
				if piece.Color() == by && (piece.Type() == slider || piece.Type() == PieceTypeQueen) {
					return true
				}
				break
			}
			from = Position{from.Row + d[0], from.Col + d[1]}
		}
	}
	return false
}
