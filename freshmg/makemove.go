package freshmg

// BoardState is the undo token produced by MakeMove and consumed by
// UnmakeMove. It captures everything a move can destroy.
type BoardState struct {
	captured       Piece
	capturedSq     Position
	epTarget       Position
	castlingRights CastlingRights
	halfmoveClock  int16
	hash           uint64
	promoted       bool
	rookFrom       Position
	rookTo         Position
}

// MakeMove plays m on the board. It returns false, with the board
// unchanged, when the move is malformed or would leave the mover's own
// king in check. On success the returned BoardState undoes the move.
func (b *Board) MakeMove(m Move) (bool, BoardState) {
	st := BoardState{
		capturedSq:     NoPosition,
		epTarget:       b.epTarget,
		castlingRights: b.castlingRights,
		halfmoveClock:  b.halfmoveClock,
		hash:           b.hash,
		rookFrom:       NoPosition,
		rookTo:         NoPosition,
	}
	if m.IsNull() {
		return false, st
	}
	piece := b.GetPieceAt(m.From)
	if piece == NoPiece || piece.Color() != b.sideToMove {
		return false, st
	}
	target := b.GetPieceAt(m.To)
	if target != NoPiece && target.Color() == piece.Color() {
		return false, st
	}
	mover := piece.Color()

	b.hash ^= b.stateHash()

	// Captures, including en passant.
	if target != NoPiece {
		st.captured = target
		st.capturedSq = m.To
		b.clearSquare(m.To)
	} else if piece.Type() == PieceTypePawn && m.To == b.epTarget {
		capSq := Position{m.From.Row, m.To.Col}
		st.captured = b.GetPieceAt(capSq)
		st.capturedSq = capSq
		b.clearSquare(capSq)
	}

	// Move the piece; pawns reaching the last row become queens.
	b.clearSquare(m.From)
	placed := piece
	if piece.Type() == PieceTypePawn && (m.To.Row == 0 || m.To.Row == 7) {
		placed = PieceFromType(mover, PieceTypeQueen)
		st.promoted = true
	}
	b.setPiece(m.To, placed)

	// Castling moves the rook as well.
	if piece.Type() == PieceTypeKing && abs8(m.To.Col-m.From.Col) == 2 {
		row := m.From.Row
		if m.To.Col == 6 {
			st.rookFrom, st.rookTo = Position{row, 7}, Position{row, 5}
		} else {
			st.rookFrom, st.rookTo = Position{row, 0}, Position{row, 3}
		}
		rook := b.GetPieceAt(st.rookFrom)
		b.clearSquare(st.rookFrom)
		b.setPiece(st.rookTo, rook)
	}

	b.updateCastlingRights(m, piece)

	// En passant target appears only after a double pawn push.
	if piece.Type() == PieceTypePawn && abs8(m.To.Row-m.From.Row) == 2 {
		b.epTarget = Position{m.From.Row + pawnForward(mover), m.From.Col}
	} else {
		b.epTarget = NoPosition
	}

	if piece.Type() == PieceTypePawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.sideToMove = mover.Other()
	if mover == Black {
		b.fullmoveNumber++
	}

	b.hash ^= b.stateHash()

	// A move may not leave the mover's own king attacked.
	ksq := b.kingSquare(mover)
	if ksq.IsValid() && b.isSquareAttacked(ksq, mover.Other()) {
		b.UnmakeMove(m, st)
		return false, st
	}
	return true, st
}

// UnmakeMove reverses a successful MakeMove using its undo token.
func (b *Board) UnmakeMove(m Move, st BoardState) {
	mover := b.sideToMove.Other()

	placed := b.squares[m.To.Index()]
	if st.promoted {
		placed = PieceFromType(mover, PieceTypePawn)
	}
	b.squares[m.To.Index()] = NoPiece
	b.squares[m.From.Index()] = placed

	if st.capturedSq.IsValid() {
		b.squares[st.capturedSq.Index()] = st.captured
	}
	if st.rookFrom.IsValid() {
		rook := b.squares[st.rookTo.Index()]
		b.squares[st.rookTo.Index()] = NoPiece
		b.squares[st.rookFrom.Index()] = rook
	}

	b.epTarget = st.epTarget
	b.castlingRights = st.castlingRights
	b.halfmoveClock = st.halfmoveClock
	b.hash = st.hash
	b.sideToMove = mover
	if mover == Black {
		b.fullmoveNumber--
	}
}

func (b *Board) updateCastlingRights(m Move, piece Piece) {
	if piece.Type() == PieceTypeKing {
		if piece.Color() == White {
			b.castlingRights &^= CastleWhiteKingside | CastleWhiteQueenside
		} else {
			b.castlingRights &^= CastleBlackKingside | CastleBlackQueenside
		}
	}
	for _, sq := range [2]Position{m.From, m.To} {
		switch sq {
		case Position{0, 0}:
			b.castlingRights &^= CastleWhiteQueenside
		case Position{0, 7}:
			b.castlingRights &^= CastleWhiteKingside
		case Position{7, 0}:
			b.castlingRights &^= CastleBlackQueenside
		case Position{7, 7}:
			b.castlingRights &^= CastleBlackKingside
		}
	}
}

// stateHash is the non-piece part of the Zobrist key: castling rights,
// en passant file and side to move.
func (b *Board) stateHash() uint64 {
	h := zobristCastle[b.castlingRights]
	if b.epTarget.IsValid() {
		h ^= zobristEnPassant[b.epTarget.Col]
	}
	if b.sideToMove == Black {
		h ^= zobristSide
	}
	return h
}

func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}
