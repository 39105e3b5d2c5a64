package freshmg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return NoPiece
}

func charFromPiece(p Piece) byte {
	chars := [15]byte{
		WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B',
		WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
		BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b',
		BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
	}
	return chars[p]
}

// ParseFEN builds a board from a FEN string.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen %q: need at least 4 fields", fen)
	}

	b := &Board{epTarget: NoPosition}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen %q: need 8 ranks", fen)
	}
	for i, rank := range ranks {
		row := int8(7 - i) // FEN lists rank 8 first; rank 8 is row 7
		col := int8(0)
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '8' {
				col += int8(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece || col > 7 {
				return nil, fmt.Errorf("fen %q: bad rank %q", fen, rank)
			}
			b.squares[Position{row, col}.Index()] = piece
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("fen %q: rank %q does not cover 8 files", fen, rank)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("fen %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.castlingRights |= CastleWhiteKingside
			case 'Q':
				b.castlingRights |= CastleWhiteQueenside
			case 'k':
				b.castlingRights |= CastleBlackKingside
			case 'q':
				b.castlingRights |= CastleBlackQueenside
			default:
				return nil, fmt.Errorf("fen %q: bad castling rights %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen %q: %v", fen, err)
		}
		b.epTarget = sq
	}

	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen %q: bad halfmove clock", fen)
		}
		b.halfmoveClock = int16(n)
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen %q: bad fullmove number", fen)
		}
		b.fullmoveNumber = int16(n)
	}

	b.hash = GenerateHashKey(b)
	return b, nil
}

// ToFEN renders the position as a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for row := int8(7); row >= 0; row-- {
		empty := 0
		for col := int8(0); col < 8; col++ {
			piece := b.squares[Position{row, col}.Index()]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(piece))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epTarget.String())
	sb.WriteString(" " + strconv.Itoa(int(b.halfmoveClock)))
	sb.WriteString(" " + strconv.Itoa(int(b.fullmoveNumber)))
	return sb.String()
}
