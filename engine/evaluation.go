package engine

import (
	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// Score constants. Scores are centipawns from the side to move's
// perspective; mate scores are MateScore minus the distance in plies so
// shallower mates dominate.
const (
	PawnValue   int32 = 100
	KnightValue int32 = 320
	BishopValue int32 = 330
	RookValue   int32 = 500
	QueenValue  int32 = 900
	KingValue   int32 = 20000

	MateScore int32 = 100000
	DrawScore int32 = 0
	Infinity  int32 = 1000000
)

// Piece-square tables. Positional bonuses per square; white indexes with
// row*8+col, black with the vertical mirror (7-row)*8+col. These values
// drive the evaluation and are fixed.
var pawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 5, 5, 5, 5, -10,
	-10, 0, 5, 0, 0, 5, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleGameTable = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndGameTable = [64]int32{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// getPieceValue returns the material value used by evaluation and SEE.
func getPieceValue(pt fm.PieceType) int32 {
	switch pt {
	case fm.PieceTypePawn:
		return PawnValue
	case fm.PieceTypeKnight:
		return KnightValue
	case fm.PieceTypeBishop:
		return BishopValue
	case fm.PieceTypeRook:
		return RookValue
	case fm.PieceTypeQueen:
		return QueenValue
	case fm.PieceTypeKing:
		return KingValue
	}
	return 0
}

func pieceSquareBonus(pt fm.PieceType, tableIndex int, endgame bool) int32 {
	switch pt {
	case fm.PieceTypePawn:
		return pawnTable[tableIndex]
	case fm.PieceTypeKnight:
		return knightTable[tableIndex]
	case fm.PieceTypeBishop:
		return bishopTable[tableIndex]
	case fm.PieceTypeRook:
		return rookTable[tableIndex]
	case fm.PieceTypeQueen:
		return queenTable[tableIndex]
	case fm.PieceTypeKing:
		if endgame {
			return kingEndGameTable[tableIndex]
		}
		return kingMiddleGameTable[tableIndex]
	}
	return 0
}

// Evaluate statically scores the position for the side to move: material
// plus piece-square bonuses, with checkmate and stalemate overriding.
func Evaluate(b *fm.Board) int32 {
	var whiteScore, blackScore int32
	endgame := isEndgame(b)

	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			piece := b.GetPieceAt(fm.Position{Row: row, Col: col})
			if piece == fm.NoPiece {
				continue
			}

			tableIndex := int(row)*8 + int(col)
			if piece.Color() == fm.Black {
				tableIndex = int(7-row)*8 + int(col)
			}

			value := getPieceValue(piece.Type()) + pieceSquareBonus(piece.Type(), tableIndex, endgame)
			if piece.Color() == fm.White {
				whiteScore += value
			} else {
				blackScore += value
			}
		}
	}

	// Terminal overrides, stated from white's perspective like the raw
	// material score; the side-to-move flip below applies to them too, so
	// a checkmated mover always sees -MateScore.
	score := whiteScore - blackScore
	if b.IsCheckmate() {
		score = -MateScore
		if b.SideToMove() == fm.Black {
			score = MateScore
		}
	} else if b.IsStalemate() {
		score = DrawScore
	}

	if b.SideToMove() == fm.White {
		return score
	}
	return -score
}

// isEndgame holds when both queens are gone or few minor and major
// pieces remain.
func isEndgame(b *fm.Board) bool {
	pieceCount := 0
	whiteQueen, blackQueen := false, false

	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			piece := b.GetPieceAt(fm.Position{Row: row, Col: col})
			if piece == fm.NoPiece || piece.Type() == fm.PieceTypeKing || piece.Type() == fm.PieceTypePawn {
				continue
			}
			pieceCount++
			if piece.Type() == fm.PieceTypeQueen {
				if piece.Color() == fm.White {
					whiteQueen = true
				} else {
					blackQueen = true
				}
			}
		}
	}

	return (!whiteQueen && !blackQueen) || pieceCount <= 6
}
