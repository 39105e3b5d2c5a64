package engine

import (
	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// historyMaxVal caps history scores; when any entry passes it the whole
// table is halved so scores keep their relative order without growing
// unbounded.
const historyMaxVal = 10000

// CounterTable stores, per previous move, the quiet reply that refuted
// it. Indexed by the previous move's piece type, color, from- and
// to-square.
type CounterTable [7][2][64][64]fm.Move

// HistoryTable accumulates depth-squared bonuses for quiet moves that
// caused beta cutoffs, indexed by color, from- and to-square.
type HistoryTable [2][64][64]int32

// storeCounterMove records counter as the refutation of lastMove. The
// piece that played lastMove sits on its destination square.
func (e *Engine) storeCounterMove(b *fm.Board, lastMove, counter fm.Move) {
	if lastMove.IsNull() {
		return
	}
	piece := b.GetPieceAt(lastMove.To)
	if piece == fm.NoPiece {
		return
	}
	e.counterMoves[piece.Type()][piece.Color()][lastMove.From.Index()][lastMove.To.Index()] = counter
}

// getCounterMove returns the stored refutation of lastMove, or the null move.
func (e *Engine) getCounterMove(b *fm.Board, lastMove fm.Move) fm.Move {
	if lastMove.IsNull() {
		return fm.NullMove()
	}
	piece := b.GetPieceAt(lastMove.To)
	if piece == fm.NoPiece {
		return fm.NullMove()
	}
	return e.counterMoves[piece.Type()][piece.Color()][lastMove.From.Index()][lastMove.To.Index()]
}

// updateHistoryScore rewards a quiet cutoff move with a depth-squared
// bonus, rescaling the whole table when an entry overflows the cap.
func (e *Engine) updateHistoryScore(move fm.Move, depth int, color fm.Color) {
	bonus := int32(depth * depth)
	e.historyMoves[color][move.From.Index()][move.To.Index()] += bonus

	if e.historyMoves[color][move.From.Index()][move.To.Index()] > historyMaxVal {
		for c := 0; c < 2; c++ {
			for from := 0; from < 64; from++ {
				for to := 0; to < 64; to++ {
					e.historyMoves[c][from][to] /= 2
				}
			}
		}
	}
}

// getHistoryScore returns the accumulated history bonus for move.
func (e *Engine) getHistoryScore(move fm.Move, color fm.Color) int32 {
	return e.historyMoves[color][move.From.Index()][move.To.Index()]
}

func (e *Engine) clearHistoryTables() {
	e.counterMoves = CounterTable{}
	e.historyMoves = HistoryTable{}
}
