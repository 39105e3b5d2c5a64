package engine

import (
	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

type scoredMove struct {
	move  fm.Move
	score int32
}

type moveList struct {
	moves []scoredMove
}

/*
	Move ordering tiers, highest first. Each tier numerically dominates
	everything below it:
	- the transposition table move,
	- PV moves from earlier iterations (deeper iterations score higher),
	- winning or even captures by SEE,
	- losing captures by MVV-LVA,
	- the counter move to the opponent's last move,
	- the two killer moves at this ply,
	- quiet moves by history score.
*/
const (
	ttMoveScore       int32 = 10000000
	pvMoveScore       int32 = 9000000
	goodCaptureScore  int32 = 4000000
	badCaptureScore   int32 = 3000000
	counterMoveScore  int32 = 2500000
	killerFirstScore  int32 = 2000100
	killerSecondScore int32 = 2000000
)

// Most Valuable Victim - Least Valuable Aggressor; rows are the
// attacker, columns the victim, in order pawn..king.
var mvvLvaScores = [6][6]int32{
	{105, 205, 305, 405, 505, 605}, // pawn attacker
	{104, 204, 304, 404, 504, 604}, // knight
	{103, 203, 303, 403, 503, 603}, // bishop
	{102, 202, 302, 402, 502, 602}, // rook
	{101, 201, 301, 401, 501, 601}, // queen
	{100, 200, 300, 400, 500, 600}, // king
}

func getMVVLVAScore(attacker, victim fm.PieceType) int32 {
	if attacker == fm.PieceTypeNone || victim == fm.PieceTypeNone {
		return 0
	}
	return mvvLvaScores[attacker-1][victim-1]
}

// orderNextMove swaps the best-scored remaining move into currIndex, so
// the search only pays for full ordering when it actually visits moves.
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := currIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// getMoveScore assigns the ordering tier for a single move.
func (e *Engine) getMoveScore(b *fm.Board, move fm.Move, ttMove fm.Move, ply int, lastMove fm.Move) int32 {
	if !ttMove.IsNull() && move == ttMove {
		return ttMoveScore
	}

	// PV moves from previous iterations; deeper iterations first.
	for d := e.pvDepth; d >= 1; d-- {
		if e.isPVMove(move, d, ply) {
			return pvMoveScore + int32(d)*1000
		}
	}

	capturedPiece := b.GetPieceAt(move.To)
	if capturedPiece != fm.NoPiece {
		seeScore := seeCapture(b, move)
		if seeScore >= 0 {
			return goodCaptureScore + seeScore
		}
		movingPiece := b.GetPieceAt(move.From)
		return badCaptureScore + getMVVLVAScore(movingPiece.Type(), capturedPiece.Type())
	}

	if !lastMove.IsNull() {
		if counter := e.getCounterMove(b, lastMove); !counter.IsNull() && counter == move {
			return counterMoveScore
		}
	}

	if e.killerMoves.KillerMoves[ply][0] == move {
		return killerFirstScore
	}
	if e.killerMoves.KillerMoves[ply][1] == move {
		return killerSecondScore
	}

	return e.getHistoryScore(move, b.SideToMove())
}

// scoreMoves builds the scored move list for a node. At depth >= 3,
// captures losing more than two pawns by SEE are dropped entirely.
func (e *Engine) scoreMoves(b *fm.Board, moves []fm.Move, ttMove fm.Move, ply int, lastMove fm.Move, depth int) moveList {
	list := moveList{moves: make([]scoredMove, 0, len(moves))}
	for _, move := range moves {
		if depth >= 3 && b.GetPieceAt(move.To) != fm.NoPiece {
			if seeCapture(b, move) < -PawnValue*2 {
				e.cutStats.SEEPrunes++
				continue
			}
		}
		list.moves = append(list.moves, scoredMove{move, e.getMoveScore(b, move, ttMove, ply, lastMove)})
	}

	// If pruning removed every move, search them all anyway; a node must
	// always have something to play.
	if len(list.moves) == 0 {
		for _, move := range moves {
			list.moves = append(list.moves, scoredMove{move, e.getMoveScore(b, move, ttMove, ply, lastMove)})
		}
	}
	return list
}

// isPVMove reports whether move sits at ply in the PV recorded for
// iteration depth d.
func (e *Engine) isPVMove(move fm.Move, d, ply int) bool {
	pv := e.pvTable[d]
	return ply < len(pv) && pv[ply] == move
}

// isInRunningPV reports whether move matches the current principal
// variation at this ply; such moves are never reduced.
func (e *Engine) isInRunningPV(move fm.Move, ply int) bool {
	pv := e.principalVariation.Moves
	return ply < len(pv) && pv[ply] == move
}
