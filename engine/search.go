package engine

import (
	"fmt"
	"time"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// deltaMargin is the buffer delta pruning grants for positional gains on
// top of the captured material.
const deltaMargin int32 = 200

// Engine owns all mutable search state: the transposition table, the
// killer/counter/history tables, the per-iteration PV table and the node
// counter. It searches on a snapshot of the game board, so the caller's
// board is never touched. Not safe for concurrent use; one Engine drives
// one search at a time.
type Engine struct {
	board    *fm.Board
	maxDepth int

	tt           TransTable
	killerMoves  KillerStruct
	counterMoves CounterTable
	historyMoves HistoryTable

	// PV per completed iteration depth, plus the latest full PV.
	pvTable            [MaxPly][]fm.Move
	pvDepth            int
	principalVariation PVLine

	nodesSearched   uint64
	lastScore       int32
	searchStartTime time.Time

	cutStats CutStatistics

	// PrintCutStats dumps pruning counters after each root search.
	PrintCutStats bool
}

// NewEngine creates an engine searching the given game board to maxDepth.
func NewEngine(board *fm.Board, maxDepth int) *Engine {
	return &Engine{
		board:    board,
		maxDepth: Clamp(maxDepth, 1, MaxPly-1),
	}
}

// NodesSearched returns the node count of the last root search.
func (e *Engine) NodesSearched() uint64 { return e.nodesSearched }

// LastScore returns the score of the deepest completed iteration of the
// last root search, from the root side to move's perspective.
func (e *Engine) LastScore() int32 { return e.lastScore }

// GetBestMove runs iterative deepening on a snapshot of the game board
// and returns the best move of the deepest completed iteration. On a
// terminal position the null move is returned; callers that need to
// distinguish mate from stalemate check the board themselves.
func (e *Engine) GetBestMove() fm.Move {
	e.resetSearchState()
	e.searchStartTime = time.Now()

	board := *e.board

	e.tt.IncrementAge()

	fm.Initialize()
	hashKey := fm.GenerateHashKey(&board)

	best := e.iterativeDeepeningSearch(&board, e.maxDepth, hashKey)

	if e.PrintCutStats {
		e.cutStats.dump()
	}
	return best
}

// GetPVString returns the latest principal variation as space-separated
// move strings.
func (e *Engine) GetPVString() string {
	return e.principalVariation.String()
}

func (e *Engine) resetSearchState() {
	e.nodesSearched = 0
	e.lastScore = 0
	e.killerMoves.ClearKillers()
	e.clearHistoryTables()
	for d := range e.pvTable {
		e.pvTable[d] = nil
	}
	e.pvDepth = 0
	e.cutStats = CutStatistics{}
}

func (e *Engine) storePV(depth int, pv PVLine) {
	line := make([]fm.Move, len(pv.Moves))
	copy(line, pv.Moves)
	e.pvTable[depth] = line
	e.pvDepth = Max(e.pvDepth, depth)
}

func (e *Engine) iterativeDeepeningSearch(board *fm.Board, maxDepth int, hashKey uint64) fm.Move {
	e.principalVariation.Clear()
	bestMove := fm.NullMove()

	for depth := 1; depth <= maxDepth; depth++ {
		var pv PVLine

		score := e.pvSearch(board, depth, -Infinity, Infinity, &pv, hashKey, 0, fm.NullMove())

		if len(pv.Moves) > 0 {
			bestMove = pv.Moves[0]
			e.lastScore = score
			e.principalVariation = pv.Clone()
			e.storePV(depth, pv)

			fmt.Printf("PV at depth %d: %s\n", depth, e.principalVariation.String())
		}

		elapsed := time.Since(e.searchStartTime).Milliseconds()
		if elapsed == 0 {
			elapsed = 1
		}
		nps := int64(float64(e.nodesSearched) * 1000.0 / float64(elapsed))

		fmt.Printf("Depth: %d, Score: %d, Nodes: %d, Time: %d ms, NPS: %d\n",
			depth, score, e.nodesSearched, elapsed, nps)
	}

	return bestMove
}

// pvSearch is a negamax principal-variation search: the score returned
// is always from the side to move's perspective, and recursive calls
// negate the window and the result. The first move is searched with the
// full window, later moves with a null window and a re-search when they
// threaten to beat alpha.
func (e *Engine) pvSearch(b *fm.Board, depth int, alpha, beta int32, pv *PVLine, hashKey uint64, ply int, lastMove fm.Move) int32 {
	e.nodesSearched++
	pv.Clear()
	originalAlpha := alpha

	// The root is never answered from the table; the driver always gets
	// a freshly computed move.
	ttMove := fm.NullMove()
	if ply > 0 {
		hit, score, move := e.tt.Probe(hashKey, depth, alpha, beta)
		ttMove = move
		if hit {
			e.cutStats.TTCutoffs++
			return score
		}
	}

	if ply >= MaxPly-1 {
		return Evaluate(b)
	}
	if depth <= 0 {
		return e.quiescence(b, alpha, beta, hashKey, ply, 0)
	}

	inCheck := b.IsInCheck()
	extension := 0
	if inCheck {
		extension = 1
	}

	// Checkmate and stalemate fall out of move generation: the mate
	// score is adjusted by ply so shallower mates win.
	legalMoves := b.GenerateLegalMoves()
	if len(legalMoves) == 0 {
		if inCheck {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	// A forced move is worth a deeper look.
	if len(legalMoves) == 1 && depth >= 2 {
		extension = Max(extension, 1)
	}

	list := e.scoreMoves(b, legalMoves, ttMove, ply, lastMove, depth)

	nodeType := AlphaFlag
	localBestMove := legalMoves[0]
	bestScore := -Infinity
	foundPV := false
	var childPV PVLine

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		move := list.moves[i].move

		moveExtension := extension

		// Recapture extension: answering a capture on the same square.
		if lastMove.To.IsValid() && move.To == lastMove.To {
			moveExtension = Max(moveExtension, 1)
		}

		// Pawn push extension: a pawn reaching the seventh rank.
		if piece := b.GetPieceAt(move.From); piece.Type() == fm.PieceTypePawn {
			destRow := int8(6)
			if b.SideToMove() == fm.Black {
				destRow = 1
			}
			if move.To.Row == destRow {
				moveExtension = Max(moveExtension, 1)
			}
		}

		// Late-move reduction is computed only while no move of this node
		// has set the PV. Such moves take the full-window branch below,
		// which searches at fullDepth, and the null-window branch runs
		// with reduction 0, so newDepth equals fullDepth wherever it is
		// used.
		reduction := 0
		if !foundPV && i >= 1 {
			reduction = e.lateMoveReduction(b, move, i, ply)
		}
		newDepth := Max(0, depth-1+moveExtension-reduction)
		fullDepth := Max(0, depth-1+moveExtension)

		ok, undo := b.MakeMove(move)
		if !ok {
			continue
		}
		newHashKey := fm.UpdateHashKey(hashKey, move, b)

		childPV.Clear()
		var score int32

		if foundPV {
			score = -e.pvSearch(b, newDepth, -alpha-1, -alpha, &childPV, newHashKey, ply+1, move)
			if score > alpha && score < beta {
				// The null window failed high: re-search at full depth
				// with the full window.
				childPV.Clear()
				score = -e.pvSearch(b, fullDepth, -beta, -alpha, &childPV, newHashKey, ply+1, move)
			}
		} else {
			score = -e.pvSearch(b, fullDepth, -beta, -alpha, &childPV, newHashKey, ply+1, move)
		}

		b.UnmakeMove(move, undo)

		if score > bestScore {
			bestScore = score
			localBestMove = move
			pv.Update(move, childPV)
			foundPV = true
		}

		alpha = Max(alpha, score)
		if alpha >= beta {
			// Quiet cutoff moves feed the ordering heuristics.
			if b.GetPieceAt(move.To) == fm.NoPiece {
				e.killerMoves.InsertKiller(move, ply)
				e.updateHistoryScore(move, depth, b.SideToMove())
				if !lastMove.IsNull() {
					e.storeCounterMove(b, lastMove, move)
				}
			}
			e.cutStats.BetaCutoffs++
			nodeType = BetaFlag
			break
		}
	}

	if bestScore > originalAlpha && bestScore < beta {
		nodeType = ExactFlag
	}
	e.tt.Store(hashKey, depth, bestScore, nodeType, localBestMove)

	return bestScore
}

// lateMoveReduction decides how much to reduce a late move: PV moves
// never, losing captures by one ply, the rest by their position in the
// ordered list, capped at two plies.
func (e *Engine) lateMoveReduction(b *fm.Board, move fm.Move, moveIndex, ply int) int {
	if e.isInRunningPV(move, ply) {
		return 0
	}
	if b.GetPieceAt(move.To) != fm.NoPiece && seeCapture(b, move) < 0 {
		return 1
	}

	reduction := 0
	if moveIndex >= 3 {
		reduction = 1
	}
	if moveIndex >= 6 {
		reduction = 2
	}
	if moveIndex >= 12 {
		reduction = 3
	}
	return Min(reduction, 2)
}

// quiescence searches only tactical continuations so the evaluation at
// the horizon cannot miss an immediate capture sequence. In check, every
// evasion is searched.
func (e *Engine) quiescence(b *fm.Board, alpha, beta int32, hashKey uint64, ply, qDepth int) int32 {
	e.nodesSearched++

	if ply >= MaxPly-1 {
		return Evaluate(b)
	}

	standPat := Evaluate(b)
	if standPat >= beta {
		e.cutStats.QStandPatCutoffs++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	inCheck := b.IsInCheck()
	legalMoves := b.GenerateLegalMoves()
	if inCheck && len(legalMoves) == 0 {
		return -MateScore + int32(ply)
	}

	list := moveList{moves: make([]scoredMove, 0, len(legalMoves))}
	for _, move := range legalMoves {
		movingPiece := b.GetPieceAt(move.From)
		capturedPiece := b.GetPieceAt(move.To)
		isEnPassant := movingPiece.Type() == fm.PieceTypePawn && move.To == b.EnPassantTarget()
		isCapture := capturedPiece != fm.NoPiece || isEnPassant

		if !inCheck && !isCapture {
			continue
		}

		// Delta pruning: skip captures whose best possible gain still
		// cannot lift the score to alpha.
		if isCapture && !inCheck && qDepth > 0 {
			captureValue := PawnValue
			if capturedPiece != fm.NoPiece {
				captureValue = getPieceValue(capturedPiece.Type())
			}
			promotionBonus := int32(0)
			if movingPiece.Type() == fm.PieceTypePawn && (move.To.Row == 0 || move.To.Row == 7) {
				promotionBonus = QueenValue - PawnValue
			}
			if standPat+captureValue+promotionBonus+deltaMargin <= alpha {
				e.cutStats.DeltaPrunes++
				continue
			}
		}

		var moveScore int32
		if capturedPiece != fm.NoPiece {
			moveScore = getMVVLVAScore(movingPiece.Type(), capturedPiece.Type())
			if seeScore := seeCapture(b, move); seeScore < 0 {
				// Deep in the capture tree, losing captures are not
				// worth exploring at all.
				if qDepth > 2 && !inCheck {
					e.cutStats.SEEPrunes++
					continue
				}
				moveScore += seeScore
			}
		} else if isEnPassant {
			moveScore = getMVVLVAScore(fm.PieceTypePawn, fm.PieceTypePawn)
		}

		list.moves = append(list.moves, scoredMove{move, moveScore})
	}

	for i := 0; i < len(list.moves); i++ {
		orderNextMove(i, &list)
		move := list.moves[i].move

		ok, undo := b.MakeMove(move)
		if !ok {
			continue
		}
		newHashKey := fm.UpdateHashKey(hashKey, move, b)

		score := -e.quiescence(b, -beta, -alpha, newHashKey, ply+1, qDepth+1)

		b.UnmakeMove(move, undo)

		if score >= beta {
			e.cutStats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
