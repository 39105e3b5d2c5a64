package engine

import (
	"testing"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

func TestMVVLVAMatrix(t *testing.T) {
	// Pawn takes queen outscores queen takes pawn.
	pxq := getMVVLVAScore(fm.PieceTypePawn, fm.PieceTypeQueen)
	qxp := getMVVLVAScore(fm.PieceTypeQueen, fm.PieceTypePawn)
	if pxq != 505 || qxp != 101 {
		t.Fatalf("unexpected MVV-LVA values: PxQ=%d QxP=%d", pxq, qxp)
	}
	if getMVVLVAScore(fm.PieceTypeKing, fm.PieceTypePawn) != 100 {
		t.Fatalf("KxP should be the weakest capture score")
	}
}

func TestMoveOrderingTTMoveFirst(t *testing.T) {
	board := parseBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	eng := NewEngine(board, 1)
	eng.resetSearchState()

	moves := board.GenerateLegalMoves()
	ttMove := moves[len(moves)-1] // any move will do; pretend the TT suggested it

	list := eng.scoreMoves(board, moves, ttMove, 0, fm.NullMove(), 1)
	orderNextMove(0, &list)

	if list.moves[0].move != ttMove {
		t.Fatalf("TT move not ordered first: got %s", list.moves[0].move)
	}
	if list.moves[0].score != ttMoveScore {
		t.Fatalf("TT move score %d, want %d", list.moves[0].score, ttMoveScore)
	}
}

func TestMoveOrderingCapturesBeforeQuiets(t *testing.T) {
	// White can take the d5 pawn with the e4 pawn. The d8 queen recaptures,
	// so SEE is 0: an even capture, still in the good-capture tier.
	board := parseBoard(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	eng := NewEngine(board, 1)
	eng.resetSearchState()

	list := eng.scoreMoves(board, board.GenerateLegalMoves(), fm.NullMove(), 0, fm.NullMove(), 1)
	orderNextMove(0, &list)

	first := list.moves[0]
	if first.move.String() != "e4d5" {
		t.Fatalf("expected capture e4d5 first, got %s", first.move)
	}
	if first.score < goodCaptureScore {
		t.Fatalf("even capture scored %d, below the good-capture tier", first.score)
	}
}

// A quiet move that caused a cutoff at a ply is tried in the killer tier
// before any other quiet move at that ply.
func TestMoveOrderingKillerTier(t *testing.T) {
	board := parseBoard(t, fm.FENStartPos)
	eng := NewEngine(board, 1)
	eng.resetSearchState()

	killer := parseMove(t, "g1f3")
	second := parseMove(t, "b1c3")
	eng.killerMoves.InsertKiller(second, 3)
	eng.killerMoves.InsertKiller(killer, 3)

	list := eng.scoreMoves(board, board.GenerateLegalMoves(), fm.NullMove(), 3, fm.NullMove(), 1)

	var killerScore, secondScore, quietMax int32
	quietMax = -1
	for _, sm := range list.moves {
		switch sm.move {
		case killer:
			killerScore = sm.score
		case second:
			secondScore = sm.score
		default:
			quietMax = Max(quietMax, sm.score)
		}
	}

	if killerScore != killerFirstScore || secondScore != killerSecondScore {
		t.Fatalf("killer scores %d/%d, want %d/%d", killerScore, secondScore, killerFirstScore, killerSecondScore)
	}
	if quietMax >= killerSecondScore {
		t.Fatalf("a non-killer quiet move scored %d, at or above the killer tier", quietMax)
	}
}

func TestMoveOrderingCounterTier(t *testing.T) {
	board := parseBoard(t, fm.FENStartPos)
	eng := NewEngine(board, 1)
	eng.resetSearchState()

	// Reach a position where black just played g8f6, then record the
	// c3 knight move as its refutation.
	if ok, _ := board.MakeMove(parseMove(t, "e2e4")); !ok {
		t.Fatalf("setup move refused")
	}
	lastMove := parseMove(t, "g8f6")
	if ok, _ := board.MakeMove(lastMove); !ok {
		t.Fatalf("setup move refused")
	}

	counter := parseMove(t, "b1c3")
	eng.storeCounterMove(board, lastMove, counter)

	list := eng.scoreMoves(board, board.GenerateLegalMoves(), fm.NullMove(), 0, lastMove, 1)
	for _, sm := range list.moves {
		if sm.move == counter {
			if sm.score != counterMoveScore {
				t.Fatalf("counter move scored %d, want %d", sm.score, counterMoveScore)
			}
			return
		}
	}
	t.Fatalf("counter move not present in move list")
}

func TestScoreMovesDropsHopelessCaptures(t *testing.T) {
	// Queen takes a pawn defended by a pawn: SEE loses a queen for a
	// pawn, far below the -2 pawn threshold at depth >= 3.
	board := parseBoard(t, "7k/8/4p3/3p4/8/8/8/3Q3K w - - 0 1")
	eng := NewEngine(board, 3)
	eng.resetSearchState()

	bad := parseMove(t, "d1d5")
	list := eng.scoreMoves(board, board.GenerateLegalMoves(), fm.NullMove(), 0, fm.NullMove(), 3)
	for _, sm := range list.moves {
		if sm.move == bad {
			t.Fatalf("hopeless capture %s survived depth-3 pruning", bad)
		}
	}

	// At lower depth it is kept, in the bad-capture tier below good
	// captures.
	list = eng.scoreMoves(board, board.GenerateLegalMoves(), fm.NullMove(), 0, fm.NullMove(), 2)
	found := false
	for _, sm := range list.moves {
		if sm.move == bad {
			found = true
			if sm.score < badCaptureScore || sm.score >= goodCaptureScore {
				t.Fatalf("losing capture scored %d, outside the bad-capture tier", sm.score)
			}
		}
	}
	if !found {
		t.Fatalf("losing capture missing at depth 2")
	}
}

func TestMoveOrderingPVTier(t *testing.T) {
	board := parseBoard(t, fm.FENStartPos)
	eng := NewEngine(board, 2)
	eng.resetSearchState()

	pvMove := parseMove(t, "e2e4")
	eng.storePV(2, PVLine{Moves: []fm.Move{pvMove}})

	list := eng.scoreMoves(board, board.GenerateLegalMoves(), fm.NullMove(), 0, fm.NullMove(), 1)
	for _, sm := range list.moves {
		if sm.move == pvMove {
			if want := pvMoveScore + 2*1000; sm.score != want {
				t.Fatalf("PV move scored %d, want %d", sm.score, want)
			}
			return
		}
	}
	t.Fatalf("PV move not found in list")
}
