package engine

import (
	"testing"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

func TestSearchStartposDepthOne(t *testing.T) {
	board := parseBoard(t, fm.FENStartPos)
	snapshot := *board

	eng := NewEngine(board, 1)
	best := eng.GetBestMove()

	if best.IsNull() {
		t.Fatalf("expected a move from the initial position")
	}
	legal := false
	for _, m := range board.GenerateLegalMoves() {
		if m == best {
			legal = true
		}
	}
	if !legal {
		t.Fatalf("best move %s is not legal", best)
	}
	if eng.NodesSearched() <= 20 {
		t.Fatalf("expected more than 20 nodes, got %d", eng.NodesSearched())
	}
	if Abs(eng.LastScore()) > 50 {
		t.Fatalf("initial position score out of range: %d", eng.LastScore())
	}
	if *board != snapshot {
		t.Fatalf("game board mutated by search")
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	for _, depth := range []int{1, 3} {
		board := parseBoard(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
		eng := NewEngine(board, depth)
		best := eng.GetBestMove()

		if best.IsNull() {
			t.Fatalf("depth %d: no move returned", depth)
		}
		ok, _ := board.MakeMove(best)
		if !ok {
			t.Fatalf("depth %d: best move %s not playable", depth, best)
		}
		if !board.IsCheckmate() {
			t.Fatalf("depth %d: %s does not mate", depth, best)
		}
		if got := eng.LastScore(); got != MateScore-1 {
			t.Fatalf("depth %d: score %d, want %d", depth, got, MateScore-1)
		}
	}
}

func TestSearchFindsMateInTwo(t *testing.T) {
	// Rook ladder: 1.Rb7 (or Ra7) boxes the king on the back rank, the
	// other rook mates next move.
	board := parseBoard(t, "6k1/8/R7/1R6/8/8/8/6K1 w - - 0 1")
	eng := NewEngine(board, 3)
	best := eng.GetBestMove()

	if best.IsNull() {
		t.Fatalf("no move returned")
	}
	if got := eng.LastScore(); got != MateScore-3 {
		t.Fatalf("score %d, want %d", got, MateScore-3)
	}
}

// After playing the first PV move, the rest of the line is the best play
// of the resulting position: here the defender is mated two plies later.
func TestSearchPVPrefix(t *testing.T) {
	board := parseBoard(t, "6k1/8/R7/1R6/8/8/8/6K1 w - - 0 1")
	eng := NewEngine(board, 3)
	best := eng.GetBestMove()

	if ok, _ := board.MakeMove(best); !ok {
		t.Fatalf("PV move %s not playable", best)
	}
	reply := NewEngine(board, 2)
	replyMove := reply.GetBestMove()
	if replyMove.IsNull() {
		t.Fatalf("no reply found")
	}
	if got := reply.LastScore(); got != -(MateScore - 2) {
		t.Fatalf("reply score %d, want %d", got, -(MateScore - 2))
	}
}

func TestSearchTerminalPositionReturnsNullMove(t *testing.T) {
	stalemate := parseBoard(t, "7k/8/6Q1/8/8/8/8/7K b - - 0 1")
	if best := NewEngine(stalemate, 3).GetBestMove(); !best.IsNull() {
		t.Fatalf("stalemate: expected null move, got %s", best)
	}

	mate := parseBoard(t, "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	if best := NewEngine(mate, 3).GetBestMove(); !best.IsNull() {
		t.Fatalf("checkmate: expected null move, got %s", best)
	}
}

// pvSearch must leave the board it searches bit-equal on every path,
// cutoffs included.
func TestSearchMakeUnmakeBalance(t *testing.T) {
	fens := []string{
		fm.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	}
	for _, fen := range fens {
		board := parseBoard(t, fen)
		snapshot := *board

		eng := NewEngine(board, 3)
		eng.resetSearchState()
		eng.tt.IncrementAge()

		var pv PVLine
		eng.pvSearch(board, 3, -Infinity, Infinity, &pv, fm.GenerateHashKey(board), 0, fm.NullMove())

		if *board != snapshot {
			t.Fatalf("%s: board changed after pvSearch", fen)
		}
	}
}

func TestHistoryStaysBounded(t *testing.T) {
	board := parseBoard(t, fm.FENStartPos)
	eng := NewEngine(board, 1)
	move := parseMove(t, "g1f3")

	for i := 0; i < 1000; i++ {
		eng.updateHistoryScore(move, 20, fm.White)
	}

	for c := 0; c < 2; c++ {
		for from := 0; from < 64; from++ {
			for to := 0; to < 64; to++ {
				if got := eng.historyMoves[c][from][to]; got > historyMaxVal {
					t.Fatalf("history entry %d exceeds bound %d", got, historyMaxVal)
				}
			}
		}
	}
}

func TestGetPVString(t *testing.T) {
	board := parseBoard(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	eng := NewEngine(board, 2)
	best := eng.GetBestMove()

	pv := eng.GetPVString()
	if pv == "" {
		t.Fatalf("empty PV after search")
	}
	if got := pv[:4]; got != best.String() {
		t.Fatalf("PV %q does not start with best move %s", pv, best)
	}
}
