package freshmg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// The reference generator under-promotes as well, so cross-checks stay
// on positions and depths where no promotion occurs.
var crossCheckFENs = []string{
	fm.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
}

func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += refPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestMovegenMatchesReference(t *testing.T) {
	for _, fen := range crossCheckFENs {
		board := parse(t, fen)
		ref := dragontoothmg.ParseFen(fen)

		for depth := 1; depth <= 3; depth++ {
			got := fm.Perft(board, depth)
			want := refPerft(&ref, depth)
			if got != want {
				t.Fatalf("%s depth %d: got %d nodes, reference says %d", fen, depth, got, want)
			}
		}
	}
}
