package engine

import (
	"testing"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

func TestTTExactHitAtSufficientDepth(t *testing.T) {
	var tt TransTable
	move := fm.Move{From: fm.Position{Row: 1, Col: 4}, To: fm.Position{Row: 3, Col: 4}}
	tt.Store(0xABCDEF, 5, 42, ExactFlag, move)

	// Shallower queries may use the stored score.
	hit, score, ttMove := tt.Probe(0xABCDEF, 3, -Infinity, Infinity)
	if !hit || score != 42 || ttMove != move {
		t.Fatalf("probe: hit=%v score=%d move=%s", hit, score, ttMove)
	}

	// Deeper queries may not, but the move is still usable for ordering.
	hit, _, ttMove = tt.Probe(0xABCDEF, 6, -Infinity, Infinity)
	if hit {
		t.Fatalf("entry of depth 5 must not satisfy a depth-6 probe")
	}
	if ttMove != move {
		t.Fatalf("move should be returned on any key match, got %s", ttMove)
	}
}

func TestTTBoundFlags(t *testing.T) {
	var tt TransTable
	move := fm.NullMove()

	tt.Store(0x1111, 4, 90, BetaFlag, move)
	if hit, score, _ := tt.Probe(0x1111, 4, 0, 80); !hit || score != 90 {
		t.Fatalf("lower bound above beta should cut off")
	}
	if hit, _, _ := tt.Probe(0x1111, 4, 0, 200); hit {
		t.Fatalf("lower bound below beta must not cut off")
	}

	tt.Store(0x2222, 4, -90, AlphaFlag, move)
	if hit, score, _ := tt.Probe(0x2222, 4, -50, 50); !hit || score != -90 {
		t.Fatalf("upper bound below alpha should cut off")
	}
	if hit, _, _ := tt.Probe(0x2222, 4, -200, 50); hit {
		t.Fatalf("upper bound above alpha must not cut off")
	}
}

func TestTTMiss(t *testing.T) {
	var tt TransTable
	tt.Store(0x3333, 4, 10, ExactFlag, fm.NullMove())

	hit, _, ttMove := tt.Probe(0x4444, 1, -Infinity, Infinity)
	if hit || !ttMove.IsNull() {
		t.Fatalf("probe of unknown key should miss cleanly")
	}
}

// An exact TT hit must reproduce the score of a fresh full-window search
// of the same position at the same depth.
func TestTTConsistencyWithSearch(t *testing.T) {
	board := parseBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	hash := fm.GenerateHashKey(board)

	eng := NewEngine(board, 3)
	eng.resetSearchState()
	eng.tt.IncrementAge()

	var pv PVLine
	depth := 2
	fresh := eng.pvSearch(board, depth, -Infinity, Infinity, &pv, hash, 0, fm.NullMove())

	hit, score, _ := eng.tt.Probe(hash, depth, -Infinity, Infinity)
	if !hit {
		t.Fatalf("root position missing from TT after search")
	}
	if score != fresh {
		t.Fatalf("TT score %d differs from search score %d", score, fresh)
	}
}

func TestTTAgePrefersEvictingOldEntries(t *testing.T) {
	var tt TransTable
	tt.init()

	// Fill one cluster with old entries, then age and insert a new one:
	// an old entry must make way even though all slots are full.
	base := uint64(7)
	for i := uint64(0); i < clusterSize; i++ {
		tt.Store(base+i*tt.clusterCount, 9, 1, ExactFlag, fm.NullMove())
	}
	tt.IncrementAge()

	newHash := base + clusterSize*tt.clusterCount
	tt.Store(newHash, 1, 2, ExactFlag, fm.NullMove())

	if hit, score, _ := tt.Probe(newHash, 1, -Infinity, Infinity); !hit || score != 2 {
		t.Fatalf("fresh entry was not stored over an aged one")
	}
}
