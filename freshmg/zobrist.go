package freshmg

import (
	"math/rand"
	"sync"
)

// Zobrist hashing tables for pieces, castling, en passant file and side
// to move. A position's key is the XOR of the keys of its features; the
// board keeps it current across MakeMove/UnmakeMove.
var zobristPiece [15][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

var zobristOnce sync.Once

func init() {
	Initialize()
}

// Initialize fills the Zobrist key tables. Idempotent; it also runs on
// package init, so calling it again is always safe.
func Initialize() {
	zobristOnce.Do(func() {
		// Fixed seed so keys are reproducible in tests.
		rnd := rand.New(rand.NewSource(0xF4E5))

		for p := 0; p < 15; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[p][sq] = rnd.Uint64()
			}
		}
		for cr := 0; cr < 16; cr++ {
			zobristCastle[cr] = rnd.Uint64()
		}
		for f := 0; f < 8; f++ {
			zobristEnPassant[f] = rnd.Uint64()
		}
		zobristSide = rnd.Uint64()
	})
}

// GenerateHashKey computes the Zobrist key of the position from scratch.
func GenerateHashKey(b *Board) uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	key ^= zobristCastle[b.castlingRights]
	if b.epTarget.IsValid() {
		key ^= zobristEnPassant[b.epTarget.Col]
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}

// UpdateHashKey returns the position key after move has been played.
// MakeMove maintains the key incrementally, so this simply reads it off
// the post-move board; oldKey and move document the data flow of the
// caller, which threads keys through its recursion rather than
// recomputing them per node.
func UpdateHashKey(oldKey uint64, move Move, boardAfter *Board) uint64 {
	_ = oldKey
	_ = move
	return boardAfter.hash
}
