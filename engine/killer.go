package engine

import (
	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// MaxPly bounds the search stack and sizes the per-ply tables.
const MaxPly = 128

// KillerStruct holds two quiet moves per ply that recently caused a
// beta cutoff there.
type KillerStruct struct {
	KillerMoves [MaxPly][2]fm.Move
}

// InsertKiller records a quiet cutoff move, shifting the previous first
// killer into the second slot.
func (k *KillerStruct) InsertKiller(move fm.Move, ply int) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// ClearKillers empties the table.
func (k *KillerStruct) ClearKillers() {
	nilMove := fm.NullMove()
	for ply := 0; ply < MaxPly; ply++ {
		k.KillerMoves[ply][0] = nilMove
		k.KillerMoves[ply][1] = nilMove
	}
}
