package engine

import (
	"strings"

	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// PVLine is the principal variation found below a node.
type PVLine struct {
	Moves []fm.Move
}

// Clear empties the line.
func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

// Update rebuilds the line as move followed by the child's line.
func (pv *PVLine) Update(move fm.Move, childPV PVLine) {
	pv.Moves = pv.Moves[:0]
	pv.Moves = append(pv.Moves, move)
	pv.Moves = append(pv.Moves, childPV.Moves...)
}

// GetPVMove returns the first move of the line, or the null move when empty.
func (pv *PVLine) GetPVMove() fm.Move {
	if len(pv.Moves) == 0 {
		return fm.NullMove()
	}
	return pv.Moves[0]
}

// Clone returns an independent copy of the line.
func (pv *PVLine) Clone() PVLine {
	moves := make([]fm.Move, len(pv.Moves))
	copy(moves, pv.Moves)
	return PVLine{Moves: moves}
}

func (pv *PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
