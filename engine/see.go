package engine

import (
	fm "github.com/danefroelicher2/chess-engine-fresh/freshmg"
)

// seeCapture estimates the material delta of initiating a capture
// sequence on move.To: the victim's value minus the best the defender
// can recover by exchanging on that square. Returns 0 for non-captures
// (including en passant, whose target square is empty).
func seeCapture(b *fm.Board, move fm.Move) int32 {
	captured := b.GetPieceAt(move.To)
	if captured == fm.NoPiece {
		return 0
	}
	moving := b.GetPieceAt(move.From)
	if moving == fm.NoPiece {
		return 0
	}

	used := uint64(1) << uint(move.From.Index())
	return getPieceValue(captured.Type()) - see(b, move.To, moving.Color(), getPieceValue(moving.Type()), used)
}

// see returns the best material the side opposing side can gain by
// continuing the exchange on square, clamped at zero since either side
// may stand pat at any point. Attackers are scanned in row-major order
// and the least valuable one recaptures first; used marks pieces already
// spent in the sequence. Pins are not modeled.
func see(b *fm.Board, square fm.Position, side fm.Color, captureValue int32, used uint64) int32 {
	attackerPos := fm.NoPosition
	attackerValue := Infinity
	attackerType := fm.PieceTypeNone

	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			pos := fm.Position{Row: row, Col: col}
			if used&(1<<uint(pos.Index())) != 0 {
				continue
			}
			piece := b.GetPieceAt(pos)
			if piece == fm.NoPiece || piece.Color() == side {
				continue
			}
			if !b.AttacksSquare(pos, square) {
				continue
			}
			if value := getPieceValue(piece.Type()); value < attackerValue {
				attackerValue = value
				attackerPos = pos
				attackerType = piece.Type()
			}
		}
	}

	// No attacker: the previous capture ended the sequence.
	if attackerType == fm.PieceTypeNone {
		return 0
	}

	used |= uint64(1) << uint(attackerPos.Index())
	score := captureValue - see(b, square, side.Other(), attackerValue, used)

	return Max(score, 0)
}
