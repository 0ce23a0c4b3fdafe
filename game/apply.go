package game

import "github.com/pkg/errors"

// Game is the contract an adversarial search needs from a game.
type Game interface {
	CurrentPlayer() Player
	AvailableMoves() []Move
	ApplyMove(m Move) error
}

var _ Game = (*Board)(nil)

// ApplyMove plays m for the active player and hands the turn over. A move
// that is not legal on b is rejected and b is left unchanged; a rejected
// wall wraps the sentinel of its WallPlacementResult.
func (b *Board) ApplyMove(m Move) error {
	if b.GameOver() {
		return errors.WithStack(ErrGameOver)
	}
	if m.IsWall() {
		if r := b.PlaceWall(m.Wall); r != Success {
			return errors.Wrapf(r.Err(), "%v wall %v", b.Active, m)
		}
		return nil
	}
	for _, legal := range b.movementMoves() {
		if legal == m {
			b.Pieces[b.Active] = m.Target
			b.Active = b.Active.Opponent()
			return nil
		}
	}
	return errors.Wrapf(ErrIllegalMove, "%v %v to %v", b.Active, m.Kind, m)
}

// PlaceWall validates w against the current board and, when every rule
// holds, commits it, charges the active player one wall and passes the turn.
// A finished game takes no walls and reports GameFinished.
func (b *Board) PlaceWall(w Wall) WallPlacementResult {
	r := b.checkWall(w)
	if r != Success {
		return r
	}
	b.mark(w, w.OccupiedCells())
	b.WallsLeft[b.Active]--
	b.Active = b.Active.Opponent()
	return Success
}

// CheckWall reports what PlaceWall would return without changing b.
func (b *Board) CheckWall(w Wall) WallPlacementResult { return b.checkWall(w) }
