package game

import "github.com/pkg/errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")

	ErrNoWallsRemaining = errors.New("no walls remaining")
	ErrWallOutOfBounds  = errors.New("wall out of bounds")
	ErrWallOverlaps     = errors.New("wall overlaps an existing wall")
	ErrWallCrosses      = errors.New("wall crosses an existing wall")
	ErrWallBlocksPath   = errors.New("wall blocks a path to goal")
)

// WallPlacementResult is the outcome of trying to place a wall. Anything but
// Success leaves the board as it was.
type WallPlacementResult int

const (
	Success WallPlacementResult = iota
	NoWallsRemaining
	OutOfBounds
	Overlapping
	Crossing
	BlocksPath
	GameFinished
)

func (r WallPlacementResult) String() string {
	switch r {
	case Success:
		return "Success"
	case NoWallsRemaining:
		return "NoWallsRemaining"
	case OutOfBounds:
		return "OutOfBounds"
	case Overlapping:
		return "Overlapping"
	case Crossing:
		return "Crossing"
	case BlocksPath:
		return "BlocksPath"
	case GameFinished:
		return "GameFinished"
	}
	return "UNKNOWN RESULT"
}

// Err returns the sentinel error for r, nil on Success.
func (r WallPlacementResult) Err() error {
	switch r {
	case Success:
		return nil
	case NoWallsRemaining:
		return ErrNoWallsRemaining
	case OutOfBounds:
		return ErrWallOutOfBounds
	case Overlapping:
		return ErrWallOverlaps
	case Crossing:
		return ErrWallCrosses
	case BlocksPath:
		return ErrWallBlocksPath
	case GameFinished:
		return ErrGameOver
	}
	return ErrIllegalMove
}
