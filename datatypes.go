package alphaquor

import (
	"io"

	"github.com/alphaquor/game"
)

// GameEncoder encodes a game state as a slice of floats
type GameEncoder func(a game.State) []float32

// Example is a representation of an example.
type Example struct {
	Board  []float32
	Policy []float32
	Value  float32
}

// Inferer is anything that can evaluate a position: a prior over the action
// space and a value in [-1, 1] for the player to move.
type Inferer interface {
	Infer(g game.State) (policy []float32, value float32, err error)
	io.Closer
}

// InfererFactory makes the evaluators of an Agent's pool, one per search worker.
type InfererFactory func() (Inferer, error)

// ExecLogger is anything that can return the execution log.
type ExecLogger interface {
	ExecLog() string
}
