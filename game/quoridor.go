package game

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Quoridor is a game in progress: the current Board plus every Board that
// led to it, so moves can be taken back.
type Quoridor struct {
	history  []Board
	moves    []int32
	resigned Player
}

var _ State = (*Quoridor)(nil)

// New returns a game at the start position.
func New() *Quoridor { return FromBoard(NewBoard()) }

// FromBoard returns a game that starts at b.
func FromBoard(b Board) *Quoridor {
	return &Quoridor{
		history:  []Board{b},
		resigned: NoPlayer,
	}
}

func (g *Quoridor) current() *Board { return &g.history[len(g.history)-1] }

func (g *Quoridor) ActionSpace() int { return ActionSpace }

// Board returns a copy of the current board.
func (g *Quoridor) Board() Board { return *g.current() }

func (g *Quoridor) Turn() Player { return g.current().Active }

func (g *Quoridor) MoveNumber() int { return len(g.moves) }

func (g *Quoridor) LastMove() int32 {
	if len(g.moves) == 0 {
		return Begin
	}
	return g.moves[len(g.moves)-1]
}

// NNToMove maps an action index to a move. A square index becomes the legal
// pawn move landing there if one exists, otherwise a Step that Check rejects.
func (g *Quoridor) NNToMove(idx int32) (Move, error) {
	switch {
	case idx == Resign:
		return ResignMove, nil
	case idx < 0 || int(idx) >= ActionSpace:
		return Move{}, errors.Errorf("action %d out of range [0, %d)", idx, ActionSpace)
	case idx >= squareActions:
		return Move{Kind: PlaceWall, Wall: allWalls[idx-squareActions]}, nil
	}
	target := Position{2*(int(idx)%Squares) + 1, 2*(int(idx)/Squares) + 1}
	for _, m := range g.current().movementMoves() {
		if m.Target == target {
			return m, nil
		}
	}
	return Move{Kind: Step, Target: target}, nil
}

func (g *Quoridor) MoveToNN(m Move) (int32, error) {
	switch m.Kind {
	case Resignation:
		return Resign, nil
	case PlaceWall:
		if !m.Wall.InBounds() {
			return 0, errors.Wrapf(ErrWallOutOfBounds, "%v", m)
		}
		return int32(squareActions + m.Wall.index()), nil
	}
	if !m.Target.IsSquare() {
		return 0, errors.Wrapf(ErrIllegalMove, "target %v is not a square", m.Target)
	}
	return int32(m.Target.Y/2*Squares + m.Target.X/2), nil
}

func (g *Quoridor) Ended() (ended bool, winner Player) {
	if g.resigned != NoPlayer {
		return true, g.resigned.Opponent()
	}
	winner = g.current().Winner()
	return winner != NoPlayer, winner
}

func (g *Quoridor) Resign(p Player) { g.resigned = p }

func (g *Quoridor) Check(m Move) bool {
	if ended, _ := g.Ended(); ended {
		return false
	}
	b := g.current()
	switch m.Kind {
	case Resignation:
		return true
	case PlaceWall:
		return b.checkWall(m.Wall) == Success
	}
	for _, legal := range b.movementMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// Apply plays m. Resignation ends the game in favour of the opponent.
func (g *Quoridor) Apply(m Move) error {
	if ended, _ := g.Ended(); ended {
		return errors.WithStack(ErrGameOver)
	}
	if m.Kind == Resignation {
		g.resigned = g.Turn()
		return nil
	}
	idx, err := g.MoveToNN(m)
	if err != nil {
		return err
	}
	next := *g.current()
	if err := next.ApplyMove(m); err != nil {
		return err
	}
	g.history = append(g.history, next)
	g.moves = append(g.moves, idx)
	return nil
}

// UndoLastMove takes back the last move, or a resignation.
func (g *Quoridor) UndoLastMove() {
	if g.resigned != NoPlayer {
		g.resigned = NoPlayer
		return
	}
	if len(g.moves) == 0 {
		return
	}
	g.history = g.history[:len(g.history)-1]
	g.moves = g.moves[:len(g.moves)-1]
}

// Reset goes back to the board the game started from.
func (g *Quoridor) Reset() {
	g.history = g.history[:1]
	g.moves = g.moves[:0]
	g.resigned = NoPlayer
}

func (g *Quoridor) PossibleMoves() []int32 {
	if ended, _ := g.Ended(); ended {
		return nil
	}
	moves := g.current().AvailableMoves()
	retVal := make([]int32, 0, len(moves))
	for _, m := range moves {
		idx, err := g.MoveToNN(m)
		if err != nil {
			panic(err) // generated moves always have an index
		}
		retVal = append(retVal, idx)
	}
	return retVal
}

func (g *Quoridor) Eq(other State) bool {
	o, ok := other.(*Quoridor)
	if !ok {
		return false
	}
	return *g.current() == *o.current() && g.resigned == o.resigned
}

func (g *Quoridor) Clone() State {
	retVal := &Quoridor{
		history:  make([]Board, len(g.history)),
		moves:    make([]int32, len(g.moves)),
		resigned: g.resigned,
	}
	copy(retVal.history, g.history)
	copy(retVal.moves, g.moves)
	return retVal
}

// Hash digests the current board, not the history.
func (g *Quoridor) Hash() [16]byte {
	b := g.current()
	buf := make([]byte, 0, 8+Size*Size/8+4)
	for _, p := range b.Pieces {
		buf = append(buf, byte(p.X), byte(p.Y))
	}
	var acc, n byte
	for y := range b.Walls {
		for x := range b.Walls[y] {
			if b.Walls[y][x] {
				acc |= 1 << n
			}
			if n++; n == 8 {
				buf = append(buf, acc)
				acc, n = 0, 0
			}
		}
	}
	buf = append(buf, acc, byte(b.WallsLeft[0]), byte(b.WallsLeft[1]), byte(b.Active), byte(g.resigned+1))
	return md5.Sum(buf)
}

func (g *Quoridor) ShowBoard() { fmt.Print(g.String()) }

func (g *Quoridor) String() string { return g.current().String() }
