package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// MoveKind tells the variants of Move apart.
type MoveKind int

const (
	Step MoveKind = iota
	Jump
	Diagonal
	PlaceWall
	Resignation
)

// ResignMove is what a search returns when it gives the game up.
var ResignMove = Move{Kind: Resignation}

func (k MoveKind) String() string {
	switch k {
	case Step:
		return "Step"
	case Jump:
		return "Jump"
	case Diagonal:
		return "Diagonal"
	case PlaceWall:
		return "PlaceWall"
	case Resignation:
		return "Resignation"
	}
	return "UNKNOWN MOVE KIND"
}

// Move is one legal action. Movement moves carry the precomputed landing
// square in Target; PlaceWall moves carry Wall.
type Move struct {
	Kind   MoveKind
	Target Position
	Wall   Wall
}

// IsWall reports whether m places a wall.
func (m Move) IsWall() bool { return m.Kind == PlaceWall }

// String renders m in square notation: "e2" for a pawn move, "e3h" for a wall.
func (m Move) String() string {
	if m.Kind == Resignation {
		return "resign"
	}
	if m.IsWall() {
		sq := m.Wall.Anchor.Add(-1, -1)
		o := "h"
		if m.Wall.Orientation == Vertical {
			o = "v"
		}
		return squareName(sq) + o
	}
	return squareName(m.Target)
}

func squareName(p Position) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.X/2), p.Y/2+1)
}

func parseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] >= 'a'+Squares || s[1] < '1' || s[1] >= '1'+Squares {
		return Position{}, errors.Errorf("invalid square %q", s)
	}
	return Position{int(s[0]-'a')*2 + 1, int(s[1]-'1')*2 + 1}, nil
}

// ParseMove reads a move in the notation produced by Move.String. A square
// name is resolved against the legal movement moves of b, so the returned
// Move has the right Kind.
func ParseMove(b *Board, s string) (Move, error) {
	switch {
	case len(s) == 3 && (s[2] == 'h' || s[2] == 'v'):
		sq, err := parseSquare(s[:2])
		if err != nil {
			return Move{}, err
		}
		w := Wall{Anchor: sq.Add(1, 1), Orientation: Horizontal}
		if s[2] == 'v' {
			w.Orientation = Vertical
		}
		if !w.InBounds() {
			return Move{}, errors.Errorf("wall %q is off the board", s)
		}
		return Move{Kind: PlaceWall, Wall: w}, nil
	case len(s) == 2:
		sq, err := parseSquare(s)
		if err != nil {
			return Move{}, err
		}
		for _, m := range b.movementMoves() {
			if m.Target == sq {
				return m, nil
			}
		}
		return Move{}, errors.Wrapf(ErrIllegalMove, "%v cannot move to %s", b.Active, s)
	}
	return Move{}, errors.Errorf("unparseable move %q", s)
}
