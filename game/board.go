package game

import (
	"fmt"
	"strings"
)

const (
	// Size is the side of the coordinate grid. Player squares sit on odd
	// coordinates, wall sites on everything else.
	Size = 19

	// Squares is the side of the logical board a pawn moves on.
	Squares = Size / 2

	// WallsPerPlayer is the wall budget each player starts with.
	WallsPerPlayer = 10

	minSquare = 1
	maxSquare = Size - 2
	center    = Size / 2
)

// Player identifies a side. Player0 moves towards the maximum y row.
type Player int

const (
	NoPlayer Player = iota - 1
	Player0
	Player1
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Player0:
		return Player1
	case Player1:
		return Player0
	}
	return NoPlayer
}

// GoalRow is the y coordinate the player must reach.
func (p Player) GoalRow() int {
	if p == Player0 {
		return maxSquare
	}
	return minSquare
}

func (p Player) String() string {
	switch p {
	case Player0:
		return "Player0"
	case Player1:
		return "Player1"
	}
	return "NoPlayer"
}

// Position is a coordinate on the grid.
type Position struct {
	X, Y int
}

// Add returns the position offset by dx, dy.
func (p Position) Add(dx, dy int) Position { return Position{p.X + dx, p.Y + dy} }

// IsSquare reports whether p is a player square inside the board.
func (p Position) IsSquare() bool {
	return p.X%2 == 1 && p.Y%2 == 1 &&
		p.X >= minSquare && p.X <= maxSquare &&
		p.Y >= minSquare && p.Y <= maxSquare
}

// InGrid reports whether p indexes the wall grid.
func (p Position) InGrid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Board is the whole game state. It is a plain value: assigning it copies
// everything, and == compares it structurally.
type Board struct {
	Pieces [2]Position

	// Walls is indexed [y][x]. An edge site (exactly one even coordinate)
	// is true when movement across it is blocked. A post (both even) is
	// true when a wall is centred on it.
	Walls     [Size][Size]bool
	WallsLeft [2]int
	Active    Player
}

// NewBoard returns the start position.
func NewBoard() Board {
	return Board{
		Pieces: [2]Position{
			{center, minSquare},
			{center, maxSquare},
		},
		WallsLeft: [2]int{WallsPerPlayer, WallsPerPlayer},
		Active:    Player0,
	}
}

// CurrentPlayer returns the player to act.
func (b *Board) CurrentPlayer() Player { return b.Active }

// GameOver is true once either pawn reached its goal row.
func (b *Board) GameOver() bool { return b.Winner() != NoPlayer }

// Winner returns the player whose pawn reached its goal row, or NoPlayer.
func (b *Board) Winner() Player {
	switch {
	case b.Pieces[Player0].Y >= Player0.GoalRow():
		return Player0
	case b.Pieces[Player1].Y <= Player1.GoalRow():
		return Player1
	}
	return NoPlayer
}

func (b *Board) blocked(p Position) bool {
	if !p.InGrid() {
		return true
	}
	return b.Walls[p.Y][p.X]
}

// String draws the board with pawns as 0 and 1, walls as '-' and '|'.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := Position{x, y}
			switch {
			case p == b.Pieces[Player0]:
				sb.WriteByte('0')
			case p == b.Pieces[Player1]:
				sb.WriteByte('1')
			case p.IsSquare():
				sb.WriteByte('.')
			case x%2 == 0 && y%2 == 0:
				if b.Walls[y][x] {
					sb.WriteByte('+')
				} else {
					sb.WriteByte(' ')
				}
			case b.Walls[y][x] && y%2 == 0:
				sb.WriteByte('-')
			case b.Walls[y][x]:
				sb.WriteByte('|')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "walls %d/%d, to move %v\n", b.WallsLeft[Player0], b.WallsLeft[Player1], b.Active)
	return sb.String()
}
