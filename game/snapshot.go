package game

import (
	"encoding/gob"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Encode writes b to w. The encoding is the two pawn positions, the wall
// grid, the two budgets and the active player.
func (b *Board) Encode(w io.Writer) error {
	return errors.WithStack(gob.NewEncoder(w).Encode(b))
}

// DecodeBoard reads a board written by Encode and checks it could occur in play.
func DecodeBoard(r io.Reader) (Board, error) {
	var b Board
	if err := gob.NewDecoder(r).Decode(&b); err != nil {
		return Board{}, errors.Wrap(err, "decode board")
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the invariants every reachable board holds: pawns on
// distinct squares, budgets in range, a wall grid made of whole placements
// that neither overlap nor cross, one spent wall per placement and a path to
// goal for both players.
func (b *Board) Validate() error {
	if b.Active != Player0 && b.Active != Player1 {
		return errors.Errorf("active player %d", b.Active)
	}
	for i, p := range b.Pieces {
		if !p.IsSquare() {
			return errors.Errorf("%v pawn at %v is not on a square", Player(i), p)
		}
		if n := b.WallsLeft[i]; n < 0 || n > WallsPerPlayer {
			return errors.Errorf("%v has %d walls", Player(i), n)
		}
	}
	if b.Pieces[Player0] == b.Pieces[Player1] {
		return errors.Errorf("both pawns on %v", b.Pieces[Player0])
	}

	placed, err := b.PlacedWalls()
	if err != nil {
		return err
	}
	if spent := 2*WallsPerPlayer - b.WallsLeft[Player0] - b.WallsLeft[Player1]; spent != len(placed) {
		return errors.Errorf("%d walls on the board, %d spent", len(placed), spent)
	}
	for i, a := range placed {
		for _, c := range placed[i+1:] {
			if Overlaps(a, c) || Crosses(a, c) {
				return errors.Errorf("walls %v and %v intersect", a, c)
			}
		}
	}
	if !b.BothHavePaths() {
		return errors.New("a player has no path to goal")
	}
	return nil
}

// PlacedWalls recovers the walls marked on the grid, in generation order.
// Each run of blocked edges splits into placements in exactly one way, so an
// error means the grid holds marks no sequence of placements leaves behind.
func (b *Board) PlacedWalls() ([]Wall, error) {
	var claimed [Size][Size]bool
	var placed []Wall
	claim := func(edge Position, w Wall) error {
		cells := w.OccupiedCells()
		if cells == nil || !b.blocked(w.Anchor) || !b.blocked(cells[1]) {
			return errors.Errorf("edge %v is not part of a wall", edge)
		}
		claimed[w.Anchor.Y][w.Anchor.X] = true
		placed = append(placed, w)
		return nil
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !b.Walls[y][x] {
				continue
			}
			p := Position{x, y}
			switch {
			case p.IsSquare():
				return nil, errors.Errorf("square %v is marked", p)
			case x == 0 || y == 0 || x == Size-1 || y == Size-1:
				return nil, errors.Errorf("border site %v is marked", p)
			}
		}
	}

	// scanning a line of edges, the first blocked edge not yet covered can
	// only belong to the post after it
	for y := minPost; y <= maxPost; y += 2 {
		for x := minSquare; x <= maxSquare; x += 2 {
			if b.Walls[y][x] {
				if err := claim(Position{x, y}, Wall{Position{x + 1, y}, Horizontal}); err != nil {
					return nil, err
				}
				x += 2
			}
		}
	}
	for x := minPost; x <= maxPost; x += 2 {
		for y := minSquare; y <= maxSquare; y += 2 {
			if b.Walls[y][x] {
				if err := claim(Position{x, y}, Wall{Position{x, y + 1}, Vertical}); err != nil {
					return nil, err
				}
				y += 2
			}
		}
	}

	for y := minPost; y <= maxPost; y += 2 {
		for x := minPost; x <= maxPost; x += 2 {
			if b.Walls[y][x] && !claimed[y][x] {
				return nil, errors.Errorf("post %v has no wall", Position{x, y})
			}
		}
	}
	sort.Slice(placed, func(i, j int) bool { return placed[i].index() < placed[j].index() })
	return placed, nil
}
