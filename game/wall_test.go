package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func h(x, y int) Wall { return Wall{Position{x, y}, Horizontal} }
func v(x, y int) Wall { return Wall{Position{x, y}, Vertical} }

func TestOccupiedCells(t *testing.T) {
	tests := []struct {
		name string
		wall Wall
		want []Position
	}{
		{"Horizontal", h(4, 6), []Position{{3, 6}, {5, 6}}},
		{"Vertical", v(4, 6), []Position{{4, 5}, {4, 7}}},
		{"TopLeftPost", h(2, 2), []Position{{1, 2}, {3, 2}}},
		{"BottomRightPost", v(16, 16), []Position{{16, 15}, {16, 17}}},
		{"OddAnchor", h(3, 6), nil},
		{"EdgeSiteAnchor", v(4, 5), nil},
		{"BorderPost", h(0, 2), nil},
		{"PastLastPost", v(18, 16), nil},
		{"FarAway", h(-1000, 1<<40), nil},
		{"BadOrientation", Wall{Position{4, 4}, Orientation(7)}, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.wall.OccupiedCells())
			assert.Equal(t, tt.want != nil, tt.wall.InBounds())
		})
	}
}

func TestOverlapsAndCrosses(t *testing.T) {
	tests := []struct {
		name              string
		a, b              Wall
		overlaps, crosses bool
	}{
		{"SameWall", h(4, 6), h(4, 6), true, false},
		{"ShiftedByOnePost", h(4, 6), h(6, 6), true, false},
		{"EndToEnd", h(4, 6), h(8, 6), false, false},
		{"VerticalStacked", v(4, 6), v(4, 8), true, false},
		{"VerticalEndToEnd", v(4, 6), v(4, 10), false, false},
		{"SamePost", h(4, 6), v(4, 6), false, true},
		{"SamePostSwapped", v(4, 6), h(4, 6), false, true},
		{"TouchingTee", h(4, 6), v(6, 6), false, false},
		{"Below", h(4, 6), v(4, 8), false, false},
		{"OutOfBounds", h(4, 6), v(4, 7), false, false},
		{"ParallelRows", h(4, 6), h(4, 8), false, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, Overlaps(tt.a, tt.b), "Overlaps")
			assert.Equal(t, tt.overlaps, Overlaps(tt.b, tt.a), "Overlaps is symmetric")
			assert.Equal(t, tt.crosses, Crosses(tt.a, tt.b), "Crosses")
			assert.Equal(t, tt.crosses, Crosses(tt.b, tt.a), "Crosses is symmetric")
		})
	}
}

// The grid marks made at placement must be exactly what later queries read.
func TestPlacementMarksOccupiedCells(t *testing.T) {
	for _, w := range allWalls {
		b := NewBoard()
		require.Equal(t, Success, b.PlaceWall(w), "%v", w)

		var marked []Position
		for y := range b.Walls {
			for x := range b.Walls[y] {
				if b.Walls[y][x] {
					marked = append(marked, Position{x, y})
				}
			}
		}
		want := append(w.OccupiedCells(), w.Anchor)
		assert.ElementsMatch(t, want, marked, "%v", w)

		for _, other := range allWalls {
			r := b.CheckWall(other)
			switch {
			case Overlaps(w, other):
				assert.Equal(t, Overlapping, r, "%v then %v", w, other)
			case Crosses(w, other):
				assert.Equal(t, Crossing, r, "%v then %v", w, other)
			default:
				assert.Equal(t, Success, r, "%v then %v", w, other)
			}
		}
	}
}

func TestAllWallsOrder(t *testing.T) {
	require.Len(t, allWalls, wallActions)
	assert.Equal(t, h(2, 2), allWalls[0])
	assert.Equal(t, v(2, 2), allWalls[1])
	assert.Equal(t, h(4, 2), allWalls[2])
	assert.Equal(t, h(2, 4), allWalls[16])
	assert.Equal(t, v(16, 16), allWalls[wallActions-1])
}

// On boards reached in play, the grid based wall checks give the verdicts
// Overlaps and Crosses give against the walls recovered from the grid, and
// every board passes Validate.
func TestGridChecksAgreeWithWallRelations(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for g := 0; g < 4; g++ {
		b := NewBoard()
		for ply := 0; ply < 40 && !b.GameOver(); ply++ {
			require.NoError(t, b.Validate(), "ply %d\n%v", ply, b.String())
			placed, err := b.PlacedWalls()
			require.NoError(t, err)
			require.Len(t, placed, 2*WallsPerPlayer-b.WallsLeft[Player0]-b.WallsLeft[Player1])

			if b.WallsLeft[b.Active] > 0 {
				for _, w := range allWalls {
					var overlaps, crosses bool
					for _, p := range placed {
						overlaps = overlaps || Overlaps(p, w)
						crosses = crosses || Crosses(p, w)
					}
					got := b.CheckWall(w)
					switch {
					case overlaps:
						assert.Equal(t, Overlapping, got, "%v", w)
					case crosses:
						assert.Equal(t, Crossing, got, "%v", w)
					default:
						assert.Contains(t, []WallPlacementResult{Success, BlocksPath}, got, "%v", w)
					}
				}
			}

			moves := b.AvailableMoves()
			// mostly walls so the grid fills up
			m := moves[r.Intn(len(moves))]
			if n := len(b.movementMoves()); n > 0 && r.Intn(3) == 0 {
				m = moves[r.Intn(n)]
			}
			require.NoError(t, b.ApplyMove(m))
		}
	}
}
