package alphaquor

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/alphaquor/game"
)

// Stats summarizes a series of finished games.
type Stats struct {
	Games       int
	Wins        [2]int // by player
	Draws       int
	MeanPlies   float64
	StdDevPlies float64
	MaxPlies    int
}

// Summarize counts results and the spread of game lengths. lengths and
// winners are parallel.
func Summarize(lengths []int, winners []game.Player) Stats {
	s := Stats{Games: len(lengths)}
	if s.Games == 0 {
		return s
	}
	xs := make([]float64, len(lengths))
	for i, l := range lengths {
		xs[i] = float64(l)
		if l > s.MaxPlies {
			s.MaxPlies = l
		}
	}
	for _, w := range winners {
		switch w {
		case game.Player0, game.Player1:
			s.Wins[w]++
		default:
			s.Draws++
		}
	}
	s.MeanPlies = stat.Mean(xs, nil)
	if s.Games > 1 {
		s.StdDevPlies = stat.StdDev(xs, nil)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%d games: %v wins %d, %v wins %d, draws %d; plies mean %.1f std dev %.1f max %d",
		s.Games, game.Player0, s.Wins[game.Player0], game.Player1, s.Wins[game.Player1], s.Draws,
		s.MeanPlies, s.StdDevPlies, s.MaxPlies)
}
