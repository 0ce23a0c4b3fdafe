package alphaquor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphaquor/game"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]int{10, 20, 30}, []game.Player{game.Player0, game.NoPlayer, game.Player0})
	assert.Equal(t, 3, s.Games)
	assert.Equal(t, [2]int{2, 0}, s.Wins)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 30, s.MaxPlies)
	assert.InDelta(t, 20, s.MeanPlies, 1e-9)
	assert.InDelta(t, 10, s.StdDevPlies, 1e-9)
	assert.Contains(t, s.String(), "Player0 wins 2")

	assert.Equal(t, Stats{}, Summarize(nil, nil))
	one := Summarize([]int{7}, []game.Player{game.Player1})
	assert.Equal(t, float64(7), one.MeanPlies)
	assert.Zero(t, one.StdDevPlies)
}
