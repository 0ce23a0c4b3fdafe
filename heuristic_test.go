package alphaquor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphaquor/game"
)

func index(t *testing.T, g game.State, m game.Move) int32 {
	idx, err := g.MoveToNN(m)
	require.NoError(t, err)
	return idx
}

func TestHeuristicStart(t *testing.T) {
	inf, err := HeuristicFactory(1)()
	require.NoError(t, err)
	g := game.New()

	policy, value, err := inf.Infer(g)
	require.NoError(t, err)
	assert.Zero(t, value)
	require.Len(t, policy, game.ActionSpace)

	var sum float32
	for _, p := range policy {
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-4)

	down := game.Move{Kind: game.Step, Target: game.Position{X: 9, Y: 3}}
	left := game.Move{Kind: game.Step, Target: game.Position{X: 7, Y: 1}}
	assert.True(t, policy[index(t, g, down)] > policy[index(t, g, left)])
	assert.Zero(t, policy[0], "a1 is not reachable")
	assert.NoError(t, inf.Close())
}

func TestHeuristicValue(t *testing.T) {
	h := &Heuristic{Temperature: 1}
	b := game.NewBoard()
	b.Pieces[game.Player0] = game.Position{X: 9, Y: 15}

	_, ahead, err := h.Infer(game.FromBoard(b))
	require.NoError(t, err)
	assert.True(t, ahead > 0)

	b.Active = game.Player1
	_, behind, err := h.Infer(game.FromBoard(b))
	require.NoError(t, err)
	assert.InDelta(t, -ahead, behind, 1e-6)
	assert.True(t, ahead < 1)
}

func TestHeuristicFactoryRejectsTemperature(t *testing.T) {
	_, err := HeuristicFactory(0)()
	assert.Error(t, err)
}
