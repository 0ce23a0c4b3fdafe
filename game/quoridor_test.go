package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionIndices(t *testing.T) {
	g := New()
	require.Equal(t, 209, g.ActionSpace())

	seen := make(map[int32]bool)
	b := g.Board()
	for _, m := range b.AvailableMoves() {
		idx, err := g.MoveToNN(m)
		require.NoError(t, err)
		require.False(t, seen[idx], "%v collides at %d", m, idx)
		seen[idx] = true

		back, err := g.NNToMove(idx)
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
	assert.Len(t, g.PossibleMoves(), len(seen))

	_, err := g.NNToMove(int32(ActionSpace))
	assert.Error(t, err)
	m, err := g.NNToMove(Resign)
	require.NoError(t, err)
	assert.Equal(t, ResignMove, m)

	// a square no pawn can reach decodes to a move Check refuses
	m, err = g.NNToMove(40)
	require.NoError(t, err)
	assert.False(t, g.Check(m))
}

func TestApplyAndUndo(t *testing.T) {
	g := New()
	start := g.Clone()
	assert.Equal(t, int32(Begin), g.LastMove())

	for _, s := range []string{"e2", "e8", "c3h", "e7v"} {
		b := g.Board()
		m, err := ParseMove(&b, s)
		require.NoError(t, err)
		require.True(t, g.Check(m), s)
		require.NoError(t, g.Apply(m), s)
	}
	assert.Equal(t, 4, g.MoveNumber())
	assert.Equal(t, Player0, g.Turn())
	assert.False(t, g.Eq(start))
	assert.NotEqual(t, start.Hash(), g.Hash())

	last, err := g.NNToMove(g.LastMove())
	require.NoError(t, err)
	assert.Equal(t, "e7v", last.String())

	for i := 0; i < 4; i++ {
		g.UndoLastMove()
	}
	assert.True(t, g.Eq(start))
	assert.Equal(t, start.Hash(), g.Hash())
	g.UndoLastMove()
	assert.Zero(t, g.MoveNumber())
}

func TestIllegalApplyKeepsState(t *testing.T) {
	g := New()
	before := g.Clone()
	err := g.Apply(step(9, 5))
	assert.True(t, errors.Is(err, ErrIllegalMove), "%v", err)
	assert.True(t, g.Eq(before))
	assert.Zero(t, g.MoveNumber())
}

func TestResign(t *testing.T) {
	g := New()
	require.NoError(t, g.Apply(ResignMove))
	ended, winner := g.Ended()
	assert.True(t, ended)
	assert.Equal(t, Player1, winner)
	assert.Empty(t, g.PossibleMoves())
	assert.False(t, g.Check(step(9, 3)))
	assert.True(t, errors.Is(g.Apply(step(9, 3)), ErrGameOver))

	g.UndoLastMove()
	ended, _ = g.Ended()
	assert.False(t, ended)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	c := g.Clone()
	require.NoError(t, c.Apply(step(9, 3)))
	assert.Zero(t, g.MoveNumber())
	assert.Equal(t, NewBoard(), g.Board())
	assert.Equal(t, 1, c.MoveNumber())

	g.Reset()
	c.Reset()
	assert.True(t, g.Eq(c))
}
