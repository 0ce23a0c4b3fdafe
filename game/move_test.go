package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{step(9, 3), "e2"},
		{jump(1, 17), "a9"},
		{diagonal(17, 1), "i1"},
		{wall(h(2, 2)), "a1h"},
		{wall(v(16, 16)), "h8v"},
		{wall(h(10, 4)), "e2h"},
		{ResignMove, "resign"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.move.String())
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	b.Pieces[Player1] = Position{9, 3}
	for _, m := range b.AvailableMoves() {
		got, err := ParseMove(&b, m.String())
		require.NoError(t, err, m.String())
		assert.Equal(t, m, got)
	}
}

func TestParseMoveErrors(t *testing.T) {
	b := NewBoard()
	for _, s := range []string{"", "z1", "a0", "e10", "i1h", "a9v", "e2x", "e5"} {
		_, err := ParseMove(&b, s)
		assert.Error(t, err, s)
	}
}
