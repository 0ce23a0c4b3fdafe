package alphaquor

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/alphaquor/game"
)

func makeExamples(n int) []Example {
	exs := make([]Example, n)
	for i := range exs {
		exs[i] = Example{
			Board:  make([]float32, exampleBoardSize),
			Policy: make([]float32, game.ActionSpace),
			Value:  float32(i%3) - 1,
		}
		exs[i].Board[i] = 1
		exs[i].Policy[i] = 1
	}
	return exs
}

func TestExamplesRoundTrip(t *testing.T) {
	exs := makeExamples(5)
	var buf bytes.Buffer
	require.NoError(t, SaveExamples(&buf, exs))
	got, err := LoadExamples(&buf)
	require.NoError(t, err)
	assert.Equal(t, exs, got)
}

func TestLoadExamplesRejects(t *testing.T) {
	tests := []struct {
		name   string
		mangle func(ex *Example)
	}{
		{"Board", func(ex *Example) { ex.Board = ex.Board[:10] }},
		{"Policy", func(ex *Example) { ex.Policy = append(ex.Policy, 0) }},
		{"Value", func(ex *Example) { ex.Value = 2 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			exs := makeExamples(3)
			tt.mangle(&exs[1])
			var buf bytes.Buffer
			require.NoError(t, SaveExamples(&buf, exs))
			_, err := LoadExamples(&buf)
			assert.Error(t, err)
		})
	}
}

func TestPrepareExamples(t *testing.T) {
	xs, policies, values, err := PrepareExamples(makeExamples(4))
	require.NoError(t, err)
	assert.Equal(t, []int{4, game.Features, game.Squares, game.Squares}, []int(xs.Shape()))
	assert.Equal(t, []int{4, game.ActionSpace}, []int(policies.Shape()))
	assert.Equal(t, []int{4}, []int(values.Shape()))

	v, err := policies.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)

	_, _, _, err = PrepareExamples(nil)
	assert.Error(t, err)
}

func TestShuffleExamples(t *testing.T) {
	exs := makeExamples(20)
	shuffleExamples(rand.New(rand.NewSource(9)), exs)

	values := make([]float64, len(exs))
	moved := false
	for i, ex := range exs {
		values[i] = float64(ex.Value)
		if ex.Policy[i] != 1 {
			moved = true
		}
	}
	assert.True(t, moved)
	sort.Float64s(values)
	assert.Equal(t, float64(-1), values[0])
	assert.Equal(t, float64(1), values[len(values)-1])
}
