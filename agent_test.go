package alphaquor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphaquor/game"
	"github.com/alphaquor/mcts"
)

// flaky fails every inference and every Close.
type flaky struct {
	closed *int
}

func (f flaky) Infer(game.State) ([]float32, float32, error) {
	return nil, 0, errors.New("no evaluation")
}

func (f flaky) ExecLog() string { return "flaky" }

func (f flaky) Close() error {
	*f.closed++
	return errors.New("close failed")
}

func testMCTSConfig() mcts.Config {
	conf := mcts.DefaultConfig()
	conf.Timeout = 0
	conf.Budget = 50
	conf.NumWorkers = 2
	conf.Seed = 3
	return conf
}

func TestAgentPool(t *testing.T) {
	var made, closed int
	factory := func() (Inferer, error) {
		made++
		return flaky{closed: &closed}, nil
	}
	g := game.New()
	agent := NewAgent("flaky", g, testMCTSConfig(), game.InputEncoder, factory)
	assert.Equal(t, "flaky", agent.Name())

	require.NoError(t, agent.SwitchToInference())
	require.NoError(t, agent.SwitchToInference())
	assert.Equal(t, 2, made)

	// failed inferences fall back to a uniform prior
	move, err := agent.Search(g)
	require.NoError(t, err)
	assert.True(t, g.Check(move), "%v", move)

	err = agent.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors")
	assert.Equal(t, 2, closed)
	assert.NoError(t, agent.Close())

	_, err = agent.Search(g)
	require.NoError(t, err)
	assert.Equal(t, 4, made)
}

func TestAgentFactoryError(t *testing.T) {
	var closed int
	calls := 0
	factory := func() (Inferer, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("out of evaluators")
		}
		return flaky{closed: &closed}, nil
	}
	agent := NewAgent("broken", game.New(), testMCTSConfig(), game.InputEncoder, factory)
	_, err := agent.Search(game.New())
	assert.EqualError(t, err, "out of evaluators")
	assert.Equal(t, 1, closed, "partial pool is closed")
}

func TestAgentRecord(t *testing.T) {
	agent := NewAgent("a", game.New(), testMCTSConfig(), game.InputEncoder, HeuristicFactory(1))
	agent.Player = game.Player1
	agent.record(game.Player1)
	agent.record(game.Player0)
	agent.record(game.NoPlayer)
	agent.record(game.Player1)
	assert.Equal(t, float32(2), agent.Wins)
	assert.Equal(t, float32(1), agent.Loss)
	assert.Equal(t, float32(1), agent.Draw)

	agent.resetStats()
	assert.Zero(t, agent.Wins+agent.Loss+agent.Draw)
}
