package alphaquor

import (
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/alphaquor/game"
	"github.com/alphaquor/mcts"
)

// An Agent is a player backed by a search tree and a pool of evaluators.
type Agent struct {
	MCTS   *mcts.MCTS
	Player game.Player
	Enc    GameEncoder

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	name     string
	workers  int
	factory  InfererFactory
	inferer  chan Inferer
	inferers []Inferer
}

// NewAgent makes an agent searching g with conf, evaluating with inferers made by factory.
func NewAgent(name string, g game.State, conf mcts.Config, enc GameEncoder, factory InfererFactory) *Agent {
	workers := conf.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	a := &Agent{
		Enc:     enc,
		Player:  game.NoPlayer,
		name:    name,
		workers: workers,
		factory: factory,
	}
	a.MCTS = mcts.New(g, conf, a)
	return a
}

func (a *Agent) Name() string { return a.name }

// SwitchToInference fills the evaluator pool. It does nothing if the pool is already filled.
func (a *Agent) SwitchToInference() (err error) {
	a.Lock()
	defer a.Unlock()
	if a.inferer != nil {
		return nil
	}
	pool := make(chan Inferer, a.workers)
	var made []Inferer
	for i := 0; i < a.workers; i++ {
		var inf Inferer
		if inf, err = a.factory(); err != nil {
			for _, m := range made {
				m.Close()
			}
			return err
		}
		made = append(made, inf)
		pool <- inf
	}
	a.inferer, a.inferers = pool, made
	return nil
}

// Infer infers a bunch of moves based on the game state. This is mainly used to implement a Inferer such that the MCTS search can use it.
// A failed evaluation is logged and yields a uniform prior.
func (a *Agent) Infer(g game.State) (policy []float32, value float32) {
	inf := <-a.inferer
	defer func() { a.inferer <- inf }()

	var err error
	policy, value, err = inf.Infer(g)
	if err != nil {
		entry := log.WithField("agent", a.name).WithError(err)
		if el, ok := inf.(ExecLogger); ok {
			entry = entry.WithField("exec_log", el.ExecLog())
		}
		entry.Warn("inference failed")
		return nil, 0
	}
	return policy, value
}

// Search searches the game state and returns a suggested move.
func (a *Agent) Search(g game.State) (game.Move, error) {
	if err := a.SwitchToInference(); err != nil {
		return game.Move{}, err
	}
	a.MCTS.SetGame(g)
	return a.MCTS.Search(), nil
}

// Close empties the evaluator pool and closes every evaluator in it.
// The agent can search again afterwards.
func (a *Agent) Close() error {
	a.Lock()
	defer a.Unlock()
	if a.inferer == nil {
		return nil
	}
	close(a.inferer)
	var errs error
	for _, inferer := range a.inferers {
		if err := inferer.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	a.inferer, a.inferers = nil, nil
	return errs
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}

func (a *Agent) record(winner game.Player) {
	a.Lock()
	defer a.Unlock()
	switch winner {
	case game.NoPlayer:
		a.Draw++
	case a.Player:
		a.Wins++
	default:
		a.Loss++
	}
}
