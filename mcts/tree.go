package mcts

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/alphaquor/game"
	"github.com/chewxy/math32"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Config is the structure to configure the MCTS multitree (poorly named Tree)
type Config struct {
	// PUCT is the proportion of polynomial upper confidence trees to keep. Between 1 and 0
	PUCT    float32       `json:"puct"`
	Timeout time.Duration `json:"timeout"` // zero means only Budget stops a search

	RandomCount       int     `json:"random_count"` // if the move number is less than this, we should randomize
	Budget            int32   `json:"budget"`       // iteration budget
	RandomMinVisits   uint32  `json:"random_min_visits"`
	RandomTemperature float32 `json:"random_temperature"`
	MaxDepth          int     `json:"max_depth"`
	NumWorkers        int     `json:"num_workers"` // playout goroutines, 0 means one per CPU
	Seed              uint64  `json:"seed"`        // zero seeds from the clock

	LogLevel logrus.Level `json:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		PUCT:              1.0,
		Timeout:           100 * time.Millisecond,
		Budget:            10000,
		RandomTemperature: 1,
		MaxDepth:          400,
		LogLevel:          logrus.InfoLevel,
	}
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs error
	if !(c.PUCT > 0 && c.PUCT <= 1) {
		errs = multierror.Append(errs, errors.Errorf("puct %v not in (0, 1]", c.PUCT))
	}
	if c.Budget <= 0 && c.Timeout <= 0 {
		errs = multierror.Append(errs, errors.New("search needs a budget or a timeout"))
	}
	if c.Budget < 0 || c.Timeout < 0 {
		errs = multierror.Append(errs, errors.New("negative budget or timeout"))
	}
	if c.MaxDepth <= 0 {
		errs = multierror.Append(errs, errors.Errorf("max depth %d", c.MaxDepth))
	}
	if c.NumWorkers < 0 {
		errs = multierror.Append(errs, errors.Errorf("num workers %d", c.NumWorkers))
	}
	if c.RandomCount > 0 && c.RandomTemperature <= 0 {
		errs = multierror.Append(errs, errors.Errorf("random temperature %v", c.RandomTemperature))
	}
	return errs
}

// sa is a state-action tuple, used for storing results
type sa struct {
	s [16]byte
	a int32
}

// MCTS is essentially a "global" manager of sorts for the memories. The goal is to build MCTS without much pointer chasing.
type MCTS struct {
	sync.RWMutex
	Config
	nn   Inferencer
	rand *rand.Rand

	// memory related fields
	nodes    []*Node
	children [][]naughty
	root     naughty

	current  game.State
	playouts int32 // atomic

	// visit counts of the root children after each search, for building policy vectors
	cachedPolicies map[sa]float32

	*lumberjack
}

func New(g game.State, conf Config, nn Inferencer) *MCTS {
	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if conf.MaxDepth <= 0 {
		conf.MaxDepth = DefaultConfig().MaxDepth
	}
	return &MCTS{
		Config: conf,
		nn:     nn,
		rand:   rand.New(rand.NewSource(seed)),

		nodes:    make([]*Node, 0, 12288),
		children: make([][]naughty, 0, 12288),
		root:     nilNode,

		current:        g,
		cachedPolicies: make(map[sa]float32),
		lumberjack:     makeLumberJack(conf.LogLevel),
	}
}

// New creates a new node
func (t *MCTS) New(move int32, score float32) naughty {
	t.Lock()
	defer t.Unlock()
	n := naughty(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		move:   move,
		status: uint32(Active),
		psa:    score,
		id:     n,
		tree:   t,
	})
	t.children = append(t.children, nil)
	return n
}

// SetGame sets the game
func (t *MCTS) SetGame(g game.State) {
	t.Lock()
	t.current = g
	t.Unlock()
}

func (t *MCTS) Nodes() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.nodes)
}

// Playouts returns how many playouts the last search completed.
func (t *MCTS) Playouts() int32 { return atomic.LoadInt32(&t.playouts) }

// nodeFromNaughty gets the node given the pointer.
func (t *MCTS) nodeFromNaughty(ptr naughty) *Node {
	t.RLock()
	defer t.RUnlock()
	return t.nodes[int(ptr)]
}

// Children returns a list of children
func (t *MCTS) Children(of naughty) []naughty {
	t.RLock()
	defer t.RUnlock()
	return t.children[of]
}

func (t *MCTS) setChildren(of naughty, kids []naughty) {
	t.Lock()
	t.children[of] = kids
	t.Unlock()
}

// Policies returns the visit distribution the last search of g produced,
// indexed by action.
func (t *MCTS) Policies(g game.State) ([]float32, error) {
	hash := g.Hash()
	var sum float32
	retVal := make([]float32, g.ActionSpace())
	for _, idx := range g.PossibleMoves() {
		if int(idx) >= len(retVal) {
			return nil, errors.Errorf("action %d outside action space %d", idx, len(retVal))
		}
		prob := t.cachedPolicies[sa{s: hash, a: idx}]
		retVal[idx] = prob
		sum += prob
	}
	if sum == 0 {
		return retVal, nil
	}
	for i := range retVal {
		retVal[i] /= sum
	}
	return retVal, nil
}

// randomizeChildren proportionally randomizes the children nodes by proportion of the visit.
// children must be sorted by visits, most visited first.
func (t *MCTS) randomizeChildren(children []naughty) {
	var accum, norm float32
	var accumVector []float32
	for _, kid := range children {
		visits := t.nodeFromNaughty(kid).Visits()
		if norm == 0 {
			norm = float32(visits)

			// nonsensical options
			if visits <= t.Config.RandomMinVisits {
				return
			}
		}
		if visits > t.Config.RandomMinVisits {
			accum += math32.Pow(float32(visits)/norm, 1/t.Config.RandomTemperature)
			accumVector = append(accumVector, accum)
		}
	}
	rnd := t.rand.Float32() * accum // uniform distro: rnd() * (max-min) + min
	var index int
	for i, a := range accumVector {
		if rnd < a {
			index = i
			break
		}
	}
	if index == 0 {
		return
	}

	children[0], children[index] = children[index], children[0]
}

// resetTree drops every node. The cached policies survive.
func (t *MCTS) resetTree() {
	t.Lock()
	defer t.Unlock()
	t.nodes = t.nodes[:0]
	t.children = t.children[:0]
	t.root = nilNode
	atomic.StoreInt32(&t.playouts, 0)
}

// Reset drops the tree and the cached policies.
func (t *MCTS) Reset() {
	t.resetTree()
	t.Lock()
	t.cachedPolicies = make(map[sa]float32)
	t.Unlock()
}
