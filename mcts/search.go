package mcts

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/alphaquor/game"
	"github.com/chewxy/math32"
)

/*
Here lies the majority of the MCTS search code, while node.go and tree.go handles the data structure stuff.

Every playout works on its own clone of the root state, so workers never
share a mutable board.
*/

// Inferencer is essentially the evaluator: a prior over actions and a value
// in [-1, 1] for the player to move.
type Inferencer interface {
	Infer(state game.State) (policy []float32, value float32)
}

// Result is a NaN tagged floating point, used to represent the reuslts.
type Result float32

const (
	noResultBits = 0x7FE00000
)

func noResult() Result {
	return Result(math32.Float32frombits(noResultBits))
}

// isNullResult returns true if the Result (a NaN tagged number) is noResult
func isNullResult(r Result) bool {
	b := math32.Float32bits(float32(r))
	return b == noResultBits
}

type searchState struct {
	tree     *MCTS
	depth    int
	maxDepth int
}

// Search searches the current game and returns the move to play, or
// game.ResignMove when there is nothing worth playing.
func (t *MCTS) Search() game.Move {
	t.resetTree()
	t.root = t.New(game.Begin, 1)
	t.prepareRoot(t.current)
	if !t.nodeFromNaughty(t.root).HasChildren() {
		t.log("Move Number %d, no children, resigning", t.current.MoveNumber())
		return game.ResignMove
	}

	workers := t.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.Background(), func() {}
	if t.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
	}
	defer cancel()

	var iter int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go t.doSearch(ctx, &iter, &wg)
	}
	wg.Wait()

	best := t.bestMove()
	if best == game.Resign {
		return game.ResignMove
	}
	retVal, err := t.current.NNToMove(best)
	if err != nil {
		t.log("Move Number %d, bad best move %d: %v", t.current.MoveNumber(), best, err)
		return game.ResignMove
	}
	t.log("Move Number %d, Iterations %d Playouts: %v Nodes: %v. Best: %v",
		t.current.MoveNumber(), iter, atomic.LoadInt32(&t.playouts), t.Nodes(), retVal)

	hash := t.current.Hash()
	for _, kid := range t.Children(t.root) {
		child := t.nodeFromNaughty(kid)
		t.cachedPolicies[sa{hash, child.Move()}] = float32(child.Visits())
	}
	return retVal
}

func (t *MCTS) doSearch(ctx context.Context, iterBudget *int32, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if t.Budget > 0 && atomic.AddInt32(iterBudget, 1) > t.Budget {
			return
		}
		if t.Budget <= 0 {
			atomic.AddInt32(iterBudget, 1)
		}

		s := &searchState{tree: t, maxDepth: t.MaxDepth}
		res := s.pipeline(t.current.Clone(), t.root)
		if !isNullResult(res) {
			atomic.AddInt32(&t.playouts, 1)
		}
	}
}

// pipeline is a recursive MCTS pipeline:
//	SELECT, EXPAND, SIMULATE, BACKPROPAGATE.
//
// Because of the recursive nature, the pipeline is altered a bit to be this:
//	EXPAND and SIMULATE, SELECT and RECURSE, BACKPROPAGATE.
//
// The returned value is from the point of view of the player who moved into
// current, which is also the point of view the node's Q(s,a) is kept in.
func (s *searchState) pipeline(current game.State, start naughty) (retVal Result) {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.maxDepth {
		return noResult()
	}

	t := s.tree
	n := t.nodeFromNaughty(start)

	if ended, winner := current.Ended(); ended {
		switch winner {
		case game.NoPlayer:
			retVal = 0
		case current.Turn():
			retVal = -1
		default:
			retVal = 1
		}
		n.Update(float32(retVal))
		return retVal
	}

	// EXPAND and SIMULATE
	if !n.HasChildren() {
		switch atomic.LoadInt32(&n.expansion) {
		case expanding:
			return noResult()
		case unexpanded:
			value, ok := s.expandAndSimulate(start, current)
			if !ok {
				return noResult()
			}
			retVal = Result(-value)
			n.Update(float32(retVal))
			return retVal
		}
		// children are published before the expansion is marked done
		if !n.HasChildren() {
			// no legal move for the player to act
			retVal = 1
			n.Update(float32(retVal))
			return retVal
		}
	}

	// SELECT and RECURSE
	kid := n.Select()
	if !kid.isValid() {
		return noResult()
	}
	next := t.nodeFromNaughty(kid)
	move, err := current.NNToMove(next.Move())
	if err == nil {
		err = current.Apply(move)
	}
	if err != nil {
		t.log("\t%p pipeline: invalid child %v: %v", s, next, err)
		next.Invalidate()
		return noResult()
	}
	child := s.pipeline(current, kid)
	if isNullResult(child) {
		return child
	}

	// BACKPROPAGATE
	retVal = -child
	n.Update(float32(retVal))
	return retVal
}

// expandAndSimulate creates the children of parent with priors from the
// inferencer and returns its value for the player to move. ok is false when
// another worker got to parent first.
func (s *searchState) expandAndSimulate(parent naughty, state game.State) (value float32, ok bool) {
	t := s.tree
	n := t.nodeFromNaughty(parent)
	if !atomic.CompareAndSwapInt32(&n.expansion, unexpanded, expanding) {
		return 0, false
	}
	defer atomic.StoreInt32(&n.expansion, expanded)

	var policy []float32
	policy, value = t.nn.Infer(state)

	var nodelist []pair
	var legalSum float32
	for _, idx := range state.PossibleMoves() {
		var p float32
		if int(idx) < len(policy) {
			p = policy[idx]
		}
		nodelist = append(nodelist, pair{Score: p, Move: idx})
		legalSum += p
	}
	t.log("\t\t%p Available Moves %d: %v", s, len(nodelist), nodelist)
	if len(nodelist) == 0 {
		t.log("\t\tNodelist is empty")
		return value, true
	}

	if legalSum > math32.SmallestNonzeroFloat32 {
		// re normalize
		for i := range nodelist {
			nodelist[i].Score /= legalSum
		}
	} else {
		prob := 1 / float32(len(nodelist))
		for i := range nodelist {
			nodelist[i].Score = prob
		}
	}
	sort.Stable(byScore(nodelist))

	kids := make([]naughty, 0, len(nodelist))
	for _, p := range nodelist {
		kids = append(kids, t.New(p.Move, p.Score))
	}
	t.setChildren(parent, kids)
	n.SetHasChild(true)
	return value, true
}

// bestMove returns the action of the most visited root child, or
// game.Resign if the root has none.
func (t *MCTS) bestMove() int32 {
	children := append([]naughty(nil), t.Children(t.root)...)
	t.log("%p Children: ", t)
	for _, child := range children {
		t.log("\t\t\t%v", t.nodeFromNaughty(child))
	}
	if len(children) == 0 {
		return game.Resign
	}
	sort.Stable(fancySort{l: children, t: t})

	if t.current.MoveNumber() < t.Config.RandomCount {
		t.randomizeChildren(children)
	}
	return t.nodeFromNaughty(children[0]).Move()
}

func (t *MCTS) prepareRoot(state game.State) {
	root := t.nodeFromNaughty(t.root)
	if ended, _ := state.Ended(); ended {
		return
	}
	s := &searchState{tree: t, maxDepth: t.MaxDepth}
	if value, ok := s.expandAndSimulate(t.root, state); ok {
		root.Update(value)
	}
}
