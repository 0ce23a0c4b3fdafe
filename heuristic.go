package alphaquor

import (
	"github.com/alphaquor/game"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// valueScale is the path length lead worth a value of about 0.76.
const valueScale = 4

// Heuristic evaluates positions with shortest paths in place of a network.
// The value is the lead in distance to goal. Each legal move is weighted by
// how much it shortens the mover's path plus how much it lengthens the
// opponent's, then softmaxed.
type Heuristic struct {
	Temperature float32
}

// HeuristicFactory returns a factory of Heuristics at temperature temp.
func HeuristicFactory(temp float32) InfererFactory {
	return func() (Inferer, error) {
		if temp <= 0 {
			return nil, errors.Errorf("heuristic temperature %v", temp)
		}
		return &Heuristic{Temperature: temp}, nil
	}
}

func (h *Heuristic) Infer(g game.State) (policy []float32, value float32, err error) {
	b := g.Board()
	me := b.CurrentPlayer()
	own, ok0 := b.DistanceToGoal(me)
	opp, ok1 := b.DistanceToGoal(me.Opponent())
	if !ok0 || !ok1 {
		return nil, 0, errors.Errorf("no path to goal on board\n%v", b.String())
	}
	value = math32.Tanh(float32(opp-own) / valueScale)

	policy = make([]float32, g.ActionSpace())
	moves := b.AvailableMoves()
	scores := make([]float32, len(moves))
	idxs := make([]int32, len(moves))
	best := math32.Inf(-1)
	for i, m := range moves {
		if idxs[i], err = g.MoveToNN(m); err != nil {
			return nil, 0, err
		}
		next := b
		if err = next.ApplyMove(m); err != nil {
			return nil, 0, errors.Wrapf(err, "generated move %v", m)
		}
		own2, _ := next.DistanceToGoal(me)
		opp2, _ := next.DistanceToGoal(me.Opponent())
		scores[i] = float32((own-own2)+(opp2-opp)) / h.Temperature
		if scores[i] > best {
			best = scores[i]
		}
	}

	var sum float32
	for i, s := range scores {
		e := math32.Exp(s - best)
		policy[idxs[i]] = e
		sum += e
	}
	if sum > 0 {
		for i := range policy {
			policy[i] /= sum
		}
	}
	return policy, value, nil
}

func (h *Heuristic) Close() error { return nil }
