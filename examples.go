package alphaquor

import (
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"

	"github.com/alphaquor/game"
)

// SaveExamples writes examples to w.
func SaveExamples(w io.Writer, examples []Example) error {
	return errors.WithStack(gob.NewEncoder(w).Encode(examples))
}

// LoadExamples reads examples written by SaveExamples. Examples whose sizes
// do not match the encoding or the action space are rejected.
func LoadExamples(r io.Reader) ([]Example, error) {
	var examples []Example
	if err := gob.NewDecoder(r).Decode(&examples); err != nil {
		return nil, errors.WithStack(err)
	}
	for i, ex := range examples {
		if len(ex.Board) != exampleBoardSize {
			return nil, errors.Errorf("example %d: board of size %d, want %d", i, len(ex.Board), exampleBoardSize)
		}
		if len(ex.Policy) != game.ActionSpace {
			return nil, errors.Errorf("example %d: policy of size %d, want %d", i, len(ex.Policy), game.ActionSpace)
		}
		if ex.Value < -1 || ex.Value > 1 {
			return nil, errors.Errorf("example %d: value %v", i, ex.Value)
		}
	}
	return examples, nil
}

const exampleBoardSize = game.Features * game.Squares * game.Squares

// PrepareExamples stacks examples into training tensors: boards of shape
// (n, Features, Squares, Squares), policies of shape (n, ActionSpace) and values of shape (n).
func PrepareExamples(examples []Example) (Xs, Policies, Values *tensor.Dense, err error) {
	if len(examples) == 0 {
		return nil, nil, nil, errors.New("no examples")
	}
	var XsBacking, PoliciesBacking, ValuesBacking []float32
	for i, ex := range examples {
		if len(ex.Board) != exampleBoardSize || len(ex.Policy) != game.ActionSpace {
			return nil, nil, nil, errors.Errorf("example %d has sizes %d/%d", i, len(ex.Board), len(ex.Policy))
		}
		XsBacking = append(XsBacking, ex.Board...)
		PoliciesBacking = append(PoliciesBacking, ex.Policy...)
		ValuesBacking = append(ValuesBacking, ex.Value)
	}

	n := len(examples)
	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(n, game.Features, game.Squares, game.Squares))
	Policies = tensor.New(tensor.WithBacking(PoliciesBacking), tensor.WithShape(n, game.ActionSpace))
	Values = tensor.New(tensor.WithBacking(ValuesBacking), tensor.WithShape(n))
	return Xs, Policies, Values, nil
}

func shuffleExamples(r *rand.Rand, examples []Example) {
	r.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}
