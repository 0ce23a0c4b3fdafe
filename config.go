package alphaquor

import (
	"encoding/json"
	"os"

	"github.com/alphaquor/game"
	"github.com/alphaquor/mcts"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config for the Arena.
// It holds attributes that impacts the MCTS and the evaluator
// as well as object that facilitates the interactions with the end-user (eg: Encoder).
type Config struct {
	Name     string      `json:"name"`
	MCTSConf mcts.Config `json:"mcts_conf"`
	// maximum number of examples kept from one self play session
	MaxExamples int `json:"max_examples"`
	// plies after which a game is scored as a draw
	MaxMoves int `json:"max_moves"`
	// softmax temperature of the heuristic evaluator
	Temperature float32 `json:"temperature"`

	// extensions
	Encoder GameEncoder `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Name:        "Alphaquor",
		MCTSConf:    mcts.DefaultConfig(),
		MaxMoves:    300,
		Temperature: 1,
		Encoder:     game.InputEncoder,
	}
}

// Validate reports every problem with c, including those of the MCTS config.
func (c Config) Validate() error {
	var errs error
	if err := c.MCTSConf.Validate(); err != nil {
		errs = multierror.Append(errs, errors.WithMessage(err, "mcts_conf"))
	}
	if c.MaxExamples < 0 {
		errs = multierror.Append(errs, errors.Errorf("max examples %d", c.MaxExamples))
	}
	if c.MaxMoves <= 0 {
		errs = multierror.Append(errs, errors.Errorf("max moves %d", c.MaxMoves))
	}
	if c.Temperature <= 0 {
		errs = multierror.Append(errs, errors.Errorf("temperature %v", c.Temperature))
	}
	return errs
}

// LoadConfig reads a JSON config from path. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&conf); err != nil {
		return conf, errors.Wrapf(err, "decoding %s", path)
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.Wrapf(err, "invalid config %s", path)
	}
	return conf, nil
}
