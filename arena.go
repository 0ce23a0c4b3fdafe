package alphaquor

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/chewxy/math32"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/alphaquor/game"
)

// Arena represents a game arena where two agents play each other, or one agent plays itself.
type Arena struct {
	r    *rand.Rand
	game game.State
	A, B *Agent

	// state
	currentPlayer *Agent
	conf          Config
	buf           bytes.Buffer
	logger        *log.Logger

	name       string
	gameNumber int // which game is this in

	// finished games
	lengths []int
	winners []game.Player
}

// MakeArena makes an arena given a game. a and b make the evaluators of the two agents.
func MakeArena(g game.State, a, b InfererFactory, conf Config) *Arena {
	if conf.Encoder == nil {
		conf.Encoder = game.InputEncoder
	}
	seed := conf.MCTSConf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	name := conf.Name
	if name == "" {
		name = "UNKNOWN GAME"
	}

	retVal := &Arena{
		r:    rand.New(rand.NewSource(seed)),
		game: g,
		A:    NewAgent("A", g, conf.MCTSConf, conf.Encoder, a),
		B:    NewAgent("B", g, conf.MCTSConf, conf.Encoder, b),
		conf: conf,
		name: name,
	}
	retVal.logger = log.New()
	retVal.logger.SetOutput(&retVal.buf)
	retVal.logger.SetLevel(conf.MCTSConf.LogLevel)
	return retVal
}

// SelfPlay lets agent A generate training data by playing with itself.
// Every example is valued 1 if the player to move in it went on to win,
// -1 if it lost and 0 for a draw.
func (a *Arena) SelfPlay() (examples []Example, err error) {
	a.logger.WithField("game", a.gameNumber).Info("Self playing")
	a.currentPlayer = a.A
	var players []game.Player

	winner, plies, err := a.playout(func() error {
		policies, err := a.A.MCTS.Policies(a.game)
		if err != nil {
			return err
		}
		if !validPolicies(policies) {
			return nil
		}
		examples = append(examples, Example{
			Board:  a.A.Enc(a.game),
			Policy: policies,
		})
		players = append(players, a.game.Turn())
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range examples {
		switch {
		case winner == game.NoPlayer: // draw
			examples[i].Value = 0
		case players[i] == winner:
			examples[i].Value = 1
		default:
			examples[i].Value = -1
		}
	}
	a.finish(winner, plies)
	a.A.MCTS.Reset()

	if a.conf.MaxExamples > 0 && len(examples) > a.conf.MaxExamples {
		shuffleExamples(a.r, examples)
		examples = examples[:a.conf.MaxExamples]
	}
	return examples, nil
}

// Play plays a game with agent A as first, and returns the winner. If it is
// a draw, the winner is game.NoPlayer.
func (a *Arena) Play(first game.Player) (winner game.Player, err error) {
	a.A.Player = first
	a.B.Player = first.Opponent()
	a.currentPlayer = a.A
	if a.game.Turn() != first {
		a.currentPlayer = a.B
	}

	winner, plies, err := a.playout(func() error {
		a.switchPlayer()
		return nil
	})
	if err != nil {
		return game.NoPlayer, err
	}

	a.A.record(winner)
	a.B.record(winner)
	a.finish(winner, plies)
	a.A.MCTS.Reset()
	a.B.MCTS.Reset()
	return winner, nil
}

// Tournament plays games games, alternating which agent moves first, and
// summarizes them. The agents' records are reset first.
func (a *Arena) Tournament(games int) (Stats, error) {
	a.A.resetStats()
	a.B.resetStats()
	from := len(a.lengths)
	for i := 0; i < games; i++ {
		first := game.Player0
		if i%2 == 1 {
			first = game.Player1
		}
		if _, err := a.Play(first); err != nil {
			return Stats{}, errors.WithMessagef(err, "game %d", i)
		}
	}
	return Summarize(a.lengths[from:], a.winners[from:]), nil
}

// playout runs the game from its current state until it ends, a player
// resigns or MaxMoves plies were played. after is called once a move was
// chosen and before it is applied.
func (a *Arena) playout(after func() error) (winner game.Player, plies int, err error) {
	logger := a.logger.WithFields(log.Fields{"name": a.name, "game": a.gameNumber})
	var ended bool
	for ended, winner = a.game.Ended(); !ended; ended, winner = a.game.Ended() {
		if plies >= a.conf.MaxMoves {
			logger.WithField("plies", plies).Info("move limit reached, draw")
			return game.NoPlayer, plies, nil
		}
		turn := a.game.Turn()
		mover := a.currentPlayer
		best, err := mover.Search(a.game)
		if err != nil {
			return game.NoPlayer, plies, errors.WithMessagef(err, "agent %s", mover.name)
		}
		if best == game.ResignMove {
			logger.WithFields(log.Fields{"agent": mover.name, "player": turn}).Info("resigns")
			a.game.Resign(turn)
			continue
		}
		logger.Debugf("Current Player: %v. Best Move %v", turn, best)
		if err := after(); err != nil {
			return game.NoPlayer, plies, err
		}
		if err := a.game.Apply(best); err != nil {
			return game.NoPlayer, plies, errors.Wrapf(err, "agent %s played %v", mover.name, best)
		}
		plies++
	}
	return winner, plies, nil
}

func (a *Arena) finish(winner game.Player, plies int) {
	a.logger.WithFields(log.Fields{
		"name":   a.name,
		"game":   a.gameNumber,
		"plies":  plies,
		"winner": winner,
	}).Info("game over")
	a.lengths = append(a.lengths, plies)
	a.winners = append(a.winners, winner)
	a.gameNumber++
	a.game.Reset()
	runtime.GC()
}

// GameNumber returns the number of games finished so far.
func (a *Arena) GameNumber() int { return a.gameNumber }

// Name of the game
func (a *Arena) Name() string { return a.name }

// State of the game
func (a *Arena) State() game.State { return a.game }

// Stats summarizes every game finished in this arena.
func (a *Arena) Stats() Stats { return Summarize(a.lengths, a.winners) }

// Log the arena and the MCTS of both players into w
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
	fmt.Fprintf(w, "\nA:\n\n")
	fmt.Fprintln(w, a.A.MCTS.Log())
	fmt.Fprintf(w, "\nB:\n\n")
	fmt.Fprintln(w, a.B.MCTS.Log())
}

// Close closes both agents.
func (a *Arena) Close() error {
	return multierror.Append(a.A.Close(), a.B.Close()).ErrorOrNil()
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}

func validPolicies(policy []float32) bool {
	for _, v := range policy {
		if math32.IsInf(v, 0) {
			return false
		}
		if math32.IsNaN(v) {
			return false
		}
	}
	return true
}
