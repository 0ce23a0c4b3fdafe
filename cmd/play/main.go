// Command play plays Quoridor against the heuristic agent on the terminal,
// or lets two agents play a match with -auto.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	alphaquor "github.com/alphaquor"
	"github.com/alphaquor/game"
	"github.com/alphaquor/mcts"
)

var (
	human    = flag.String("human", "player0", "side the human plays: player0 or player1")
	auto     = flag.Int("auto", 0, "play this many agent against agent games instead")
	budget   = flag.Int("budget", 2000, "MCTS iteration budget per move")
	timeout  = flag.Duration("timeout", 5*time.Second, "search time limit per move")
	temp     = flag.Float64("temperature", 1, "heuristic softmax temperature")
	dotPath  = flag.String("dot", "", "write the tree of the engine's last search to this Graphviz file")
	logLevel = flag.String("log_level", "warning", "logrus level")
)

func main() {
	flag.Parse()
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad log level: %v", err)
	}
	log.SetLevel(level)

	conf := alphaquor.DefaultConfig()
	conf.Name = "play"
	conf.Temperature = float32(*temp)
	conf.MCTSConf.Budget = int32(*budget)
	conf.MCTSConf.Timeout = *timeout
	conf.MCTSConf.LogLevel = level
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if *auto > 0 {
		arena := alphaquor.MakeArena(game.New(), alphaquor.HeuristicFactory(conf.Temperature), alphaquor.HeuristicFactory(conf.Temperature), conf)
		defer arena.Close()
		stats, err := arena.Tournament(*auto)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		fmt.Println(stats)
		fmt.Printf("A: wins %v loss %v draw %v\n", arena.A.Wins, arena.A.Loss, arena.A.Draw)
		return
	}

	me := game.Player0
	switch strings.ToLower(*human) {
	case "player0", "0":
	case "player1", "1":
		me = game.Player1
	default:
		log.Fatalf("unknown side %q", *human)
	}

	g := game.New()
	engine := alphaquor.NewAgent("engine", g, conf.MCTSConf, conf.Encoder, alphaquor.HeuristicFactory(conf.Temperature))
	defer engine.Close()

	in := bufio.NewScanner(os.Stdin)
	for ended, _ := g.Ended(); !ended; ended, _ = g.Ended() {
		g.ShowBoard()
		if g.Turn() != me {
			move, err := engine.Search(g)
			if err != nil {
				log.Fatalf("%+v", err)
			}
			fmt.Printf("engine plays %v (%d playouts)\n", move, engine.MCTS.Playouts())
			writeDot(engine.MCTS)
			if err := g.Apply(move); err != nil {
				log.Fatalf("engine played %v: %+v", move, err)
			}
			continue
		}

		fmt.Printf("%v (%d walls) > ", g.Turn(), g.Board().WallsLeft[g.Turn()])
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "undo":
			// take back the engine's reply too
			g.UndoLastMove()
			g.UndoLastMove()
			continue
		}
		b := g.Board()
		move, err := game.ParseMove(&b, line)
		if err == nil {
			err = g.Apply(move)
		}
		if err != nil {
			fmt.Println(err)
		}
	}
	g.ShowBoard()
	_, winner := g.Ended()
	fmt.Printf("%v wins\n", winner)
}

func writeDot(t *mcts.MCTS) {
	if *dotPath == "" {
		return
	}
	dot, err := t.Dot(2, 10)
	if err != nil {
		log.WithError(err).Warn("rendering search tree")
		return
	}
	if err := ioutil.WriteFile(*dotPath, []byte(dot), 0644); err != nil {
		log.WithError(err).Warn("writing search tree")
	}
}
