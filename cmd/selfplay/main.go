// Command selfplay generates training examples by letting the heuristic agent play itself.
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	alphaquor "github.com/alphaquor"
	"github.com/alphaquor/game"
)

var (
	configPath = flag.String("config", "", "JSON config file, defaults are used if empty")
	episodes   = flag.Int("episodes", 5, "number of self play games")
	budget     = flag.Int("budget", 0, "MCTS iteration budget per move, overrides the config if positive")
	outPath    = flag.String("out", "examples.gob", "file to write the examples to")
	logLevel   = flag.String("log_level", "info", "logrus level")
	dumpLog    = flag.Bool("dump_log", false, "print the arena and search logs when done")
)

func main() {
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad log level: %v", err)
	}
	log.SetLevel(level)

	conf := alphaquor.DefaultConfig()
	if *configPath != "" {
		if conf, err = alphaquor.LoadConfig(*configPath); err != nil {
			log.Fatalf("error loading config: %+v", err)
		}
	}
	if *budget > 0 {
		conf.MCTSConf.Budget = int32(*budget)
	}
	conf.MCTSConf.LogLevel = level
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	factory := alphaquor.HeuristicFactory(conf.Temperature)
	arena := alphaquor.MakeArena(game.New(), factory, factory, conf)
	defer arena.Close()

	var examples []alphaquor.Example
	for e := 0; e < *episodes; e++ {
		exs, err := arena.SelfPlay()
		if err != nil {
			log.Fatalf("error in episode %d: %+v", e, err)
		}
		log.WithFields(log.Fields{"episode": e, "examples": len(exs)}).Info("episode done")
		examples = append(examples, exs...)
	}
	log.Info(arena.Stats())

	f, err := os.OpenFile(*outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := alphaquor.SaveExamples(f, examples); err != nil {
		log.Fatalf("error when saving examples: %+v", err)
	}
	log.WithField("path", *outPath).Infof("saved %d examples", len(examples))

	if *dumpLog {
		arena.Log(os.Stdout)
	}
}
