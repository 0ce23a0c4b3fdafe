// Command actions writes the action index table: every index of the action
// space and the move it stands for.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/alphaquor/game"
)

var path = flag.String("path", "", "file to write the table to, stdout if empty")

func main() {
	flag.Parse()

	out := os.Stdout
	if *path != "" {
		f, err := os.OpenFile(*path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	g := game.New()
	for idx := int32(0); idx < int32(g.ActionSpace()); idx++ {
		m, err := g.NNToMove(idx)
		if err != nil {
			log.Fatalf("action %d: %+v", idx, err)
		}
		back, err := g.MoveToNN(m)
		if err != nil || back != idx {
			log.Fatalf("action %d maps to %v and back to %d: %v", idx, m, back, err)
		}
		kind := "square"
		if m.IsWall() {
			kind = "wall"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", idx, kind, m)
	}
}
