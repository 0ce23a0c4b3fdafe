package mcts

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "mcts"

// Dot renders the tree of the last search as Graphviz. Only children with at
// least minVisits visits are drawn, down to maxDepth plies below the root.
func (t *MCTS) Dot(maxDepth int, minVisits uint32) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}
	if t.root == nilNode {
		return g.String(), nil
	}

	state := t.current.Clone()
	var walk func(n naughty, depth int) error
	walk = func(n naughty, depth int) error {
		node := t.nodeFromNaughty(n)
		label := "root"
		if n != t.root {
			m, err := state.NNToMove(node.Move())
			if err != nil {
				return err
			}
			label = m.String()
		}
		attrs := map[string]string{
			"label": strconv.Quote(fmt.Sprintf("%s\nN=%d Q=%.3f P=%.3f", label, node.Visits(), node.QSA(), node.PSA())),
		}
		if !node.IsActive() {
			attrs["style"] = "dashed"
		}
		if err := g.AddNode(graphName, nodeName(n), attrs); err != nil {
			return errors.WithStack(err)
		}
		if depth == maxDepth {
			return nil
		}
		for _, kid := range t.Children(n) {
			child := t.nodeFromNaughty(kid)
			if child.Visits() < minVisits {
				continue
			}
			m, err := state.NNToMove(child.Move())
			if err != nil {
				return err
			}
			if err := state.Apply(m); err != nil {
				return err
			}
			err = walk(kid, depth+1)
			state.UndoLastMove()
			if err != nil {
				return err
			}
			if err := g.AddEdge(nodeName(n), nodeName(kid), true, nil); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
	if err := walk(t.root, 0); err != nil {
		return "", err
	}
	return g.String(), nil
}

func nodeName(n naughty) string { return "n" + strconv.Itoa(int(n)) }
