package mcts

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"
)

type Status uint32

const (
	Invalid Status = iota
	Active
)

func (a Status) String() string {
	switch a {
	case Invalid:
		return "Invalid"
	case Active:
		return "Active"
	}
	return "UNKNOWN STATUS"
}

// expansion states of a node
const (
	unexpanded int32 = iota
	expanding
	expanded
)

type Node struct {
	// should guarantee thread-safe operation
	lock        sync.Mutex
	move        int32   // action index of the move leading here
	visits      uint32  // visits to this node - N(s, a) in the literature
	status      uint32  // status
	qsa         float32 // the expected reward for taking action a from state s, i.e: Q(s,a)
	hasChildren bool
	psa         float32 // policy estimation for taking the move from state s, i.e: P(s, a)
	expansion   int32   // atomic

	id   naughty // index to the children allocation
	tree *MCTS
}

func (n *Node) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "{NodeID: %v, Move: %v,"+
		" Q(s,a) %v, P(s,a) %v, Visits %v, Status: %v}", n.id, n.Move(), n.QSA(), n.PSA(),
		n.Visits(), Status(n.status))
}

// Update updates the accumulated score
func (n *Node) Update(score float32) {
	n.lock.Lock()
	n.qsa = (float32(n.visits)*n.qsa + score) / float32(n.visits+1)
	n.visits++
	n.lock.Unlock()
}

// QSA returns Q(s, a)
func (n *Node) QSA() float32 {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.qsa
}

// Move gets the move associated with the node
func (n *Node) Move() int32 {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.move
}

// PSA returns P(s, a)
func (n *Node) PSA() float32 {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.psa
}

func (n *Node) Visits() uint32 {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.visits
}

// Invalidate invalidates the node
func (n *Node) Invalidate() {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.status = uint32(Invalid)
}

// IsActive returns true if the node is active
func (n *Node) IsActive() bool {
	n.lock.Lock()
	defer n.lock.Unlock()
	return Status(n.status) == Active
}

// HasChildren returns true if the node has children
func (n *Node) HasChildren() bool {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.hasChildren
}

func (n *Node) SetHasChild(f bool) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.hasChildren = f
}

func (n *Node) ID() int { return int(n.id) }

// Select selects the best child based on alpha zero paper
// the upper bound formula is as such
// U(s, a) = Q(s, a) + tree.PUCT * P(s, a) * ((sqrt(parent visits))/ (1+visits to this node))
//
// where
// U(s, a) = upper confidence bound given state and action
// Q(s, a) = reward of taking the action given the state
// P(s, a) = initial probability/estimate of taking an action from the state given according to the policy
//
// It returns nilNode when no child is active.
func (n *Node) Select() naughty {
	var parentVisits uint32

	tree := n.tree
	children := tree.Children(n.id)
	for _, kid := range children {
		child := tree.nodeFromNaughty(kid)
		if child.IsActive() {
			parentVisits += child.Visits()
		}
	}

	best := nilNode
	var bestValue = math32.Inf(-1)
	numerator := math32.Sqrt(float32(parentVisits) + 1)

	for _, kid := range children {
		child := tree.nodeFromNaughty(kid)
		if !child.IsActive() {
			continue
		}

		child.lock.Lock()
		qsa, psa, visits := child.qsa, child.psa, child.visits
		child.lock.Unlock()

		usa := qsa + tree.PUCT*psa*numerator/(1+float32(visits))
		if usa > bestValue {
			bestValue = usa
			best = kid
		}
	}
	return best
}
