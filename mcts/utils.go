package mcts

// fancySort sorts the list of nodes by visits, most visited first. Ties go
// to the higher prior.
type fancySort struct {
	l []naughty
	t *MCTS
}

func (l fancySort) Len() int      { return len(l.l) }
func (l fancySort) Swap(i, j int) { l.l[i], l.l[j] = l.l[j], l.l[i] }
func (l fancySort) Less(i, j int) bool {
	li := l.t.nodeFromNaughty(l.l[i])
	lj := l.t.nodeFromNaughty(l.l[j])
	vi, vj := li.Visits(), lj.Visits()
	if vi != vj {
		return vi > vj
	}
	return li.PSA() > lj.PSA()
}

// pair is a tuple of score and action
type pair struct {
	Move  int32
	Score float32
}

// byScore is a sortable list of pairs It sorts the list with best score fist
type byScore []pair

func (l byScore) Len() int           { return len(l) }
func (l byScore) Less(i, j int) bool { return l[i].Score > l[j].Score }
func (l byScore) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
