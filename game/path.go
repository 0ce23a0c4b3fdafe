package game

// unit steps in the order Up, Down, Left, Right.
var steps = [4]Position{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// DistanceToGoal returns the number of orthogonal steps the player's pawn
// needs to reach its goal row, and false if the row is cut off. The other
// pawn does not block.
func (b *Board) DistanceToGoal(p Player) (int, bool) {
	if p != Player0 && p != Player1 {
		return 0, false
	}
	start := b.Pieces[p]
	if !start.IsSquare() {
		return 0, false
	}
	goal := p.GoalRow()

	var dist [Size][Size]int
	var seen [Size][Size]bool
	var queue [Squares * Squares]Position
	head, tail := 0, 0

	queue[tail] = start
	tail++
	seen[start.Y][start.X] = true
	for head < tail {
		cur := queue[head]
		head++
		if cur.Y == goal {
			return dist[cur.Y][cur.X], true
		}
		for _, s := range steps {
			next := cur.Add(2*s.X, 2*s.Y)
			if !next.IsSquare() || seen[next.Y][next.X] || b.blocked(cur.Add(s.X, s.Y)) {
				continue
			}
			seen[next.Y][next.X] = true
			dist[next.Y][next.X] = dist[cur.Y][cur.X] + 1
			queue[tail] = next
			tail++
		}
	}
	return 0, false
}

// HasPath reports whether the player's pawn can still reach its goal row.
// It agrees with DistanceToGoal but stops at the first goal square found.
func (b *Board) HasPath(p Player) bool {
	if p != Player0 && p != Player1 {
		return false
	}
	goal := p.GoalRow()

	var seen [Size][Size]bool
	var stack [Squares * Squares]Position
	top := 0

	start := b.Pieces[p]
	if !start.IsSquare() {
		return false
	}
	stack[top] = start
	top++
	seen[start.Y][start.X] = true
	for top > 0 {
		top--
		cur := stack[top]
		if cur.Y == goal {
			return true
		}
		// push the step towards the goal last so it is explored first
		for i := len(steps) - 1; i >= 0; i-- {
			s := steps[order(p, i)]
			next := cur.Add(2*s.X, 2*s.Y)
			if !next.IsSquare() || seen[next.Y][next.X] || b.blocked(cur.Add(s.X, s.Y)) {
				continue
			}
			seen[next.Y][next.X] = true
			stack[top] = next
			top++
		}
	}
	return false
}

// order maps i to a step index so that the goal direction comes first.
func order(p Player, i int) int {
	if p == Player0 {
		return [4]int{1, 2, 3, 0}[i]
	}
	return i
}

// BothHavePaths reports whether neither player is cut off from its goal.
func (b *Board) BothHavePaths() bool {
	return b.HasPath(Player0) && b.HasPath(Player1)
}
