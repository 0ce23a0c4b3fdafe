package game

// AvailableMoves returns every legal move for the player to act: steps,
// then straight jumps, then diagonal side-steps, then wall placements row by
// row with Horizontal before Vertical. It is empty once the game is over.
func (b *Board) AvailableMoves() []Move {
	if b.GameOver() {
		return nil
	}
	retVal := b.movementMoves()
	if b.WallsLeft[b.Active] == 0 {
		return retVal
	}
	for _, w := range allWalls {
		if b.checkWall(w) == Success {
			retVal = append(retVal, Move{Kind: PlaceWall, Wall: w})
		}
	}
	return retVal
}

// movementMoves returns the pawn moves of the active player in generation order.
func (b *Board) movementMoves() []Move {
	var stepMoves, jumps, diagonals []Move
	cur := b.Pieces[b.Active]
	opp := b.Pieces[b.Active.Opponent()]

	for _, s := range steps {
		adj := cur.Add(2*s.X, 2*s.Y)
		if !adj.IsSquare() || b.blocked(cur.Add(s.X, s.Y)) {
			continue
		}
		if adj != opp {
			stepMoves = append(stepMoves, Move{Kind: Step, Target: adj})
			continue
		}

		land := adj.Add(2*s.X, 2*s.Y)
		if land.IsSquare() && !b.blocked(adj.Add(s.X, s.Y)) {
			jumps = append(jumps, Move{Kind: Jump, Target: land})
			continue
		}

		// straight jump obstructed: side-step around the opponent
		for _, side := range steps {
			if side.X*s.X+side.Y*s.Y != 0 {
				continue
			}
			land := adj.Add(2*side.X, 2*side.Y)
			if land.IsSquare() && !b.blocked(adj.Add(side.X, side.Y)) {
				diagonals = append(diagonals, Move{Kind: Diagonal, Target: land})
			}
		}
	}

	retVal := make([]Move, 0, len(stepMoves)+len(jumps)+len(diagonals)+wallActions)
	retVal = append(retVal, stepMoves...)
	retVal = append(retVal, jumps...)
	return append(retVal, diagonals...)
}

// checkWall runs the placement rules for the active player in order and
// returns the first one w breaks. b is never modified.
func (b *Board) checkWall(w Wall) WallPlacementResult {
	if b.GameOver() {
		return GameFinished
	}
	if b.WallsLeft[b.Active] <= 0 {
		return NoWallsRemaining
	}
	cells := w.OccupiedCells()
	if cells == nil {
		return OutOfBounds
	}
	for _, c := range cells {
		if b.blocked(c) {
			return Overlapping
		}
	}
	// The grid reads stand in for Overlaps and Crosses against every placed
	// wall: an edge site is only marked by a wall of its own orientation,
	// and a post only by a wall centred on it, whose cells a same
	// orientation wall would have overlapped above.
	if b.blocked(w.Anchor) {
		return Crossing
	}

	probe := *b
	probe.mark(w, cells)
	if !probe.BothHavePaths() {
		return BlocksPath
	}
	return Success
}

func (b *Board) mark(w Wall, cells []Position) {
	for _, c := range cells {
		b.Walls[c.Y][c.X] = true
	}
	b.Walls[w.Anchor.Y][w.Anchor.X] = true
}
