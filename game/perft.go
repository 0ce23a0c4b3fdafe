package game

// Perft counts the leaf positions reachable from b in exactly depth plies.
// Finished games count as leaves.
func Perft(b Board, depth int) uint64 {
	if depth == 0 || b.GameOver() {
		return 1
	}
	moves := b.AvailableMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := b
		if err := next.ApplyMove(m); err != nil {
			panic(err) // generated moves always apply
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns the Perft count below each legal move of b.
func PerftDivide(b Board, depth int) map[Move]uint64 {
	retVal := make(map[Move]uint64)
	if depth <= 0 {
		return retVal
	}
	for _, m := range b.AvailableMoves() {
		next := b
		if err := next.ApplyMove(m); err != nil {
			panic(err)
		}
		retVal[m] = Perft(next, depth-1)
	}
	return retVal
}
