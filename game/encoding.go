package game

import "gorgonia.org/tensor"

// Features is the number of planes Planes produces.
const Features = 6

// Planes encodes b from the point of view of the player to move as a
// (Features, Squares, Squares) tensor: own pawn, opponent pawn, edge below
// each square blocked, edge right of each square blocked, own wall budget
// and opponent wall budget as fractions of WallsPerPlayer.
func Planes(b Board) *tensor.Dense {
	const plane = Squares * Squares
	backing := make([]float32, Features*plane)
	me, opp := b.Active, b.Active.Opponent()
	if me == NoPlayer {
		me, opp = Player0, Player1
	}

	at := func(f int, p Position) int { return f*plane + p.Y/2*Squares + p.X/2 }
	backing[at(0, b.Pieces[me])] = 1
	backing[at(1, b.Pieces[opp])] = 1

	mine := float32(b.WallsLeft[me]) / WallsPerPlayer
	theirs := float32(b.WallsLeft[opp]) / WallsPerPlayer
	for y := minSquare; y <= maxSquare; y += 2 {
		for x := minSquare; x <= maxSquare; x += 2 {
			p := Position{x, y}
			if y < maxSquare && b.Walls[y+1][x] {
				backing[at(2, p)] = 1
			}
			if x < maxSquare && b.Walls[y][x+1] {
				backing[at(3, p)] = 1
			}
			backing[at(4, p)] = mine
			backing[at(5, p)] = theirs
		}
	}
	return tensor.New(tensor.WithShape(Features, Squares, Squares), tensor.WithBacking(backing))
}

// InputEncoder encodes game state to neural input format.
func InputEncoder(g State) []float32 {
	return Planes(g.Board()).Data().([]float32)
}
