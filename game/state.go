package game

const (
	Begin  = -3
	Resign = -2

	squareActions = Squares * Squares
	wallActions   = (Squares - 1) * (Squares - 1) * 2

	// ActionSpace is the number of action indices: one per target square,
	// then one per wall placement.
	ActionSpace = squareActions + wallActions
)

// State is any game that implements these and are able to report back
type State interface {
	// These methods represent the game state
	ActionSpace() int                 // returns the number of permissible actions
	Board() Board                     // return board state.
	Turn() Player                     // Turn returns the player to move next.
	MoveNumber() int                  // returns count of moves so far that led to this point.
	LastMove() int32                  // returns the last move that was made in neural network index.
	NNToMove(idx int32) (Move, error) // returns move from neural network encoding output space.
	MoveToNN(m Move) (int32, error)   // returns the neural network index of a move.

	// Meta-game stuff
	Ended() (ended bool, winner Player) // has the game ended? if yes, then who's the winner?
	Resign(p Player)                    // player p resigns the game.

	// interactions
	Check(m Move) bool      // check if the move is legal.
	Apply(m Move) error     // plays m. The required side effect is the Turn has to change.
	Reset()                 // reset state.
	PossibleMoves() []int32 // get all possible index moves.
	UndoLastMove()

	// generics
	Eq(other State) bool
	Clone() State
	Hash() [16]byte
	ShowBoard()
}
