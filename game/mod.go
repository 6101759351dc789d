package game

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Piece
	Board() Cube
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() Piece
}

// Evaluator scores a cube from the given player's perspective.
type Evaluator func(cube Cube, player Piece) Outcome
