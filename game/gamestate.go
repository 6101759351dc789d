package game

import "fmt"

// GameState is a cube together with the player to move.
type GameState struct {
	Cube          Cube  // Current contents of the cube
	CurrentPlayer Piece // The player to move
	Turn          int   // Number of pieces placed since the state was created
	LastMove      Move  // The move that produced this state, NoMove initially
}

// NewGameState initializes and returns a new GameState.
func NewGameState(cube Cube, player Piece) *GameState {
	if !player.IsPlayer() {
		panic(fmt.Sprintf("invalid player to move: %v", player))
	}
	return &GameState{
		Cube:          cube,
		CurrentPlayer: player,
		LastMove:      NoMove,
	}
}

func (gs *GameState) Copy() *GameState {
	copied := *gs
	return &copied
}

func (gs *GameState) Player() Piece {
	return gs.CurrentPlayer
}

func (gs *GameState) Board() Cube {
	return gs.Cube
}

// LegalMoves returns no moves once a line has been completed.
func (gs *GameState) LegalMoves() []Move {
	if gs.Winner() != Empty {
		return nil
	}
	return gs.Cube.LegalMoves()
}

// Play returns the state after the current player drops a piece. Panics on a full pillar.
func (gs *GameState) Play(move Move) State {
	next := gs.Copy()
	if _, err := next.Cube.Place(gs.CurrentPlayer, move.Column, move.Row); err != nil {
		panic(err)
	}
	next.CurrentPlayer = gs.CurrentPlayer.Opponent()
	next.Turn++
	next.LastMove = move
	return next
}

func (gs *GameState) Hash() StateHash {
	return gs.Cube.Hash() ^ StateHash(gs.CurrentPlayer)
}

func (gs *GameState) Winner() Piece {
	return Winner(gs.Cube)
}
