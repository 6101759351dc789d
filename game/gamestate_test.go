package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStatePlay(t *testing.T) {
	t.Run("playing returns a new state and alternates players", func(t *testing.T) {
		state := NewGameState(Cube{}, CubePiece)

		next := state.Play(Move{Column: 2, Row: 1}).(*GameState)

		require.Equal(t, BallPiece, next.Player(), "Turn should pass to the opponent")
		require.Equal(t, CubePiece, next.Board().Get(2, 1, 0), "Piece should be placed")
		require.Equal(t, Move{Column: 2, Row: 1}, next.LastMove)
		require.Equal(t, 1, next.Turn)
		require.Equal(t, Cube{}, state.Board(), "Original state should not change")
		require.Equal(t, NoMove, state.LastMove)
		require.NotEqual(t, state.Hash(), next.Hash())
	})

	t.Run("playing into a full pillar panics", func(t *testing.T) {
		var cube Cube
		place(t, &cube, BallPiece, Move{0, 0}, Move{0, 0}, Move{0, 0}, Move{0, 0})
		state := NewGameState(cube, CubePiece)

		require.Panics(t, func() { state.Play(Move{0, 0}) })
	})

	t.Run("finished game has no legal moves", func(t *testing.T) {
		state := NewGameState(cubeWithRow(t, BallPiece), CubePiece)

		require.Equal(t, BallPiece, state.Winner())
		require.Empty(t, state.LegalMoves())
	})

	t.Run("invalid player to move", func(t *testing.T) {
		require.Panics(t, func() { NewGameState(Cube{}, Empty) })
	})
}
