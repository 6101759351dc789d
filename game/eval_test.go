package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(t *testing.T, cube *Cube, piece Piece, moves ...Move) {
	t.Helper()
	for _, move := range moves {
		_, err := cube.Place(piece, move.Column, move.Row)
		require.NoError(t, err)
	}
}

// cubeWithRow fills row 0 at height 0 for the given player.
func cubeWithRow(t *testing.T, player Piece) Cube {
	var cube Cube
	place(t, &cube, player, Move{0, 0}, Move{1, 0}, Move{2, 0}, Move{3, 0})
	return cube
}

func TestEvaluate(t *testing.T) {
	t.Run("empty cube scores every line for either player", func(t *testing.T) {
		require.Equal(t, Score(NumLines), Evaluate(Cube{}, CubePiece))
		require.Equal(t, Score(NumLines), Evaluate(Cube{}, BallPiece))
	})

	t.Run("an opponent piece blocks every line through it", func(t *testing.T) {
		var cube Cube
		place(t, &cube, CubePiece, Move{0, 0})

		require.Equal(t, Score(NumLines), Evaluate(cube, CubePiece), "Own pieces should not block lines")
		require.Equal(t, Score(NumLines-7), Evaluate(cube, BallPiece), "7 lines pass through a corner")
	})

	t.Run("mixed lines score nothing", func(t *testing.T) {
		var cube Cube
		place(t, &cube, CubePiece, Move{0, 0})
		place(t, &cube, BallPiece, Move{1, 1})

		// (1,1,0) lies on 4 lines, one of them shared with the corner
		require.Equal(t, Score(NumLines-4), Evaluate(cube, CubePiece), "Lines through the ball are blocked for the cube")
		require.Equal(t, Score(NumLines-7), Evaluate(cube, BallPiece), "Lines through the cube are blocked for the ball")
	})

	t.Run("completed line wins", func(t *testing.T) {
		cube := cubeWithRow(t, CubePiece)

		require.Equal(t, Win, Evaluate(cube, CubePiece))
	})

	t.Run("completed opponent line loses", func(t *testing.T) {
		cube := cubeWithRow(t, BallPiece)

		require.Equal(t, Loss, Evaluate(cube, CubePiece))
	})

	t.Run("win and loss are symmetric", func(t *testing.T) {
		cube := cubeWithRow(t, CubePiece)
		place(t, &cube, BallPiece, Move{0, 1}, Move{1, 1}, Move{2, 1})

		require.Equal(t, Win, Evaluate(cube, CubePiece), "Completing player should win")
		require.Equal(t, Loss, Evaluate(cube, BallPiece), "Other player should lose")
	})

	t.Run("a completed line short-circuits the rest of the board", func(t *testing.T) {
		var cube Cube
		// Vertical line in pillar <3,3>
		place(t, &cube, CubePiece, Move{3, 3}, Move{3, 3}, Move{3, 3}, Move{3, 3})
		for _, index := range []int{0, 1, 2, 4, 5, 6, 8, 9} {
			place(t, &cube, BallPiece, MoveFromIndex(index))
		}

		require.Equal(t, Win, Evaluate(cube, CubePiece))
		require.Equal(t, Loss, Evaluate(cube, BallPiece))
	})

	t.Run("three in a line is not yet a win", func(t *testing.T) {
		var cube Cube
		place(t, &cube, CubePiece, Move{0, 0}, Move{1, 0}, Move{2, 0})

		got := Evaluate(cube, CubePiece)

		require.False(t, got.IsTerminal(), "Position should not be terminal")
		require.Equal(t, Score(NumLines), got)
	})
}

func TestWinner(t *testing.T) {
	t.Run("no completed line", func(t *testing.T) {
		var cube Cube
		place(t, &cube, CubePiece, Move{0, 0}, Move{1, 0}, Move{2, 0})

		require.Equal(t, Empty, Winner(cube))
	})

	t.Run("space diagonal", func(t *testing.T) {
		var cube Cube
		for i := 0; i < Size; i++ {
			// Raise pillar <i,i> to height i with ball filler, then top it with a cube
			for h := 0; h < i; h++ {
				place(t, &cube, BallPiece, Move{i, i})
			}
			place(t, &cube, CubePiece, Move{i, i})
		}

		require.Equal(t, CubePiece, Winner(cube))
		require.Equal(t, Win, Evaluate(cube, CubePiece))
	})

	t.Run("vertical pillar", func(t *testing.T) {
		var cube Cube
		place(t, &cube, BallPiece, Move{2, 3}, Move{2, 3}, Move{2, 3}, Move{2, 3})

		require.Equal(t, BallPiece, Winner(cube))
	})
}
