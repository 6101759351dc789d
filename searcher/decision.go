package searcher

import (
	"errors"

	"cube/game"
)

var ErrNoLegalMove = errors.New("no legal move")

// BestMove returns the root child with the greatest backed-up score.
// Ties go to the child enumerated first, i.e. the smallest move index.
func BestMove(root *Node) (game.Move, game.Outcome, error) {
	if root.IsLeaf() {
		return game.NoMove, game.Outcome{}, ErrNoLegalMove
	}

	best := root.Children[0]
	for _, child := range root.Children[1:] {
		if child.Score.Better(best.Score) {
			best = child
		}
	}
	return best.Move, best.Score, nil
}
