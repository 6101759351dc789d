package agent

import (
	"fmt"

	"cube/game"
	"cube/searcher"
)

// Advisor picks the move with the best minimax value for the player to move.
type Advisor struct {
	minimax *searcher.Minimax
}

// NewAdvisor returns a new agent for actual game play and one-shot move advice.
func NewAdvisor(minimax *searcher.Minimax) *Advisor {
	return &Advisor{minimax: minimax}
}

// EvaluateInitialPosition scores the board as it stands, before any move is made.
func (a *Advisor) EvaluateInitialPosition(cube game.Cube, player game.Piece) game.Outcome {
	return a.minimax.Evaluate(cube, player)
}

// ComputeBestMove searches the tree rooted at cube and returns the best child.
func (a *Advisor) ComputeBestMove(cube game.Cube, player game.Piece) (Decision, error) {
	root, metric := a.minimax.Search(cube, player)
	move, score, err := searcher.BestMove(root)
	if err != nil {
		return Decision{Move: game.NoMove, Metrics: metric}, err
	}
	return Decision{Move: move, Score: score, Metrics: metric}, nil
}

func (a *Advisor) FindMove(state game.State) (Decision, error) {
	cube, player := state.Board(), state.Player()
	initial := a.EvaluateInitialPosition(cube, player)
	if initial.IsTerminal() {
		return Decision{Move: game.NoMove, Score: initial}, fmt.Errorf("%w: %s for %s", ErrGameOver, initial, player)
	}
	return a.ComputeBestMove(cube, player)
}
