package agent

import (
	"errors"

	"cube/experiments/metrics"
	"cube/game"
)

var ErrGameOver = errors.New("game is already over")

// Decision is the move an agent chose along with the backed-up outcome for it.
type Decision struct {
	Move    game.Move
	Score   game.Outcome
	Metrics metrics.SearchMetric
}

type Agent interface {
	// FindMove returns the chosen move and performance metrics (if collected) from the search.
	// A state whose board already contains a completed line yields ErrGameOver.
	FindMove(state game.State) (Decision, error)
}
