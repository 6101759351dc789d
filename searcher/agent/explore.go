package agent

import (
	"cube/game"

	"golang.org/x/exp/rand"
)

type explorationAgent struct {
	advisor *Advisor
	epsilon float64
	rng     *rand.Rand
}

// NewExplorationAgent returns an agent for self-play experiments. With probability
// epsilon it plays a uniformly random legal move instead of the advised one.
func NewExplorationAgent(advisor *Advisor, epsilon float64, seed uint64) Agent {
	if epsilon < 0 || epsilon > 1 {
		panic("epsilon must be in [0, 1]")
	}
	return &explorationAgent{
		advisor: advisor,
		epsilon: epsilon,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (a *explorationAgent) FindMove(state game.State) (Decision, error) {
	decision, err := a.advisor.FindMove(state)
	if err != nil {
		return decision, err
	}
	if a.epsilon == 0 || a.rng.Float64() >= a.epsilon {
		return decision, nil
	}

	moves := state.LegalMoves()
	decision.Move = moves[a.rng.Intn(len(moves))]
	// Random moves are not searched, so report the static score of the position they lead to.
	decision.Score = a.advisor.EvaluateInitialPosition(state.Play(decision.Move).Board(), state.Player())
	return decision, nil
}
