package engine

import (
	"slices"
	"time"

	"cube/experiments/metrics"
	"cube/game"
	"cube/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *localEngine)

// WithStart sets the initial board and the player to move first.
func WithStart(cube game.Cube, player game.Piece) Option {
	return func(e *localEngine) {
		e.State = game.NewGameState(cube, player)
	}
}

// WithOpening plays the given number of uniformly random moves before the agents take over.
func WithOpening(plies int, seed uint64) Option {
	return func(e *localEngine) {
		e.openingPlies = plies
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type localEngine struct {
	State        *game.GameState
	Agents       map[game.Piece]agentAdapter
	openingPlies int
	rng          *rand.Rand
	maxTurns     int
}

// LocalEngine pits two agents against each other in-process. The first agent plays Cube,
// the second plays Ball. Cube moves first on an empty cube unless WithStart says otherwise.
func LocalEngine(agents []agent.Agent, options ...Option) *localEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &localEngine{
		State: game.NewGameState(game.Cube{}, game.CubePiece),
		Agents: map[game.Piece]agentAdapter{
			game.CubePiece: {InternalAgent: agents[0]},
			game.BallPiece: {InternalAgent: agents[1]},
		},
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is decided or the turn limit is hit.
func (e *localEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s is starting", e.State.Player())

	var moveMetrics []metrics.MoveMetric
	turn := 1
	for turn <= e.maxTurns {
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			break
		}

		var move game.Move
		var decision agent.Decision
		if turn <= e.openingPlies {
			move = legal[e.rng.Intn(len(legal))]
			decision = agent.Decision{Move: move, Score: game.Evaluate(e.State.Play(move).Board(), e.State.Player())}
		} else {
			move, decision = e.Agents[e.State.Player()].FindMove(e.State, legal)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       e.State.Player().String(),
			Move:         move.String(),
			Score:        decision.Score.String(),
			SearchMetric: decision.Metrics,
		})
		log.Debug().Int("turn", turn).Stringer("player", e.State.Player()).Stringer("move", move).Msg("engine-move")

		e.State = e.State.Play(move).(*game.GameState)
		turn++
	}

	winner := e.State.Winner()
	if winner != game.Empty {
		log.Info().Msgf("game ended with %s completing a line after %d moves", winner, len(moveMetrics))
	} else {
		log.Info().Msgf("game ended without a winner after %d moves", len(moveMetrics))
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
	}
	return winner, gameMetric, moveMetrics
}

type agentAdapter struct {
	InternalAgent agent.Agent
}

// FindMove asks the agent for a move and replaces a failed or illegal answer with the first legal move.
func (a agentAdapter) FindMove(gs *game.GameState, legal []game.Move) (game.Move, agent.Decision) {
	decision, err := a.InternalAgent.FindMove(gs.Copy())
	if err != nil {
		log.Warn().Err(err).Msgf("agent for %s failed, falling back to %s", gs.Player(), legal[0])
		return legal[0], decision
	}
	if !slices.Contains(legal, decision.Move) {
		log.Warn().Msgf("agent for %s returned illegal move %s, falling back to %s", gs.Player(), decision.Move, legal[0])
		return legal[0], decision
	}
	return decision.Move, decision
}
