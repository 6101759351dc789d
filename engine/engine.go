package engine

import (
	"cube/experiments/metrics"
	"cube/game"
	"cube/meta"
)

const MaxTurns = meta.MAX_TURNS

type Engine interface {
	// Run plays a game till a line is completed, the cube is full or the turn limit is reached
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
