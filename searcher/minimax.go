package searcher

import (
	"fmt"

	"cube/experiments/metrics"
	"cube/game"
	"cube/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax searches the full game tree to a fixed depth.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluator
	metrics    func() metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// WithGoroutines backs up the root's children concurrently.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEPTH,
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.Evaluate,
		metrics:    metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(m)
	}
	if m.depth < 1 {
		panic(fmt.Sprintf("search depth must be at least 1, got %d", m.depth))
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Goroutines() int {
	return m.goroutines
}

// Evaluate scores cube statically with the configured evaluation function.
func (m *Minimax) Evaluate(cube game.Cube, player game.Piece) game.Outcome {
	return m.evaluate(cube, player)
}

// Search builds the tree with player to move at the root and backs it up from player's perspective.
func (m *Minimax) Search(cube game.Cube, player game.Piece) (*Node, metrics.SearchMetric) {
	collector := m.metrics()
	collector.Start(m.depth, m.goroutines)

	root := buildTree(cube, game.NoMove, player, 0, m.depth, collector)
	evaluate := func(cube game.Cube, perspective game.Piece) game.Outcome {
		collector.AddLeaf()
		return m.evaluate(cube, perspective)
	}

	if m.goroutines > 1 && !root.IsLeaf() {
		m.backupParallel(root, player, evaluate)
	} else {
		Backup(root, player, true, evaluate)
	}

	metric := collector.Complete()
	log.Debug().
		Int("depth", m.depth).
		Int("goroutines", m.goroutines).
		Int("nodes", metric.Nodes).
		Int("leaves", metric.Leaves).
		Str("score", root.Score.String()).
		Msg("minimax-search")
	return root, metric
}

// backupParallel backs up each root child on its own goroutine. Subtrees share nothing.
func (m *Minimax) backupParallel(root *Node, perspective game.Piece, evaluate game.Evaluator) {
	g := errgroup.Group{}
	g.SetLimit(m.goroutines)
	for _, child := range root.Children {
		child := child
		g.Go(func() error {
			Backup(child, perspective, false, evaluate)
			return nil
		})
	}
	_ = g.Wait()

	root.Score = root.Children[0].Score
	for _, child := range root.Children[1:] {
		if child.Score.Better(root.Score) {
			root.Score = child.Score
		}
	}
}

// Backup computes the minimax value of node from perspective's point of view
// and stores it on every node of the subtree. Leaves are scored by evaluate;
// inner nodes take the max of their children when maximizing, the min otherwise.
func Backup(node *Node, perspective game.Piece, maximizing bool, evaluate game.Evaluator) game.Outcome {
	if node.IsLeaf() {
		node.Score = evaluate(node.Cube, perspective)
		return node.Score
	}

	best := Backup(node.Children[0], perspective, !maximizing, evaluate)
	for _, child := range node.Children[1:] {
		score := Backup(child, perspective, !maximizing, evaluate)
		if (maximizing && score.Better(best)) || (!maximizing && score.Worse(best)) {
			best = score
		}
	}
	node.Score = best
	return best
}
