package searcher

import (
	"cube/experiments/metrics"
	"cube/game"
)

// Node is a position in the search tree. Each node exclusively owns its children.
type Node struct {
	Cube     game.Cube    // Position after Move was played
	Move     game.Move    // Move that produced Cube, game.NoMove for the root
	Children []*Node      // One child per open pillar, in ascending move index order
	Score    game.Outcome // Minimax value, set by Backup
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size counts the nodes of the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// BuildTree expands every legal placement from cube, alternating movers, until maxDepth.
// A node is a leaf at maxDepth, when every pillar is full, or when a line is already complete.
func BuildTree(cube game.Cube, mover game.Piece, depth, maxDepth int) *Node {
	return buildTree(cube, game.NoMove, mover, depth, maxDepth, metrics.NewDummyCollector())
}

func buildTree(cube game.Cube, move game.Move, mover game.Piece, depth, maxDepth int, collector metrics.Collector) *Node {
	node := &Node{Cube: cube, Move: move}
	collector.AddNode()

	if depth >= maxDepth || game.Winner(cube) != game.Empty {
		return node
	}

	for index := 0; index < game.Pillars; index++ {
		next := game.MoveFromIndex(index)
		child := cube.Clone()
		if _, err := child.Place(mover, next.Column, next.Row); err != nil {
			continue // Full pillar
		}
		node.Children = append(node.Children, buildTree(child, next, mover.Opponent(), depth+1, maxDepth, collector))
	}
	return node
}
