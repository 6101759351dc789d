package game

import "fmt"

// Move drops a piece into the pillar at (Column, Row).
type Move struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// NoMove marks the root of a search tree, which no move produced.
var NoMove = Move{Column: -1, Row: -1}

// MoveFromIndex is the inverse of Move.Index.
func MoveFromIndex(index int) Move {
	return Move{Column: index % Size, Row: index / Size}
}

// Index orders pillars row-major: row*4 + column.
func (m Move) Index() int {
	return m.Row*Size + m.Column
}

func (m Move) String() string {
	return fmt.Sprintf("<%d,%d>", m.Column, m.Row)
}
