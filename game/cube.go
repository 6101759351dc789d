package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

const (
	Size    = 4           // Cells along each axis
	Pillars = Size * Size // Number of (column, row) pillars
	Cells   = Pillars * Size
)

var ErrColumnFull = errors.New("pillar is full")

// Cube is the 4x4x4 playing field indexed by [column][row][height].
// Height 0 is the bottom; pieces fall onto the highest occupied cell of a pillar.
// The zero value is an empty cube.
type Cube [Size][Size][Size]Piece

// Place drops piece into the pillar at (column, row) and returns the height it lands on.
func (c *Cube) Place(piece Piece, column, row int) (int, error) {
	for height := 0; height < Size; height++ {
		if c[column][row][height] == Empty {
			c[column][row][height] = piece
			return height, nil
		}
	}
	return -1, fmt.Errorf("cannot place %s in pillar <%d,%d>: %w", piece, column, row, ErrColumnFull)
}

func (c Cube) Get(column, row, height int) Piece {
	return c[column][row][height]
}

func (c Cube) At(at Coord) Piece {
	return c[at.Column][at.Row][at.Height]
}

// Clone returns an independent copy of the cube.
func (c Cube) Clone() Cube {
	return c
}

// Height returns the number of pieces stacked in the pillar at (column, row).
func (c Cube) Height(column, row int) int {
	height := 0
	for height < Size && c[column][row][height] != Empty {
		height++
	}
	return height
}

func (c Cube) Full(column, row int) bool {
	return c[column][row][Size-1] != Empty
}

// LegalMoves lists the pillars that still have room, in ascending Move.Index order.
func (c Cube) LegalMoves() []Move {
	moves := make([]Move, 0, Pillars)
	for index := 0; index < Pillars; index++ {
		move := MoveFromIndex(index)
		if !c.Full(move.Column, move.Row) {
			moves = append(moves, move)
		}
	}
	return moves
}

func (c Cube) Count(piece Piece) int {
	count := 0
	for column := 0; column < Size; column++ {
		for row := 0; row < Size; row++ {
			for height := 0; height < Size; height++ {
				if c[column][row][height] == piece {
					count++
				}
			}
		}
	}
	return count
}

func (c Cube) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, c)
	return StateHash(hasher.Sum64())
}
