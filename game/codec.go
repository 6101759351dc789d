package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidLength = errors.New("invalid board length")
	ErrFloatingPiece = errors.New("piece above an empty cell")
)

var pieceBySymbol = map[rune]Piece{
	'.': Empty,
	'C': CubePiece,
	'B': BallPiece,
}

// ParseCube reads the text encoding produced by Cube.String: 64 symbols, grouped
// by pillar in Move.Index order and listed bottom to top within each pillar.
// '.' is empty, 'C' a cube and 'B' a ball. Whitespace, '/' and '|' are ignored.
func ParseCube(text string) (Cube, error) {
	pieces := make([]Piece, 0, Cells)
	for offset, r := range text {
		if unicode.IsSpace(r) || r == '/' || r == '|' {
			continue
		}
		piece, ok := pieceBySymbol[unicode.ToUpper(r)]
		if !ok {
			return Cube{}, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, r, offset)
		}
		pieces = append(pieces, piece)
	}
	if len(pieces) != Cells {
		return Cube{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidLength, len(pieces), Cells)
	}

	var cube Cube
	for index := 0; index < Pillars; index++ {
		move := MoveFromIndex(index)
		for height := 0; height < Size; height++ {
			piece := pieces[index*Size+height]
			if piece == Empty {
				continue
			}
			if height > 0 && cube[move.Column][move.Row][height-1] == Empty {
				return Cube{}, fmt.Errorf("%w in pillar %s at height %d", ErrFloatingPiece, move, height)
			}
			cube[move.Column][move.Row][height] = piece
		}
	}
	return cube, nil
}

// String encodes the cube as 16 pillars separated by '/'.
func (c Cube) String() string {
	var b strings.Builder
	b.Grow(Cells + Pillars)
	for index := 0; index < Pillars; index++ {
		if index > 0 {
			b.WriteByte('/')
		}
		move := MoveFromIndex(index)
		for height := 0; height < Size; height++ {
			b.WriteByte(c[move.Column][move.Row][height].Symbol())
		}
	}
	return b.String()
}

// Render draws the four horizontal layers side by side, top layer first.
// Within a layer, rows run top to bottom and columns left to right.
func (c Cube) Render() string {
	var b strings.Builder
	for height := Size - 1; height >= 0; height-- {
		fmt.Fprintf(&b, "h%d    ", height)
	}
	b.WriteString("\n")
	for row := 0; row < Size; row++ {
		for height := Size - 1; height >= 0; height-- {
			for column := 0; column < Size; column++ {
				b.WriteByte(c[column][row][height].Symbol())
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
