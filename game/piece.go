package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Piece is the content of a single cell of the cube.
type Piece int8

const (
	Empty     Piece = iota // 0
	CubePiece              // 1, moves first
	BallPiece              // 2
)

// Opponent returns the other player. Panics for Empty.
func (p Piece) Opponent() Piece {
	switch p {
	case CubePiece:
		return BallPiece
	case BallPiece:
		return CubePiece
	}
	panic(fmt.Sprintf("piece %d has no opponent", p))
}

func (p Piece) IsPlayer() bool {
	return p == CubePiece || p == BallPiece
}

// Symbol is the single character used by the text encoding.
func (p Piece) Symbol() byte {
	switch p {
	case CubePiece:
		return 'C'
	case BallPiece:
		return 'B'
	}
	return '.'
}

func (p Piece) String() string {
	switch p {
	case CubePiece:
		return "cube"
	case BallPiece:
		return "ball"
	}
	return "empty"
}

// ParsePiece accepts a player name ("cube", "ball") or its symbol ("c", "b").
func ParsePiece(s string) (Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cube", "c":
		return CubePiece, nil
	case "ball", "b":
		return BallPiece, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

func (p Piece) MarshalText() ([]byte, error) {
	if !p.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, p)
	}
	return []byte(p.String()), nil
}

func (p *Piece) UnmarshalText(text []byte) error {
	piece, err := ParsePiece(string(text))
	if err != nil {
		return err
	}
	*p = piece
	return nil
}
