// Package communication holds the JSON messages exchanged between the advisor server and its clients.
package communication

import (
	"cube/game"
)

const (
	PingPath     = "/api/ping"
	EvaluatePath = "/api/evaluate"
	BestMovePath = "/api/bestmove"
)

type EvaluateRequest struct {
	Board  string     `json:"board"` // Encoded as by game.Cube.String
	Player game.Piece `json:"player"`
}

type EvaluateResponse struct {
	Outcome game.Outcome `json:"outcome"`
}

type BestMoveRequest struct {
	Board  string     `json:"board"`
	Player game.Piece `json:"player"`
	Depth  int        `json:"depth,omitempty"` // Server default if zero
}

type BestMoveResponse struct {
	Move     game.Move    `json:"move"`
	Score    game.Outcome `json:"score"`
	Depth    int          `json:"depth"`
	Nodes    int          `json:"nodes"`
	Duration string       `json:"duration"`
}

// ErrorResponse carries the outcome of the initial position when the game is already over.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Outcome *game.Outcome `json:"outcome,omitempty"`
}
