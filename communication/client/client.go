package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cube/communication"
	"cube/experiments/metrics"
	"cube/game"
	"cube/searcher"
	"cube/searcher/agent"

	"github.com/rs/zerolog/log"
)

var ErrServer = errors.New("advisor server error")

// RemoteAgent asks an advisor server for moves. It implements agent.Agent so the engine
// can pit a local agent against a remote one.
type RemoteAgent struct {
	serverURL string
	depth     int
	client    *http.Client
}

// NewRemoteAgent returns an agent backed by the server at serverURL. A depth of zero uses the server's default.
func NewRemoteAgent(serverURL string, depth int) *RemoteAgent {
	return &RemoteAgent{
		serverURL: strings.TrimRight(serverURL, "/"),
		depth:     depth,
		client:    &http.Client{Timeout: time.Minute},
	}
}

func (ra *RemoteAgent) Ping() error {
	resp, err := ra.client.Get(ra.serverURL + communication.PingPath)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: ping returned %s", ErrServer, resp.Status)
	}
	return nil
}

// Evaluate returns the server's static evaluation of cube for player.
func (ra *RemoteAgent) Evaluate(cube game.Cube, player game.Piece) (game.Outcome, error) {
	var out communication.EvaluateResponse
	err := ra.post(communication.EvaluatePath, communication.EvaluateRequest{
		Board:  cube.String(),
		Player: player,
	}, &out)
	return out.Outcome, err
}

func (ra *RemoteAgent) FindMove(state game.State) (agent.Decision, error) {
	var out communication.BestMoveResponse
	err := ra.post(communication.BestMovePath, communication.BestMoveRequest{
		Board:  state.Board().String(),
		Player: state.Player(),
		Depth:  ra.depth,
	}, &out)
	if err != nil {
		var gameOver *gameOverError
		if errors.As(err, &gameOver) {
			return agent.Decision{Move: game.NoMove, Score: gameOver.outcome}, err
		}
		return agent.Decision{Move: game.NoMove}, err
	}

	duration, err := time.ParseDuration(out.Duration)
	if err != nil {
		log.Warn().Err(err).Msgf("server returned an unparsable duration %q", out.Duration)
	}
	return agent.Decision{
		Move:  out.Move,
		Score: out.Score,
		Metrics: metrics.SearchMetric{
			Depth:    out.Depth,
			Duration: duration,
			Nodes:    out.Nodes,
		},
	}, nil
}

type gameOverError struct {
	outcome game.Outcome
	message string
}

func (e *gameOverError) Error() string { return e.message }
func (e *gameOverError) Unwrap() error { return agent.ErrGameOver }

func (ra *RemoteAgent) post(path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := ra.client.Post(ra.serverURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var failure communication.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
		return fmt.Errorf("%w: %s", ErrServer, resp.Status)
	}
	switch resp.StatusCode {
	case http.StatusConflict:
		gameOver := &gameOverError{message: failure.Error}
		if failure.Outcome != nil {
			gameOver.outcome = *failure.Outcome
		}
		return gameOver
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", searcher.ErrNoLegalMove, failure.Error)
	}
	return fmt.Errorf("%w: %s: %s", ErrServer, resp.Status, failure.Error)
}
