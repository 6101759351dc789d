package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cube/communication"
	"cube/game"

	"github.com/stretchr/testify/require"
)

const (
	emptyBoard = "..../..../..../..../..../..../..../..../..../..../..../..../..../..../..../...."
	// Cube on (0..2, 0) and Ball on (0..2, 1), Cube to move wins at (3, 0).
	winningBoard = "C.../C.../C.../..../B.../B.../B.../..../..../..../..../..../..../..../..../...."
	// Cube has completed row 0.
	finishedBoard = "C.../C.../C.../C.../B.../B.../B.../..../..../..../..../..../..../..../..../...."
	drawnBoard    = "BBCB/BCCC/CCBB/BCBC/BCCB/BCCB/BBCB/CBBC/CCBC/CBCC/CBBC/BBCB/CCBC/CCBC/BBCB/BBCB"
)

func post(t *testing.T, s *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	Default().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, communication.PingPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestEvaluate(t *testing.T) {
	s := NewServer(1, 3, 1)

	t.Run("empty board", func(t *testing.T) {
		rec := post(t, s, communication.EvaluatePath, communication.EvaluateRequest{Board: emptyBoard, Player: game.BallPiece})

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"outcome":"76"}`, rec.Body.String())
	})

	t.Run("finished board", func(t *testing.T) {
		rec := post(t, s, communication.EvaluatePath, communication.EvaluateRequest{Board: finishedBoard, Player: game.BallPiece})

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"outcome":"loss"}`, rec.Body.String())
	})

	t.Run("bad board", func(t *testing.T) {
		rec := post(t, s, communication.EvaluatePath, communication.EvaluateRequest{Board: "C...", Player: game.CubePiece})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing player", func(t *testing.T) {
		rec := post(t, s, communication.EvaluatePath, map[string]string{"board": emptyBoard})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown player", func(t *testing.T) {
		rec := post(t, s, communication.EvaluatePath, map[string]string{"board": emptyBoard, "player": "pyramid"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBestMove(t *testing.T) {
	s := NewServer(1, 3, 2)

	t.Run("winning move", func(t *testing.T) {
		rec := post(t, s, communication.BestMovePath, communication.BestMoveRequest{Board: winningBoard, Player: game.CubePiece, Depth: 2})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp communication.BestMoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, game.Move{Column: 3, Row: 0}, resp.Move)
		require.Equal(t, game.Win, resp.Score)
		require.Equal(t, 2, resp.Depth)
		require.Positive(t, resp.Nodes)
	})

	t.Run("default depth", func(t *testing.T) {
		rec := post(t, s, communication.BestMovePath, communication.BestMoveRequest{Board: emptyBoard, Player: game.CubePiece})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp communication.BestMoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, game.Move{Column: 0, Row: 0}, resp.Move, "Ties should go to the smallest index")
		require.Equal(t, 1, resp.Depth)
		require.Equal(t, 1+game.Pillars, resp.Nodes)
	})

	t.Run("game already over", func(t *testing.T) {
		rec := post(t, s, communication.BestMovePath, communication.BestMoveRequest{Board: finishedBoard, Player: game.BallPiece})

		require.Equal(t, http.StatusConflict, rec.Code)
		var resp communication.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Outcome)
		require.Equal(t, game.Loss, *resp.Outcome)
	})

	t.Run("full board", func(t *testing.T) {
		rec := post(t, s, communication.BestMovePath, communication.BestMoveRequest{Board: drawnBoard, Player: game.CubePiece})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("depth out of range", func(t *testing.T) {
		rec := post(t, s, communication.BestMovePath, communication.BestMoveRequest{Board: emptyBoard, Player: game.CubePiece, Depth: 4})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, communication.BestMovePath, bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNewServer(t *testing.T) {
	require.Panics(t, func() { NewServer(4, 3, 1) })
}
