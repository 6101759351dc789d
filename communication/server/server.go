package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cube/communication"
	"cube/game"
	"cube/meta"
	"cube/searcher"
	"cube/searcher/agent"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 16

// Server answers evaluation and move requests for arbitrary boards. It keeps no state
// between requests, every request builds its own search tree.
type Server struct {
	depth      int
	maxDepth   int
	goroutines int
	router     chi.Router
}

func NewServer(depth, maxDepth, goroutines int) *Server {
	if depth < 1 || depth > maxDepth {
		panic(fmt.Sprintf("default depth %d must be in [1, %d]", depth, maxDepth))
	}
	s := &Server{
		depth:      depth,
		maxDepth:   maxDepth,
		goroutines: goroutines,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.Get(communication.PingPath, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post(communication.EvaluatePath, s.handleEvaluate)
	r.Post(communication.BestMovePath, s.handleBestMove)

	s.router = r
	return s
}

// Default returns a server configured with the package defaults.
func Default() *Server {
	return NewServer(meta.DEPTH, meta.MAX_DEPTH, meta.GO_ROUTINES)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the advisor API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting advisor server on %s (depth %d, max depth %d)", addr, s.depth, s.maxDepth)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var payload communication.EvaluateRequest
	if !decode(w, r, &payload) {
		return
	}
	cube, ok := parseBoard(w, payload.Board, payload.Player)
	if !ok {
		return
	}

	outcome := game.Evaluate(cube, payload.Player)
	writeJSON(w, http.StatusOK, communication.EvaluateResponse{Outcome: outcome})
}

func (s *Server) handleBestMove(w http.ResponseWriter, r *http.Request) {
	var payload communication.BestMoveRequest
	if !decode(w, r, &payload) {
		return
	}
	cube, ok := parseBoard(w, payload.Board, payload.Player)
	if !ok {
		return
	}
	depth := payload.Depth
	if depth == 0 {
		depth = s.depth
	}
	if depth < 1 || depth > s.maxDepth {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("depth must be in [1, %d]", s.maxDepth))
		return
	}

	advisor := agent.NewAdvisor(searcher.NewMinimax(
		searcher.WithDepth(depth),
		searcher.WithGoroutines(s.goroutines),
		searcher.WithMetrics(),
	))
	decision, err := advisor.FindMove(game.NewGameState(cube, payload.Player))
	switch {
	case errors.Is(err, agent.ErrGameOver):
		writeJSON(w, http.StatusConflict, communication.ErrorResponse{Error: err.Error(), Outcome: &decision.Score})
		return
	case errors.Is(err, searcher.ErrNoLegalMove):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hlog.FromRequest(r).Debug().
		Stringer("move", decision.Move).
		Stringer("score", decision.Score).
		Int("nodes", decision.Metrics.Nodes).
		Msg("advised move")
	writeJSON(w, http.StatusOK, communication.BestMoveResponse{
		Move:     decision.Move,
		Score:    decision.Score,
		Depth:    depth,
		Nodes:    decision.Metrics.Nodes,
		Duration: decision.Metrics.Duration.String(),
	})
}

func decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload: "+err.Error())
		return false
	}
	return true
}

func parseBoard(w http.ResponseWriter, board string, player game.Piece) (game.Cube, bool) {
	if !player.IsPlayer() {
		writeError(w, http.StatusBadRequest, game.ErrUnknownPlayer.Error())
		return game.Cube{}, false
	}
	cube, err := game.ParseCube(board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return game.Cube{}, false
	}
	return cube, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, communication.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
