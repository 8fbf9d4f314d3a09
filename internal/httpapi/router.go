// Package httpapi exposes game sessions over HTTP.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/output"
)

// GameRepository persists sessions by id. *store.GameStore implements it.
type GameRepository interface {
	Create(g *engine.Game) (string, error)
	Load(id string) (*engine.Game, error)
	Save(id string, g *engine.Game) error
	Delete(id string) error
}

// Handler serves the game endpoints.
type Handler struct {
	games GameRepository
	cfg   *config.Config
	log   zerolog.Logger

	// mu serialises load-modify-save cycles.
	mu sync.Mutex
}

// NewRouter creates the HTTP handler with request-id and access-log middleware.
func NewRouter(log zerolog.Logger, games GameRepository, cfg *config.Config) http.Handler {
	h := &Handler{
		games: games,
		cfg:   cfg,
		log:   log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /games", h.createGame)
	mux.HandleFunc("GET /games/{id}", h.getGame)
	mux.HandleFunc("DELETE /games/{id}", h.deleteGame)
	mux.HandleFunc("GET /games/{id}/moves", h.legalMoves)
	mux.HandleFunc("POST /games/{id}/moves", h.applyMove)
	mux.HandleFunc("POST /games/{id}/undo", h.undo)
	mux.HandleFunc("GET /games/{id}/fen", h.fen)
	mux.HandleFunc("GET /games/{id}/perft", h.perft)

	return RequestID(AccessLog(log, mux))
}

// NewServer wraps the handler in an http.Server configured from cfg.
func NewServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.cfg.Server.ServiceName,
	})
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if !h.decodeBody(w, r, &req, true) {
		return
	}

	g := engine.NewGame()
	if req.FEN != "" {
		var err error
		if g, err = engine.LoadGame(req.FEN); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	id, err := h.games.Create(g)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, gameResponse(id, g))
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	g, err := h.games.Load(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(id, g))
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.games.Delete(r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) legalMoves(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Load(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := MovesResponse{}
	if square := r.URL.Query().Get("square"); square != "" {
		sq, err := chess.ParseSquare(square)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		resp.Square = sq.String()
		resp.Moves = output.MovesToJSON(g.LegalMoves(sq))
	} else {
		resp.Moves = output.MovesToJSON(g.AllLegalMoves())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) applyMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !h.decodeBody(w, r, &req, false) {
		return
	}
	move, err := chess.ParseMove(req.From, req.To, req.Promotion)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	g, err := h.games.Load(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := g.Apply(move)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.games.Save(id, g); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.MoveResultToJSON(res))
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := r.PathValue("id")
	g, err := h.games.Load(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	undone, err := g.Undo()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.games.Save(id, g); err != nil {
		h.fail(w, r, err)
		return
	}
	pos := g.Position()
	writeJSON(w, http.StatusOK, UndoResponse{
		Undone: output.MoveToJSON(undone),
		State:  output.PositionToJSON(&pos),
	})
}

func (h *Handler) fen(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Load(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FENResponse{FEN: g.FEN()})
}

func (h *Handler) perft(w http.ResponseWriter, r *http.Request) {
	depth, err := strconv.Atoi(r.URL.Query().Get("depth"))
	if err != nil || depth < 1 || depth > h.cfg.Perft.MaxDepth {
		writeError(w, http.StatusBadRequest, "bad_request",
			fmt.Errorf("depth must be an integer in 1..%d", h.cfg.Perft.MaxDepth))
		return
	}

	g, err := h.games.Load(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	entries, err := engine.PerftDivide(r.Context(), g.Position(), depth, h.cfg.Perft.Workers)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := PerftResponse{Depth: depth, Moves: make(map[string]uint64, len(entries))}
	for _, e := range entries {
		resp.Moves[e.Move.UCI()] = e.Nodes
		resp.Nodes += e.Nodes
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeBody reads a JSON body into v, replying 400 on malformed input.
// An empty body is accepted when optional is set.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (optional && err == io.EOF) {
		return true
	}
	writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("malformed request body: %w", err))
	return false
}

// fail writes the mapped error reply and logs server-side failures.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("rid", GetRequestID(r.Context())).Msg("request failed")
	}
	writeError(w, status, code, err)
}

func gameResponse(id string, g *engine.Game) GameResponse {
	pos := g.Position()
	history := make([]string, 0, len(g.History()))
	for _, m := range g.History() {
		history = append(history, m.UCI())
	}
	return GameResponse{
		ID:      id,
		State:   output.PositionToJSON(&pos),
		History: history,
	}
}
