package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/output"
)

// CreateGameRequest is the optional body of POST /games.
type CreateGameRequest struct {
	FEN string `json:"fen"`
}

// MoveRequest is the body of POST /games/{id}/moves.
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// GameResponse describes a stored session.
type GameResponse struct {
	ID      string              `json:"id"`
	State   output.JSONPosition `json:"state"`
	History []string            `json:"history"`
}

// MovesResponse lists legal moves.
type MovesResponse struct {
	Square string            `json:"square,omitempty"`
	Moves  []output.JSONMove `json:"moves"`
}

// UndoResponse is the result of POST /games/{id}/undo.
type UndoResponse struct {
	Undone output.JSONMove     `json:"undone"`
	State  output.JSONPosition `json:"state"`
}

// FENResponse is the result of GET /games/{id}/fen.
type FENResponse struct {
	FEN string `json:"fen"`
}

// PerftResponse is the result of GET /games/{id}/perft.
type PerftResponse struct {
	Depth int               `json:"depth"`
	Nodes uint64            `json:"nodes"`
	Moves map[string]uint64 `json:"moves"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// errorMapping pairs a sentinel with its HTTP status and code.
type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{errors.ErrInvalidSquare, http.StatusUnprocessableEntity, "invalid_square"},
	{errors.ErrInvalidPromotion, http.StatusUnprocessableEntity, "invalid_promotion"},
	{errors.ErrNoPieceAtSource, http.StatusUnprocessableEntity, "no_piece_at_source"},
	{errors.ErrNotActivePlayersPiece, http.StatusUnprocessableEntity, "not_active_players_piece"},
	{errors.ErrIllegalMove, http.StatusUnprocessableEntity, "illegal_move"},
	{errors.ErrPromotionMismatch, http.StatusUnprocessableEntity, "promotion_mismatch"},
	{errors.ErrUnsupportedFEN, http.StatusUnprocessableEntity, "unsupported_fen"},
	{errors.ErrGameOver, http.StatusConflict, "game_over"},
	{errors.ErrNothingToUndo, http.StatusConflict, "nothing_to_undo"},
	{errors.ErrGameNotFound, http.StatusNotFound, "game_not_found"},
}

// classify maps an error to a status code and machine-readable code.
func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}
