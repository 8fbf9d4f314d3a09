package output

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	Board           map[string]JSONPiece `json:"board"`
	ActiveColor     string               `json:"activeColor"` // "white" or "black"
	Status          JSONStatus           `json:"status"`
	HalfmoveClock   uint                 `json:"halfmoveClock"`
	FullmoveNumber  uint                 `json:"fullmoveNumber"`
	CastlingRights  JSONCastlingRights   `json:"castlingRights"`
	EnPassantTarget *string              `json:"enPassantTarget"`
}

// JSONPiece represents an occupied square.
type JSONPiece struct {
	Color string `json:"color"`
	Kind  string `json:"kind"`
}

// JSONStatus represents the game status. Winner is set for checkmate and
// SideToMove for stalemate.
type JSONStatus struct {
	Type       string `json:"type"`
	Winner     string `json:"winner,omitempty"`
	SideToMove string `json:"sideToMove,omitempty"`
}

// JSONCastlingRights represents the remaining castling rights.
type JSONCastlingRights struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	UCI       string `json:"uci"`
}

// JSONMoveResult is an applied move with the position it produced.
type JSONMoveResult struct {
	Move  JSONMove     `json:"move"`
	State JSONPosition `json:"state"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(pos *chess.Position) JSONPosition {
	jp := JSONPosition{
		Board:          make(map[string]JSONPiece, 32),
		ActiveColor:    colorName(pos.ToMove),
		Status:         StatusToJSON(pos.Status),
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.MoveNumber,
		CastlingRights: JSONCastlingRights{
			WhiteKingSide:  pos.Castling.WhiteKingSide,
			WhiteQueenSide: pos.Castling.WhiteQueenSide,
			BlackKingSide:  pos.Castling.BlackKingSide,
			BlackQueenSide: pos.Castling.BlackQueenSide,
		},
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: uint8(file), Rank: uint8(rank)}
			piece := pos.At(sq)
			if piece.IsEmpty() {
				continue
			}
			jp.Board[sq.String()] = JSONPiece{Color: colorName(piece.Colour), Kind: kindName(piece.Kind)}
		}
	}

	if pos.EnPassant {
		target := pos.EPSquare.String()
		jp.EnPassantTarget = &target
	}
	return jp
}

// PositionFromJSON converts a JSON position back. It is the inverse of
// PositionToJSON.
func PositionFromJSON(jp JSONPosition) (chess.Position, error) {
	var pos chess.Position

	toMove, err := parseColor(jp.ActiveColor)
	if err != nil {
		return pos, err
	}
	pos.ToMove = toMove

	for name, jpiece := range jp.Board {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			return pos, err
		}
		colour, err := parseColor(jpiece.Color)
		if err != nil {
			return pos, err
		}
		kind, err := parseKind(jpiece.Kind)
		if err != nil {
			return pos, err
		}
		pos.Board.Set(sq, chess.Piece{Colour: colour, Kind: kind})
	}

	if pos.Status, err = StatusFromJSON(jp.Status); err != nil {
		return pos, err
	}

	pos.HalfmoveClock = jp.HalfmoveClock
	pos.MoveNumber = jp.FullmoveNumber
	pos.Castling = chess.CastlingRights{
		WhiteKingSide:  jp.CastlingRights.WhiteKingSide,
		WhiteQueenSide: jp.CastlingRights.WhiteQueenSide,
		BlackKingSide:  jp.CastlingRights.BlackKingSide,
		BlackQueenSide: jp.CastlingRights.BlackQueenSide,
	}

	if jp.EnPassantTarget != nil {
		sq, err := chess.ParseSquare(*jp.EnPassantTarget)
		if err != nil {
			return pos, err
		}
		pos.EnPassant = true
		pos.EPSquare = sq
	}
	return pos, nil
}

// StatusToJSON converts a status to JSON format.
func StatusToJSON(s chess.Status) JSONStatus {
	js := JSONStatus{Type: s.Kind.String()}
	switch s.Kind {
	case chess.StatusCheckmate:
		js.Winner = colorName(s.Colour)
	case chess.StatusStalemate:
		js.SideToMove = colorName(s.Colour)
	}
	return js
}

// StatusFromJSON converts a JSON status back.
func StatusFromJSON(js JSONStatus) (chess.Status, error) {
	switch js.Type {
	case chess.StatusInProgress.String():
		return chess.InProgress(), nil
	case chess.StatusCheckmate.String():
		winner, err := parseColor(js.Winner)
		if err != nil {
			return chess.Status{}, err
		}
		return chess.Checkmate(winner), nil
	case chess.StatusStalemate.String():
		side, err := parseColor(js.SideToMove)
		if err != nil {
			return chess.Status{}, err
		}
		return chess.Stalemate(side), nil
	}
	return chess.Status{}, fmt.Errorf("unknown status %q", js.Type)
}

// MoveToJSON converts a move to JSON format.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		From: m.From.String(),
		To:   m.To.String(),
		UCI:  m.UCI(),
	}
	if m.IsPromotion() {
		jm.Promotion = kindName(m.Promotion)
	}
	return jm
}

// MovesToJSON converts a move list to JSON format.
func MovesToJSON(moves []chess.Move) []JSONMove {
	result := make([]JSONMove, len(moves))
	for i, m := range moves {
		result[i] = MoveToJSON(m)
	}
	return result
}

// MoveResultToJSON converts an applied move to JSON format.
func MoveResultToJSON(res chess.MoveResult) JSONMoveResult {
	return JSONMoveResult{
		Move:  MoveToJSON(res.Move),
		State: PositionToJSON(&res.Position),
	}
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func parseColor(s string) (chess.Colour, error) {
	switch s {
	case "white":
		return chess.White, nil
	case "black":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown color %q", s)
}

// kindName returns the piece type as a string.
func kindName(k chess.PieceKind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}

func parseKind(s string) (chess.PieceKind, error) {
	for k := chess.Pawn; k <= chess.King; k++ {
		if kindName(k) == s {
			return k, nil
		}
	}
	return chess.Empty, fmt.Errorf("unknown piece kind %q", s)
}
