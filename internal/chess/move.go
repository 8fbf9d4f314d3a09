package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Move is a from/to pair with an optional promotion kind.
// Promotion is Empty unless a pawn reaches its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// IsPromotion returns true if the move carries a promotion kind.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// UCI returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// String returns the UCI form.
func (m Move) String() string {
	return m.UCI()
}

// MoveResult is the outcome of a successful transition.
type MoveResult struct {
	// Position after the move, with its status already evaluated.
	Position Position

	// Move as applied, with the promotion kind resolved.
	Move Move
}

// ParsePromotion converts a promotion letter (q, r, b, n in either case) to a kind.
// The empty string means no promotion was requested.
func ParsePromotion(s string) (PieceKind, error) {
	switch s {
	case "":
		return Empty, nil
	case "q", "Q":
		return Queen, nil
	case "r", "R":
		return Rook, nil
	case "b", "B":
		return Bishop, nil
	case "n", "N":
		return Knight, nil
	}
	return Empty, fmt.Errorf("promotion %q: %w", s, errors.ErrInvalidPromotion)
}

// ParseMove builds a move from boundary text: two squares and an optional promotion letter.
func ParseMove(from, to, promotion string) (Move, error) {
	f, err := ParseSquare(from)
	if err != nil {
		return Move{}, err
	}
	t, err := ParseSquare(to)
	if err != nil {
		return Move{}, err
	}
	p, err := ParsePromotion(promotion)
	if err != nil {
		return Move{}, err
	}
	return Move{From: f, To: t, Promotion: p}, nil
}

// ParseUCI parses long algebraic notation such as "e2e4" or "a7a8q".
func ParseUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	return ParseMove(s[0:2], s[2:4], s[4:])
}
