package chess

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Square addresses one board cell. File and Rank are zero-based.
type Square struct {
	File uint8
	Rank uint8
}

// Coordinate bases for algebraic notation.
const (
	FileBase = 'a'
	RankBase = '1'
)

// NewSquare creates a square from zero-based coordinates.
func NewSquare(file, rank int) (Square, error) {
	if !OnBoard(file, rank) {
		return Square{}, fmt.Errorf("coordinates (%d, %d): %w", file, rank, errors.ErrInvalidSquare)
	}
	return Square{File: uint8(file), Rank: uint8(rank)}, nil
}

// OnBoard reports whether the coordinates lie on the board.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// ParseSquare parses two-character algebraic notation such as "e4".
// The file letter is case-insensitive.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{File: file - FileBase, Rank: rank - RankBase}, nil
}

// MustParseSquare is like ParseSquare but panics on bad input.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Offset returns the square displaced by (df, dr) and whether it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := int(s.File) + df
	r := int(s.Rank) + dr
	if !OnBoard(f, r) {
		return Square{}, false
	}
	return Square{File: uint8(f), Rank: uint8(r)}, true
}

// String returns lowercase algebraic notation.
func (s Square) String() string {
	return string([]byte{FileBase + s.File, RankBase + s.Rank})
}
