package engine

import (
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPosToken is accepted by ImportPosition as an alias for InitialFEN.
const StartPosToken = "startpos"

// UnsupportedFEN is returned by ExportPosition for any position other than
// the initial one.
const UnsupportedFEN = "unsupported-fen-serialization"

// ImportPosition builds a position from text. Only the starting position is
// supported, either as StartPosToken or as InitialFEN.
func ImportPosition(text string) (chess.Position, error) {
	switch strings.TrimSpace(text) {
	case StartPosToken, InitialFEN:
		return chess.InitialPosition(), nil
	}
	return chess.Position{}, errors.Wrapf(errors.ErrUnsupportedFEN, "import %q", abbreviate(text))
}

// ExportPosition returns InitialFEN for the starting position and
// UnsupportedFEN for everything else.
func ExportPosition(pos *chess.Position) string {
	if *pos == chess.InitialPosition() {
		return InitialFEN
	}
	return UnsupportedFEN
}

// abbreviate shortens long input for error messages.
func abbreviate(s string) string {
	const max = 64
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
