// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates malformed square notation or out-of-range coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPromotion indicates an unknown promotion letter at the boundary.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrNotActivePlayersPiece indicates the source piece belongs to the side not to move.
	ErrNotActivePlayersPiece = errors.New("not active player's piece")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionMismatch indicates a promotion requested when not applicable,
	// or an invalid promotion kind when one is required.
	ErrPromotionMismatch = errors.New("promotion mismatch")

	// ErrUnsupportedFEN indicates position notation the importer does not accept.
	ErrUnsupportedFEN = errors.New("unsupported fen")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNothingToUndo indicates an undo at the start of a game's history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the squares involved, the
// requested promotion and the ply at which the move was attempted.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err       error  // The underlying error
	From      string // Source square in algebraic notation
	To        string // Destination square in algebraic notation
	Promotion string // Requested promotion letter (if any)
	Ply       int    // Ply number where error occurred (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		move := e.From + e.To
		if e.Promotion != "" {
			move += "=" + e.Promotion
		}
		parts = append(parts, fmt.Sprintf("move %s", move))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error with the given text.
func New(text string) error {
	return errors.New(text)
}
