// Package output provides position and move formatting as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// DefaultLineLength is the wrap width used for move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard writes the board from White's side, rank 8 first, followed by
// a line naming the side to move and the status.
func RenderBoard(w io.Writer, pos *chess.Position) {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(pos.At(chess.Square{File: uint8(file), Rank: uint8(rank)}).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(Summary(pos))
	sb.WriteByte('\n')
	fmt.Fprint(w, sb.String())
}

// Summary describes the side to move, the status and the extra state a
// board diagram does not show.
func Summary(pos *chess.Position) string {
	parts := []string{
		pos.ToMove.String() + " to move",
		pos.Status.String(),
		"castling " + castlingText(pos.Castling),
	}
	if pos.EnPassant {
		parts = append(parts, "en passant "+pos.EPSquare.String())
	}
	parts = append(parts, fmt.Sprintf("halfmove %d, move %d", pos.HalfmoveClock, pos.MoveNumber))
	return strings.Join(parts, "; ")
}

// castlingText renders rights in FEN order, "-" when none remain.
func castlingText(c chess.CastlingRights) string {
	if !c.Any() {
		return "-"
	}
	var sb strings.Builder
	if c.WhiteKingSide {
		sb.WriteByte('K')
	}
	if c.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if c.BlackKingSide {
		sb.WriteByte('k')
	}
	if c.BlackQueenSide {
		sb.WriteByte('q')
	}
	return sb.String()
}

// WriteMoveList writes moves in UCI form, wrapped at maxLineLength.
// An empty list is written as "(none)".
func WriteMoveList(w io.Writer, moves []chess.Move, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	if len(moves) == 0 {
		ow.Write("(none)")
	}
	for _, m := range moves {
		ow.Write(m.UCI())
	}
	ow.NewLine()
}
