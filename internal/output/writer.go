package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// Format selects how a StateWriter renders.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// StateWriter is the interface for writing engine state to output.
// Different implementations handle different output formats (text, JSON).
type StateWriter interface {
	// WritePosition writes a full position.
	WritePosition(pos *chess.Position) error

	// WriteMoves writes a list of moves.
	WriteMoves(moves []chess.Move) error

	// WriteResult writes an applied move and the position it produced.
	WriteResult(res chess.MoveResult) error

	// WriteStatus writes only the status of a position.
	WriteStatus(status chess.Status) error
}

// NewStateWriter creates a writer for the format.
func NewStateWriter(w io.Writer, format Format, lineLength int) StateWriter {
	if format == FormatJSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, lineLength)
}

// TextWriter writes state as plain text.
type TextWriter struct {
	w          io.Writer
	lineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, lineLength int) *TextWriter {
	return &TextWriter{w: w, lineLength: lineLength}
}

// WritePosition writes a board diagram.
func (tw *TextWriter) WritePosition(pos *chess.Position) error {
	RenderBoard(tw.w, pos)
	return nil
}

// WriteMoves writes moves on wrapped lines.
func (tw *TextWriter) WriteMoves(moves []chess.Move) error {
	WriteMoveList(tw.w, moves, tw.lineLength)
	return nil
}

// WriteResult writes the move followed by the new status.
func (tw *TextWriter) WriteResult(res chess.MoveResult) error {
	_, err := fmt.Fprintf(tw.w, "%s: %s\n", res.Move.UCI(), res.Position.Status)
	return err
}

// WriteStatus writes the status description.
func (tw *TextWriter) WriteStatus(status chess.Status) error {
	_, err := fmt.Fprintln(tw.w, status)
	return err
}

// JSONWriter writes state as one JSON document per call.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WritePosition writes a JSONPosition.
func (jw *JSONWriter) WritePosition(pos *chess.Position) error {
	return jw.enc.Encode(PositionToJSON(pos))
}

// WriteMoves writes an array of JSONMove.
func (jw *JSONWriter) WriteMoves(moves []chess.Move) error {
	return jw.enc.Encode(MovesToJSON(moves))
}

// WriteResult writes a JSONMoveResult.
func (jw *JSONWriter) WriteResult(res chess.MoveResult) error {
	return jw.enc.Encode(MoveResultToJSON(res))
}

// WriteStatus writes a JSONStatus.
func (jw *JSONWriter) WriteStatus(status chess.Status) error {
	return jw.enc.Encode(StatusToJSON(status))
}
