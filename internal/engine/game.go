package engine

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Game is a play session: the current position plus the positions and
// moves that led to it. A Game is not safe for concurrent use.
type Game struct {
	start   chess.Position
	current chess.Position
	history []chess.Position
	moves   []chess.Move
}

// NewGame starts a session from the initial position.
func NewGame() *Game {
	return GameFrom(chess.InitialPosition())
}

// GameFrom starts a session from an arbitrary position. The status carried
// by pos is ignored and evaluated afresh.
func GameFrom(pos chess.Position) *Game {
	pos.Status = EvaluateStatus(&pos)
	return &Game{start: pos, current: pos}
}

// LoadGame starts a session from imported position text.
func LoadGame(text string) (*Game, error) {
	pos, err := ImportPosition(text)
	if err != nil {
		return nil, err
	}
	return GameFrom(pos), nil
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.current
}

// Start returns the position the session began from.
func (g *Game) Start() chess.Position {
	return g.start
}

// LegalMoves returns the legal moves from the square in the current position.
func (g *Game) LegalMoves(from chess.Square) []chess.Move {
	return LegalMoves(&g.current, from)
}

// AllLegalMoves returns every legal move in the current position.
func (g *Game) AllLegalMoves() []chess.Move {
	return AllLegalMoves(&g.current)
}

// Apply validates and plays a move. The session is unchanged on error.
func (g *Game) Apply(move chess.Move) (chess.MoveResult, error) {
	result, err := ApplyMove(g.current, move)
	if err != nil {
		return chess.MoveResult{}, err
	}
	g.history = append(g.history, g.current)
	g.moves = append(g.moves, result.Move)
	g.current = result.Position
	return result, nil
}

// Status returns the status of the current position.
func (g *Game) Status() chess.Status {
	return g.current.Status
}

// FEN exports the current position.
func (g *Game) FEN() string {
	return ExportPosition(&g.current)
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// Undo takes back the last move and returns it.
func (g *Game) Undo() (chess.Move, error) {
	n := len(g.history)
	if n == 0 {
		return chess.Move{}, errors.ErrNothingToUndo
	}
	last := g.moves[n-1]
	g.current = g.history[n-1]
	g.history = g.history[:n-1]
	g.moves = g.moves[:n-1]
	return last, nil
}

// Replay rebuilds a session by applying moves to a start position.
func Replay(start chess.Position, moves []chess.Move) (*Game, error) {
	g := GameFrom(start)
	for i, m := range moves {
		if _, err := g.Apply(m); err != nil {
			return nil, errors.Wrapf(err, "replay move %d", i+1)
		}
	}
	return g, nil
}
