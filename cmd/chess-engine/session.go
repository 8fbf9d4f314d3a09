package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/output"
)

const helpText = `commands:
  new                      start a game from the initial position
  import <text>            start a game from position text
  moves <square>           list legal moves from a square
  move <from> <to> [q|r|b|n]
                           play a move
  status                   show the game status
  fen                      export the current position
  board                    show the board
  undo                     take back the last move
  perft <depth>            count move-tree leaves per root move
  help                     show this help
  quit                     leave the session
`

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// Session runs the line protocol against one game.
type Session struct {
	cfg    *config.Config
	log    zerolog.Logger
	out    io.Writer
	writer output.StateWriter
	game   *engine.Game
}

// NewSession creates a session writing to cfg.OutputFile.
func NewSession(cfg *config.Config, log zerolog.Logger, game *engine.Game) *Session {
	format := output.FormatText
	if cfg.Output.JSONFormat {
		format = output.FormatJSON
	}
	return &Session{
		cfg:    cfg,
		log:    log,
		out:    cfg.OutputFile,
		writer: output.NewStateWriter(cfg.OutputFile, format, int(cfg.Output.MaxLineLength)),
		game:   game,
	}
}

// Run reads commands from r until quit or end of input. Command errors are
// reported and the session continues.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if s.cfg.Output.Prompt != "" {
			fmt.Fprint(s.out, s.cfg.Output.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		err := s.Execute(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.log.Debug().Err(err).Msg("command failed")
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Execute runs one command line. Blank lines and lines starting with '#'
// are ignored.
func (s *Session) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("command")

	switch cmd {
	case "new":
		s.game = engine.NewGame()
		return s.board()
	case "import":
		return s.importPosition(strings.Join(args, " "))
	case "moves":
		return s.moves(args)
	case "move":
		return s.move(args)
	case "status":
		return s.writer.WriteStatus(s.game.Status())
	case "fen":
		return s.emit(s.game.FEN(), map[string]string{"fen": s.game.FEN()})
	case "board":
		return s.board()
	case "undo":
		return s.undo()
	case "perft":
		return s.perft(ctx, args)
	case "help":
		_, err := fmt.Fprint(s.out, helpText)
		return err
	case "quit", "exit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Session) board() error {
	pos := s.game.Position()
	return s.writer.WritePosition(&pos)
}

func (s *Session) importPosition(text string) error {
	g, err := engine.LoadGame(text)
	if err != nil {
		return err
	}
	s.game = g
	return s.board()
}

func (s *Session) moves(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: moves <square>")
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	return s.writer.WriteMoves(s.game.LegalMoves(sq))
}

func (s *Session) move(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: move <from> <to> [q|r|b|n]")
	}
	promotion := ""
	if len(args) == 3 {
		promotion = args[2]
	}
	m, err := chess.ParseMove(args[0], args[1], promotion)
	if err != nil {
		return err
	}
	res, err := s.game.Apply(m)
	if err != nil {
		return err
	}
	return s.writer.WriteResult(res)
}

func (s *Session) undo() error {
	m, err := s.game.Undo()
	if err != nil {
		return err
	}
	return s.emit("undone "+m.UCI(), output.MoveToJSON(m))
}

// perftResult is the JSON form of a perft divide.
type perftResult struct {
	Depth int               `json:"depth"`
	Nodes uint64            `json:"nodes"`
	Moves map[string]uint64 `json:"moves"`
}

func (s *Session) perft(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: perft <depth>")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > s.cfg.Perft.MaxDepth {
		return fmt.Errorf("perft depth must be an integer in 1..%d", s.cfg.Perft.MaxDepth)
	}
	return runPerft(ctx, s.out, s.cfg, s.game.Position(), depth)
}

// runPerft prints per-move counts followed by the total.
func runPerft(ctx context.Context, w io.Writer, cfg *config.Config, pos chess.Position, depth int) error {
	entries, err := engine.PerftDivide(ctx, pos, depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}

	res := perftResult{Depth: depth, Moves: make(map[string]uint64, len(entries))}
	for _, e := range entries {
		res.Moves[e.Move.UCI()] = e.Nodes
		res.Nodes += e.Nodes
	}

	if cfg.Output.JSONFormat {
		return json.NewEncoder(w).Encode(res)
	}
	keys := make([]string, 0, len(res.Moves))
	for k := range res.Moves {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %d\n", k, res.Moves[k])
	}
	_, err = fmt.Fprintf(w, "total: %d\n", res.Nodes)
	return err
}

// emit writes text, or v as JSON in JSON mode.
func (s *Session) emit(text string, v any) error {
	if s.cfg.Output.JSONFormat {
		return json.NewEncoder(s.out).Encode(v)
	}
	_, err := fmt.Fprintln(s.out, text)
	return err
}
