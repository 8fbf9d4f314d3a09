package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-core-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input    string
		wantFile uint8
		wantRank uint8
		wantErr  bool
	}{
		{"a1", 0, 0, false},
		{"h8", 7, 7, false},
		{"e4", 4, 3, false},
		{"E4", 4, 3, false},
		{"d6", 3, 5, false},
		{"i1", 0, 0, true},
		{"a9", 0, 0, true},
		{"a0", 0, 0, true},
		{"e", 0, 0, true},
		{"e44", 0, 0, true},
		{"", 0, 0, true},
		{"4e", 0, 0, true},
		{"é4", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSquare(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.input, err)
			}
			if got.File != tt.wantFile || got.Rank != tt.wantRank {
				t.Errorf("ParseSquare(%q) = (%d,%d), want (%d,%d)", tt.input, got.File, got.Rank, tt.wantFile, tt.wantRank)
			}
		})
	}
}

func TestSquareString_RoundTrip(t *testing.T) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq, err := NewSquare(file, rank)
			if err != nil {
				t.Fatalf("NewSquare(%d, %d) error: %v", file, rank, err)
			}
			back, err := ParseSquare(sq.String())
			if err != nil || back != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), back, err, sq)
			}
		}
	}
}

func TestNewSquare_OutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		if _, err := NewSquare(c[0], c[1]); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("NewSquare(%d, %d) error = %v, want ErrInvalidSquare", c[0], c[1], err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	sq := MustParseSquare("a1")
	if _, ok := sq.Offset(-1, 0); ok {
		t.Error("a1.Offset(-1, 0) should be off the board")
	}
	got, ok := sq.Offset(2, 1)
	if !ok || got.String() != "c2" {
		t.Errorf("a1.Offset(2, 1) = %v, %v; want c2, true", got, ok)
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		input   string
		want    PieceKind
		wantErr bool
	}{
		{"", Empty, false},
		{"q", Queen, false},
		{"Q", Queen, false},
		{"r", Rook, false},
		{"R", Rook, false},
		{"b", Bishop, false},
		{"B", Bishop, false},
		{"n", Knight, false},
		{"N", Knight, false},
		{"k", Empty, true},
		{"p", Empty, true},
		{"x", Empty, true},
		{"qq", Empty, true},
	}

	for _, tt := range tests {
		got, err := ParsePromotion(tt.input)
		if tt.wantErr {
			if !errors.Is(err, chesserrors.ErrInvalidPromotion) {
				t.Errorf("ParsePromotion(%q) error = %v, want ErrInvalidPromotion", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePromotion(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e7", "E8", "n")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if m.UCI() != "e7e8n" {
		t.Errorf("UCI() = %q, want %q", m.UCI(), "e7e8n")
	}

	if _, err := ParseMove("e7", "e9", ""); !errors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("ParseMove bad destination error = %v, want ErrInvalidSquare", err)
	}
	if _, err := ParseMove("e7", "e8", "k"); !errors.Is(err, chesserrors.ErrInvalidPromotion) {
		t.Errorf("ParseMove bad promotion error = %v, want ErrInvalidPromotion", err)
	}
}

func TestInitialPosition(t *testing.T) {
	pos := InitialPosition()

	if pos.ToMove != White {
		t.Errorf("ToMove = %v, want White", pos.ToMove)
	}
	if pos.MoveNumber != 1 || pos.HalfmoveClock != 0 {
		t.Errorf("clocks = (%d, %d), want (0, 1)", pos.HalfmoveClock, pos.MoveNumber)
	}
	if pos.Castling != AllCastlingRights() {
		t.Errorf("Castling = %+v, want all rights", pos.Castling)
	}
	if pos.EnPassant {
		t.Error("EnPassant = true, want false")
	}
	if pos.Status.IsTerminal() {
		t.Errorf("Status = %v, want in progress", pos.Status)
	}

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"e2", W(Pawn)},
		{"e4", NoPiece},
		{"d7", B(Pawn)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"h8", B(Rook)},
	}
	for _, tt := range tests {
		if got := pos.At(MustParseSquare(tt.square)); got != tt.want {
			t.Errorf("At(%s) = %v, want %v", tt.square, got, tt.want)
		}
	}
}

func TestPosition_ValueCopy(t *testing.T) {
	orig := InitialPosition()
	cp := orig
	cp.Board.Clear(MustParseSquare("e2"))
	cp.Castling.ClearColour(White)

	if orig.At(MustParseSquare("e2")) != W(Pawn) {
		t.Error("clearing a square on a copy modified the original")
	}
	if !orig.Castling.WhiteKingSide {
		t.Error("clearing rights on a copy modified the original")
	}
	if orig == cp {
		t.Error("modified copy compares equal to original")
	}
}

func TestBoard_FindKing(t *testing.T) {
	b := StandardBoard()
	sq, ok := b.FindKing(Black)
	if !ok || sq.String() != "e8" {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	var empty Board
	if _, ok := empty.FindKing(White); ok {
		t.Error("FindKing on empty board should report false")
	}
}

func TestCastlingRights_ClearCorner(t *testing.T) {
	tests := []struct {
		corner string
		want   CastlingRights
	}{
		{"a1", CastlingRights{WhiteKingSide: true, BlackKingSide: true, BlackQueenSide: true}},
		{"h1", CastlingRights{WhiteQueenSide: true, BlackKingSide: true, BlackQueenSide: true}},
		{"a8", CastlingRights{WhiteKingSide: true, WhiteQueenSide: true, BlackKingSide: true}},
		{"h8", CastlingRights{WhiteKingSide: true, WhiteQueenSide: true, BlackQueenSide: true}},
		{"e4", AllCastlingRights()},
	}
	for _, tt := range tests {
		rights := AllCastlingRights()
		rights.ClearCorner(MustParseSquare(tt.corner))
		if rights != tt.want {
			t.Errorf("ClearCorner(%s) = %+v, want %+v", tt.corner, rights, tt.want)
		}
	}
}

func TestColourHelpers(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() mismatch")
	}
	if White.Forward() != 1 || Black.Forward() != -1 {
		t.Error("Forward() mismatch")
	}
	if White.PromotionRank() != 7 || Black.PromotionRank() != 0 {
		t.Error("PromotionRank() mismatch")
	}
	if White.PawnRank() != 1 || Black.PawnRank() != 6 {
		t.Error("PawnRank() mismatch")
	}
}

func TestPieceLetter(t *testing.T) {
	if got := W(Knight).Letter(); got != 'N' {
		t.Errorf("W(Knight).Letter() = %c, want N", got)
	}
	if got := B(Queen).Letter(); got != 'q' {
		t.Errorf("B(Queen).Letter() = %c, want q", got)
	}
	if got := NoPiece.Letter(); got != '.' {
		t.Errorf("NoPiece.Letter() = %c, want .", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
		str      string
	}{
		{InProgress(), false, "in progress"},
		{Checkmate(White), true, "checkmate, White wins"},
		{Stalemate(Black), true, "stalemate, Black to move"},
	}
	for _, tt := range tests {
		if tt.status.IsTerminal() != tt.terminal {
			t.Errorf("%v.IsTerminal() = %v, want %v", tt.status, tt.status.IsTerminal(), tt.terminal)
		}
		if tt.status.String() != tt.str {
			t.Errorf("String() = %q, want %q", tt.status.String(), tt.str)
		}
	}
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		in   byte
		want Piece
		ok   bool
	}{
		{'K', W(King), true},
		{'q', B(Queen), true},
		{'N', W(Knight), true},
		{'p', B(Pawn), true},
		{'x', NoPiece, false},
		{'1', NoPiece, false},
		{' ', NoPiece, false},
	}
	for _, tt := range tests {
		got, ok := PieceFromLetter(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PieceFromLetter(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseUCI(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"e2e4", "e2e4", nil},
		{"a7a8q", "a7a8q", nil},
		{"H7H8N", "h7h8n", nil},
		{"e2", "", chesserrors.ErrInvalidSquare},
		{"e2e4qq", "", chesserrors.ErrInvalidSquare},
		{"e2e9", "", chesserrors.ErrInvalidSquare},
		{"e7e8k", "", chesserrors.ErrInvalidPromotion},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseUCI(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseUCI(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUCI(%q) error: %v", tt.in, err)
			}
			if m.UCI() != tt.want {
				t.Errorf("ParseUCI(%q).UCI() = %q, want %q", tt.in, m.UCI(), tt.want)
			}
		})
	}
}
