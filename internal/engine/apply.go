package engine

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// ApplyMove validates a move against the position and returns the next
// position with its status evaluated. The input position is never modified;
// on error the caller keeps using it unchanged.
//
// An omitted promotion on a pawn reaching the last rank defaults to a queen.
func ApplyMove(pos chess.Position, input chess.Move) (chess.MoveResult, error) {
	if pos.Status.IsTerminal() {
		return chess.MoveResult{}, moveError(&pos, input, errors.ErrGameOver)
	}

	piece := pos.At(input.From)
	if piece.IsEmpty() {
		return chess.MoveResult{}, moveError(&pos, input, errors.ErrNoPieceAtSource)
	}
	if piece.Colour != pos.ToMove {
		return chess.MoveResult{}, moveError(&pos, input, errors.ErrNotActivePlayersPiece)
	}

	promotion, err := resolvePromotion(piece, input.To, input.Promotion)
	if err != nil {
		return chess.MoveResult{}, moveError(&pos, input, err)
	}
	move := chess.Move{From: input.From, To: input.To, Promotion: promotion}

	if !containsMove(LegalMoves(&pos, move.From), move) {
		return chess.MoveResult{}, moveError(&pos, input, errors.ErrIllegalMove)
	}

	next, _ := applyUnchecked(&pos, move)
	next.Status = EvaluateStatus(&next)

	return chess.MoveResult{Position: next, Move: move}, nil
}

// resolvePromotion returns the promotion kind to apply. A promotion is
// required exactly when a pawn reaches its last rank.
func resolvePromotion(piece chess.Piece, to chess.Square, requested chess.PieceKind) (chess.PieceKind, error) {
	required := piece.Kind == chess.Pawn && int(to.Rank) == piece.Colour.PromotionRank()

	if !required {
		if requested != chess.Empty {
			return chess.Empty, errors.Wrapf(errors.ErrPromotionMismatch, "%s cannot promote", piece.Kind)
		}
		return chess.Empty, nil
	}

	if requested == chess.Empty {
		return chess.Queen, nil
	}
	if !requested.IsPromotionTarget() {
		return chess.Empty, errors.Wrapf(errors.ErrPromotionMismatch, "cannot promote to %s", requested)
	}
	return requested, nil
}

// applyUnchecked plays a move on a copy of the position without checking
// legality or evaluating status. It reports whether the move captured.
// Shared by the legality filter and ApplyMove.
func applyUnchecked(pos *chess.Position, move chess.Move) (chess.Position, bool) {
	next := *pos
	piece := next.At(move.From)
	if piece.IsEmpty() {
		return next, false
	}
	colour := piece.Colour
	target := next.At(move.To)

	isEnPassant := piece.Kind == chess.Pawn &&
		move.From.File != move.To.File &&
		target.IsEmpty() &&
		pos.IsEnPassantTarget(move.To)
	capture := !target.IsEmpty() || isEnPassant

	next.Board.Clear(move.From)

	// Handle en passant capture
	if isEnPassant {
		if victim, ok := enPassantVictim(move.To, colour); ok {
			next.Board.Clear(victim)
		}
	}

	// Move the rook when the king castles
	if piece.Kind == chess.King && abs(int(move.To.File)-int(move.From.File)) == 2 {
		relocateCastlingRook(&next.Board, move.From, move.To)
	}

	// Handle promotion
	placed := piece
	if move.Promotion != chess.Empty {
		placed.Kind = move.Promotion
	}
	next.Board.Set(move.To, placed)

	updateCastlingRights(&next.Castling, piece, move.From, move.To, capture)

	// Set en passant square if double pawn push
	next.EnPassant = false
	next.EPSquare = chess.Square{}
	if piece.Kind == chess.Pawn && abs(int(move.To.Rank)-int(move.From.Rank)) == 2 {
		next.EnPassant = true
		next.EPSquare = chess.Square{File: move.From.File, Rank: (move.From.Rank + move.To.Rank) / 2}
	}

	if piece.Kind == chess.Pawn || capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next, capture
}

// moveError wraps err with the squares of the attempted move and its ply.
func moveError(pos *chess.Position, input chess.Move, err error) error {
	promotion := ""
	if input.Promotion != chess.Empty {
		promotion = string(input.Promotion.Letter())
	}
	return &errors.MoveError{
		Err:       err,
		From:      input.From.String(),
		To:        input.To.String(),
		Promotion: promotion,
		Ply:       plyOf(pos),
	}
}

// plyOf returns the 1-based ply number of the next move in the position.
func plyOf(pos *chess.Position) int {
	if pos.MoveNumber == 0 {
		return 0
	}
	ply := int(pos.MoveNumber-1)*2 + 1
	if pos.ToMove == chess.Black {
		ply++
	}
	return ply
}
