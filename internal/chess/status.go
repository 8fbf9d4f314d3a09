package chess

// StatusKind classifies a position.
type StatusKind int

const (
	StatusInProgress StatusKind = iota
	StatusCheckmate
	StatusStalemate
)

// String returns the snake_case name used at the boundary.
func (k StatusKind) String() string {
	switch k {
	case StatusInProgress:
		return "in_progress"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "unknown"
}

// Status is InProgress, Checkmate(winner) or Stalemate(side to move).
// Colour is meaningful only for the terminal kinds.
type Status struct {
	Kind   StatusKind
	Colour Colour
}

// InProgress returns the non-terminal status.
func InProgress() Status {
	return Status{Kind: StatusInProgress}
}

// Checkmate returns a checkmate status won by winner.
func Checkmate(winner Colour) Status {
	return Status{Kind: StatusCheckmate, Colour: winner}
}

// Stalemate returns a stalemate status against the side to move.
func Stalemate(sideToMove Colour) Status {
	return Status{Kind: StatusStalemate, Colour: sideToMove}
}

// IsTerminal returns true once no further moves may be made.
func (s Status) IsTerminal() bool {
	return s.Kind != StatusInProgress
}

// String returns a human-readable description.
func (s Status) String() string {
	switch s.Kind {
	case StatusCheckmate:
		return "checkmate, " + s.Colour.String() + " wins"
	case StatusStalemate:
		return "stalemate, " + s.Colour.String() + " to move"
	}
	return "in progress"
}
