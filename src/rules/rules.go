package rules

import (
	"fmt"

	"github.com/notnil/chess"
)

// Position wraps a notnil/chess position together with an undo stack.
// notnil positions are immutable (Update returns a fresh position), so
// Apply pushes the current position and Undo pops it back: after any
// balanced Apply/Undo sequence the position is the exact same object
// that was there before.
//
// A Position is not safe for concurrent use. Callers that want to run
// speculative searches in parallel must work on a Clone.
type Position struct {
	cur  *chess.Position
	hist []*chess.Position
}

// StartingPosition returns the standard initial chess position.
func StartingPosition() *Position {
	return &Position{cur: chess.NewGame().Position()}
}

// FromFEN builds a position from a FEN string.
func FromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN %q: %w", fen, err)
	}
	return &Position{cur: chess.NewGame(opt).Position()}, nil
}

// LegalMoves lists all legal moves in an arbitrary order.
func (p *Position) LegalMoves() []*chess.Move {
	return p.cur.ValidMoves()
}

// Apply plays mv on the position. The move must be one returned by
// LegalMoves for the current position.
func (p *Position) Apply(mv *chess.Move) {
	p.hist = append(p.hist, p.cur)
	p.cur = p.cur.Update(mv)
}

// Undo reverses the most recent Apply, restoring castling rights, the
// en-passant target and the move counters along with it. Undo with no
// applied move is a no-op.
func (p *Position) Undo() {
	n := len(p.hist)
	if n == 0 {
		return
	}
	p.cur = p.hist[n-1]
	p.hist = p.hist[:n-1]
}

// Terminal reports whether the side to move has no legal moves,
// i.e. the position is checkmate or stalemate.
func (p *Position) Terminal() bool {
	return p.cur.Status() != chess.NoMethod
}

// Status classifies a terminal position (chess.Checkmate or
// chess.Stalemate); it is chess.NoMethod while the game is running.
func (p *Position) Status() chess.Method {
	return p.cur.Status()
}

// SideToMove returns the color to play.
func (p *Position) SideToMove() chess.Color {
	return p.cur.Turn()
}

// Board exposes the piece placement for evaluation.
func (p *Position) Board() *chess.Board {
	return p.cur.Board()
}

// FEN serializes the current position.
func (p *Position) FEN() string {
	return p.cur.String()
}

// Plies returns how many applied moves can still be undone.
func (p *Position) Plies() int {
	return len(p.hist)
}

// DecodeMove parses a move in SAN and, failing that, UCI notation
// against the current position.
func (p *Position) DecodeMove(s string) (*chess.Move, error) {
	if mv, err := (chess.AlgebraicNotation{}).Decode(p.cur, s); err == nil {
		return mv, nil
	}
	mv, err := (chess.UCINotation{}).Decode(p.cur, s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse move %q", s)
	}
	return mv, nil
}

// EncodeSAN renders mv in standard algebraic notation for the current
// position.
func (p *Position) EncodeSAN(mv *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(p.cur, mv)
}

// Clone returns an independent copy sharing no mutable state with the
// receiver. The undo history is not carried over. Positions themselves
// are immutable, so the underlying position object can be shared.
func (p *Position) Clone() *Position {
	return &Position{cur: p.cur}
}
