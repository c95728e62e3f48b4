package ai

import (
	"testing"

	"github.com/notnil/chess"

	"chessmind/src/rules"
)

// plainMinimax is the reference traversal: identical recursion shape to
// Search but without the alpha-beta bounds. Pruning is exact, so both
// must agree on every position and depth.
func plainMinimax(pos *rules.Position, depth int, maximizing bool) int {
	if depth == 0 || pos.Terminal() {
		return Evaluate(pos)
	}
	moves := pos.LegalMoves()
	if maximizing {
		best := -ScoreInfinity
		for _, mv := range moves {
			pos.Apply(mv)
			v := plainMinimax(pos, depth-1, false)
			pos.Undo()
			if v > best {
				best = v
			}
		}
		return best
	}
	best := ScoreInfinity
	for _, mv := range moves {
		pos.Apply(mv)
		v := plainMinimax(pos, depth-1, true)
		pos.Undo()
		if v < best {
			best = v
		}
	}
	return best
}

func TestSearchDepthZeroEqualsEvaluate(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/4K3/4P3/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustPosition(t, fen)
		want := Evaluate(pos)
		for _, maximizing := range []bool{true, false} {
			if got := Search(pos, 0, -ScoreInfinity, ScoreInfinity, maximizing); got != want {
				t.Fatalf("depth-0 search on %q (maximizing=%t) = %d, want %d", fen, maximizing, got, want)
			}
		}
	}
}

func TestSearchMatchesUnprunedMinimax(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 2},
		{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 2 3", 2},
		{"8/8/8/4k3/8/4K3/4P3/8 w - - 0 1", 3},
		{"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", 3},
	}
	for _, tc := range cases {
		pos := mustPosition(t, tc.fen)
		maximizing := pos.SideToMove() == chess.White
		want := plainMinimax(pos, tc.depth, maximizing)
		got := Search(pos, tc.depth, -ScoreInfinity, ScoreInfinity, maximizing)
		if got != want {
			t.Fatalf("alpha-beta and plain minimax disagree on %q depth %d: %d vs %d",
				tc.fen, tc.depth, got, want)
		}
	}
}

func TestSearchLeavesPositionUntouched(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 2 3",
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	}
	for _, fen := range fens {
		for depth := 1; depth <= 3; depth++ {
			pos := mustPosition(t, fen)
			before := pos.FEN()
			maximizing := pos.SideToMove() == chess.White
			Search(pos, depth, -ScoreInfinity, ScoreInfinity, maximizing)
			if got := pos.FEN(); got != before {
				t.Fatalf("search depth %d mutated %q into %q", depth, before, got)
			}
			if pos.Plies() != 0 {
				t.Fatalf("search depth %d left %d unpaired applies on %q", depth, pos.Plies(), fen)
			}
		}
	}
}

func TestSearchFindsBackRankMateScore(t *testing.T) {
	// White mates with Ra8; depth 1 from white's view must see it.
	pos := mustPosition(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	got := Search(pos, 1, -ScoreInfinity, ScoreInfinity, true)
	if got != ScoreMate {
		t.Fatalf("expected the mate bound %d at depth 1, got %d", ScoreMate, got)
	}
}

func TestSearchOnTerminalPositionReturnsEvaluation(t *testing.T) {
	pos := mustPosition(t, "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1")
	for depth := 0; depth <= 3; depth++ {
		if got := Search(pos, depth, -ScoreInfinity, ScoreInfinity, false); got != ScoreMate {
			t.Fatalf("terminal position at depth %d scored %d, want %d", depth, got, ScoreMate)
		}
	}
}
