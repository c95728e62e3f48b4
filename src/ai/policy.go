package ai

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/notnil/chess"

	"chessmind/src/logx"
	"chessmind/src/rules"
)

// Difficulty selects the opponent's move-selection strategy.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts the names printed by String.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// SearchParams configures one difficulty tier. Depth 0 means no search
// at all: the tier picks uniformly among the legal moves.
type SearchParams struct {
	Depth int
}

// difficultyTable maps tiers to strategies. The depths are tuning
// defaults chosen to keep move latency unnoticeable, not exact-strength
// guarantees; retune here without touching the search.
var difficultyTable = map[Difficulty]SearchParams{
	Easy:   {Depth: 0},
	Medium: {Depth: 2},
	Hard:   {Depth: 3},
}

// Params returns the search parameters for a tier.
func Params(d Difficulty) SearchParams {
	return difficultyTable[d]
}

// Selector implements the difficulty policy. The random source drives
// both the Easy pick and the root-move shuffle; inject a seeded source
// for reproducible behavior.
type Selector struct {
	rng *rand.Rand
	log logx.Logger
}

// NewSelector builds a selector with a time-seeded random source.
func NewSelector(log logx.Logger) *Selector {
	return NewSelectorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), log)
}

// NewSelectorWithRand builds a selector around an explicit random
// source.
func NewSelectorWithRand(rng *rand.Rand, log logx.Logger) *Selector {
	if log == nil {
		log = logx.Nop()
	}
	return &Selector{rng: rng, log: log}
}

// SelectMove picks a move for the side to play, or nil when there are
// no legal moves (the caller is expected to already know the game is
// over; nil is the defensive contract, not an error).
func (s *Selector) SelectMove(pos *rules.Position, d Difficulty) *chess.Move {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil
	}

	params := Params(d)
	if params.Depth == 0 {
		return moves[s.rng.Intn(len(moves))]
	}

	// Shuffling the root moves breaks generation-order ties and
	// perturbs pruning run to run; it never changes which scores are
	// reachable, only which of the equally-scored moves is kept.
	shuffled := make([]*chess.Move, len(moves))
	copy(shuffled, moves)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	whiteToMove := pos.SideToMove() == chess.White
	bestScore := ScoreInfinity
	if whiteToMove {
		bestScore = -ScoreInfinity
	}
	var bestMove *chess.Move
	for _, mv := range shuffled {
		pos.Apply(mv)
		score := Search(pos, params.Depth-1, -ScoreInfinity, ScoreInfinity, !whiteToMove)
		pos.Undo()
		if (whiteToMove && score > bestScore) || (!whiteToMove && score < bestScore) {
			bestScore = score
			bestMove = mv
		}
	}
	if bestMove == nil {
		bestMove = shuffled[0]
	}
	s.log.Debugf("selected %s at %s (score %d, %d candidates)", bestMove, d, bestScore, len(shuffled))
	return bestMove
}
