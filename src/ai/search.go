package ai

import (
	"chessmind/src/rules"
)

// Search runs a depth-limited minimax with alpha-beta pruning and
// returns the position's value in centipawns, White-positive. The
// maximizing flag says whether the node to move is the maximizing side
// (White). The position is mutated in place via Apply/Undo during the
// traversal; every Apply is paired with an Undo on every return path,
// so the position is unchanged when Search returns.
//
// The traversal is synchronous and runs to completion; scheduling and
// cancellation live a level up, in the Scheduler.
func Search(pos *rules.Position, depth, alpha, beta int, maximizing bool) int {
	if depth == 0 || pos.Terminal() {
		return Evaluate(pos)
	}

	moves := pos.LegalMoves()
	if maximizing {
		best := -ScoreInfinity
		for _, mv := range moves {
			pos.Apply(mv)
			v := Search(pos, depth-1, alpha, beta, false)
			pos.Undo()
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := ScoreInfinity
	for _, mv := range moves {
		pos.Apply(mv)
		v := Search(pos, depth-1, alpha, beta, true)
		pos.Undo()
		if v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
