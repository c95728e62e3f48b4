package ai

import (
	"github.com/notnil/chess"

	"chessmind/src/rules"
)

// Score bounds. ScoreInfinity is only ever used as a pruning bound and
// is never returned by Evaluate; ScoreMate dominates any material sum.
const (
	ScoreInfinity = 1_000_000_000
	ScoreMate     = 1_000_000
)

// Material values in centipawns.
var pieceValues = [...]int{
	chess.King:   20000,
	chess.Queen:  900,
	chess.Rook:   500,
	chess.Bishop: 330,
	chess.Knight: 320,
	chess.Pawn:   100,
}

// Piece-square tables, written rank 8 first (index 0 is a8). Only pawns
// and knights carry positional bonuses; every other piece type is
// material-only. That is a deliberate simplification, not a gap.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

// squareBonus looks up the positional bonus for a piece on sq. The
// tables above are laid out from White's point of view, so White
// indexes them with the rank flipped (a1 is square 0, the tables start
// at a8); Black reads them as written, which is the vertical mirror.
func squareBonus(pt chess.PieceType, color chess.Color, sq chess.Square) int {
	var table *[64]int
	switch pt {
	case chess.Pawn:
		table = &pawnTable
	case chess.Knight:
		table = &knightTable
	default:
		return 0
	}
	if color == chess.White {
		return table[int(sq)^56]
	}
	return table[sq]
}

// Evaluate scores a position in centipawns, White-positive. It is a
// pure function of the position: a full scan of the 64 squares summing
// material plus positional bonus for each piece, added for White and
// subtracted for Black. Checkmate evaluates to the mate bound against
// the side to move; stalemate and drawn positions fold into the plain
// material sum.
func Evaluate(pos *rules.Position) int {
	if pos.Status() == chess.Checkmate {
		if pos.SideToMove() == chess.White {
			return -ScoreMate
		}
		return ScoreMate
	}

	score := 0
	board := pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		v := pieceValues[piece.Type()] + squareBonus(piece.Type(), piece.Color(), sq)
		if piece.Color() == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
