package cli

import (
	"fmt"
	"io"

	"github.com/notnil/chess"

	"chessmind/src/rules"
)

// ANSI codes
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteFg = "\033[97m"
	blackFg = "\033[30m"
	dimFg   = "\033[90m"
)

func pieceGlyph(p chess.Piece) string {
	switch p {
	case chess.WhiteKing:
		return "♔"
	case chess.WhiteQueen:
		return "♕"
	case chess.WhiteRook:
		return "♖"
	case chess.WhiteBishop:
		return "♗"
	case chess.WhiteKnight:
		return "♘"
	case chess.WhitePawn:
		return "♙"
	case chess.BlackKing:
		return "♚"
	case chess.BlackQueen:
		return "♛"
	case chess.BlackRook:
		return "♜"
	case chess.BlackBishop:
		return "♝"
	case chess.BlackKnight:
		return "♞"
	case chess.BlackPawn:
		return "♟"
	case chess.NoPiece:
		return " "
	default:
		return "?"
	}
}

// DrawBoard prints the position as a colored unicode board, White at
// the bottom.
func DrawBoard(w io.Writer, pos *rules.Position) {
	board := pos.Board()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			p := board.Piece(sq)
			g := pieceGlyph(p)

			// a1 is a dark square.
			lightSquare := (rank+file)%2 == 1

			bg := darkBg
			if lightSquare {
				bg = lightBg
			}
			var fg string
			switch {
			case p == chess.NoPiece:
				fg = dimFg
			case p.Color() == chess.White:
				fg = whiteFg
			default:
				fg = blackFg
			}

			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
