package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/notnil/chess"
	"golang.org/x/image/font/basicfont"

	"chessmind/src/rules"
)

const squarePx = 48

var pieceLetters = map[chess.Piece]string{
	chess.WhiteKing:   "K",
	chess.WhiteQueen:  "Q",
	chess.WhiteRook:   "R",
	chess.WhiteBishop: "B",
	chess.WhiteKnight: "N",
	chess.WhitePawn:   "P",
	chess.BlackKing:   "k",
	chess.BlackQueen:  "q",
	chess.BlackRook:   "r",
	chess.BlackBishop: "b",
	chess.BlackKnight: "n",
	chess.BlackPawn:   "p",
}

// Image draws a diagnostic snapshot of the position, White at the
// bottom. Pieces are drawn as letters (uppercase White, lowercase
// Black) so the image needs no bundled assets.
func Image(pos *rules.Position) image.Image {
	dc := gg.NewContext(8*squarePx, 8*squarePx)
	dc.SetFontFace(basicfont.Face7x13)
	board := pos.Board()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := float64(file * squarePx)
			y := float64((7 - rank) * squarePx)
			if (rank+file)%2 == 0 {
				dc.SetRGB255(181, 136, 99)
			} else {
				dc.SetRGB255(240, 217, 181)
			}
			dc.DrawRectangle(x, y, squarePx, squarePx)
			dc.Fill()

			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			piece := board.Piece(sq)
			if piece == chess.NoPiece {
				continue
			}
			if piece.Color() == chess.White {
				dc.SetRGB255(255, 255, 255)
			} else {
				dc.SetRGB255(0, 0, 0)
			}
			dc.DrawStringAnchored(pieceLetters[piece], x+squarePx/2, y+squarePx/2, 0.5, 0.5)
		}
	}
	return dc.Image()
}

// SavePNG writes the snapshot to path.
func SavePNG(pos *rules.Position, path string) error {
	dc := gg.NewContextForImage(Image(pos))
	return dc.SavePNG(path)
}
