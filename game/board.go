package game

const (
	BoardSize = 9
	// PromotionRank is the last rank, counted from the mover's far side, of the promotion zone.
	PromotionRank = 2
)

// Board is stored oriented toward the player to move: forward is toward rank 0.
type Board [BoardSize][BoardSize]Piece

type Square struct {
	Rank int
	File int
}

func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

func (s Square) add(d Square) Square {
	return Square{Rank: s.Rank + d.Rank, File: s.File + d.File}
}

func inZone(rank int) bool {
	return rank >= 0 && rank <= PromotionRank
}

func (b *Board) At(s Square) Piece {
	return b[s.Rank][s.File]
}

// Rotate turns the board by 180 degrees. Piece signs are kept.
func (b Board) Rotate() Board {
	var rotated Board
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			rotated[BoardSize-1-r][BoardSize-1-f] = b[r][f]
		}
	}
	return rotated
}

// Apply returns a copy of the board with m played by player. Hands are not touched.
func (b Board) Apply(m Move, player Player) Board {
	if m.IsDrop() {
		b[m.To.Rank][m.To.File] = NewPiece(m.DropType(), player)
		return b
	}
	piece := b.At(m.From)
	b[m.From.Rank][m.From.File] = 0
	if m.Promote {
		piece = NewPiece(piece.Type().Promoted(), piece.Owner())
	}
	b[m.To.Rank][m.To.File] = piece
	return b
}

func (b *Board) kingSquare(player Player) (Square, bool) {
	king := NewPiece(King, player)
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if b[r][f] == king {
				return Square{Rank: r, File: f}, true
			}
		}
	}
	return Square{}, false
}

func (b *Board) hasPawnOnFile(player Player, file int) bool {
	pawn := NewPiece(Pawn, player)
	for r := 0; r < BoardSize; r++ {
		if b[r][file] == pawn {
			return true
		}
	}
	return false
}

// DefaultBoard returns the starting position with black to move.
func DefaultBoard() Board {
	back := [BoardSize]PieceType{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	var b Board
	for f := 0; f < BoardSize; f++ {
		b[0][f] = NewPiece(back[f], White)
		b[2][f] = NewPiece(Pawn, White)
		b[6][f] = NewPiece(Pawn, Black)
		b[8][f] = NewPiece(back[f], Black)
	}
	b[1][1] = NewPiece(Rook, White)
	b[1][7] = NewPiece(Bishop, White)
	b[7][1] = NewPiece(Bishop, Black)
	b[7][7] = NewPiece(Rook, Black)
	return b
}
