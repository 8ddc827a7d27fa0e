package game

import "fmt"

// dropRank marks the origin of a drop; the origin file then holds the dropped PieceType.
const dropRank = -1

type Move struct {
	From    Square
	To      Square
	Promote bool
}

func NewDrop(t PieceType, to Square) Move {
	return Move{From: Square{Rank: dropRank, File: int(t)}, To: to}
}

func (m Move) IsDrop() bool {
	return m.From.Rank == dropRank
}

func (m Move) DropType() PieceType {
	return PieceType(m.From.File)
}

func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s*%d%d", m.DropType(), m.To.Rank, m.To.File)
	}
	s := fmt.Sprintf("%d%d-%d%d", m.From.Rank, m.From.File, m.To.Rank, m.To.File)
	if m.Promote {
		s += "+"
	}
	return s
}
