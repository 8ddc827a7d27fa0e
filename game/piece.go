package game

import "fmt"

// PieceType identifies a kind of piece. Promoted types are their base type plus PromoteOffset.
type PieceType int8

const (
	Empty PieceType = iota
	King
	Gold
	Rook
	Bishop
	Silver
	Lance
	Knight
	Pawn
	PromotedRook
	PromotedBishop
	PromotedSilver
	PromotedLance
	PromotedKnight
	PromotedPawn
)

const (
	NumPieceTypes = 14
	PromoteOffset = 6
)

// HandTypes lists the piece types that can be held in hand and dropped.
var HandTypes = [...]PieceType{Gold, Rook, Bishop, Silver, Lance, Knight, Pawn}

func (t PieceType) Promotable() bool {
	return t >= Rook && t <= Pawn
}

func (t PieceType) IsPromoted() bool {
	return t > Pawn && t <= PromotedPawn
}

func (t PieceType) Droppable() bool {
	return t >= Gold && t <= Pawn
}

// Promoted returns the promoted form of t, or t itself when it cannot promote.
func (t PieceType) Promoted() PieceType {
	if t.Promotable() {
		return t + PromoteOffset
	}
	return t
}

// Base returns the unpromoted form of t.
func (t PieceType) Base() PieceType {
	if t.IsPromoted() {
		return t - PromoteOffset
	}
	return t
}

func (t PieceType) String() string {
	if t < Empty || t > PromotedPawn {
		return fmt.Sprintf("PieceType(%d)", int8(t))
	}
	return [...]string{
		"empty", "king", "gold", "rook", "bishop", "silver", "lance", "knight", "pawn",
		"dragon", "horse", "promoted silver", "promoted lance", "promoted knight", "tokin",
	}[t]
}

// mustPromote reports whether a piece of type t landing on rank has no legal non-promoting move.
func mustPromote(t PieceType, rank int) bool {
	switch t {
	case Pawn, Lance:
		return rank == 0
	case Knight:
		return rank < 2
	}
	return false
}

type Player int8

const (
	Black Player = 1
	White Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// Piece is a signed board cell: the magnitude is the PieceType and the sign is the owner.
type Piece int8

func NewPiece(t PieceType, owner Player) Piece {
	return Piece(int8(t) * int8(owner))
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Owner() Player {
	switch {
	case p > 0:
		return Black
	case p < 0:
		return White
	}
	return 0
}

func (p Piece) OwnedBy(player Player) bool {
	return int(p)*int(player) > 0
}

// Hand counts captured pieces by unpromoted type. Only HandTypes indices are used.
type Hand [Pawn + 1]int

func (h Hand) Count(t PieceType) int {
	return h[t]
}

func (h Hand) IsEmpty() bool {
	for _, t := range HandTypes {
		if h[t] > 0 {
			return false
		}
	}
	return true
}
