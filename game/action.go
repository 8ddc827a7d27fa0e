package game

import "fmt"

// Every origin square owns PlaneSize consecutive action ids:
// [0, 4) knight jumps, [4, 132) queen-like moves, [132, 139) drops onto that square.
const (
	PlaneSize  = 139
	ActionSize = BoardSize * BoardSize * PlaneSize

	knightOffset          = 0
	knightPromotionOffset = 2
	queenOffset           = 4
	queenPromotionOffset  = 64
	dropOffset            = 132
	maxDistance           = 8
)

// compass lists queen directions in slot order; direction i owns slots [8i, 8i+8).
var compass = [...]Square{
	{0, -1},  // west
	{0, 1},   // east
	{1, 0},   // south
	{1, 1},   // south-east
	{1, -1},  // south-west
	{-1, -1}, // north-west
	{-1, 1},  // north-east
	{-1, 0},  // north
}

// Encode maps a move to its action id. It panics on moves that have no slot,
// which no legal move generator can produce.
func Encode(m Move) int {
	if m.IsDrop() {
		return PlaneSize*squareIndex(m.To) + dropOffset + int(m.DropType()-Gold)
	}

	base := PlaneSize * squareIndex(m.From)
	dr := m.To.Rank - m.From.Rank
	df := m.To.File - m.From.File

	if dr == -2 && (df == -1 || df == 1) {
		offset := knightOffset + (df+1)/2
		if m.Promote {
			offset += knightPromotionOffset
		}
		return base + offset
	}

	dir, dist, ok := direction(dr, df)
	if !ok {
		panic(fmt.Sprintf("move %s has no action slot", m))
	}
	offset := queenOffset + dir*maxDistance + dist - 1
	if m.Promote {
		offset += queenPromotionOffset
	}
	return base + offset
}

// Decode maps an action id back to its move. Decoded moves may leave the board;
// legality is the caller's concern.
func Decode(action int) (Move, error) {
	if action < 0 || action >= ActionSize {
		return Move{}, fmt.Errorf("%w: %d not in [0, %d)", ErrActionOutOfRange, action, ActionSize)
	}

	origin := Square{Rank: action / PlaneSize / BoardSize, File: action / PlaneSize % BoardSize}
	offset := action % PlaneSize

	switch {
	case offset >= dropOffset:
		return NewDrop(Gold+PieceType(offset-dropOffset), origin), nil
	case offset >= queenOffset:
		offset -= queenOffset
		promote := offset >= queenPromotionOffset
		offset %= queenPromotionOffset
		d := compass[offset/maxDistance]
		dist := offset%maxDistance + 1
		to := Square{Rank: origin.Rank + d.Rank*dist, File: origin.File + d.File*dist}
		return Move{From: origin, To: to, Promote: promote}, nil
	default:
		offset -= knightOffset
		to := Square{Rank: origin.Rank - 2, File: origin.File + offset%2*2 - 1}
		return Move{From: origin, To: to, Promote: offset >= knightPromotionOffset}, nil
	}
}

func squareIndex(s Square) int {
	return BoardSize*s.Rank + s.File
}

// direction returns the compass slot and distance of a straight or diagonal displacement.
func direction(dr, df int) (int, int, bool) {
	dist := max(abs(dr), abs(df))
	if dist == 0 || dist > maxDistance || (dr != 0 && df != 0 && abs(dr) != abs(df)) {
		return 0, 0, false
	}
	unit := Square{Rank: sign(dr), File: sign(df)}
	for i, d := range compass {
		if d == unit {
			return i, dist, true
		}
	}
	return 0, 0, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
