package game

// movement describes how a piece type moves when the board faces its owner.
// Steps are single-square offsets; slides are rays that continue until blocked.
type movement struct {
	steps  []Square
	slides []Square
}

var (
	rookDirections   = []Square{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	bishopDirections = []Square{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	forward          = []Square{{-1, 0}}

	kingSteps   = concat(rookDirections, bishopDirections)
	goldSteps   = concat(rookDirections, []Square{{-1, -1}, {-1, 1}})
	silverSteps = concat(bishopDirections, forward)
	knightSteps = []Square{{-2, -1}, {-2, 1}}
)

var movements = [NumPieceTypes + 1]movement{
	King:           {steps: kingSteps},
	Gold:           {steps: goldSteps},
	Rook:           {slides: rookDirections},
	Bishop:         {slides: bishopDirections},
	Silver:         {steps: silverSteps},
	Lance:          {slides: forward},
	Knight:         {steps: knightSteps},
	Pawn:           {steps: forward},
	PromotedRook:   {steps: bishopDirections, slides: rookDirections},
	PromotedBishop: {steps: rookDirections, slides: bishopDirections},
	PromotedSilver: {steps: goldSteps},
	PromotedLance:  {steps: goldSteps},
	PromotedKnight: {steps: goldSteps},
	PromotedPawn:   {steps: goldSteps},
}

func concat(a, b []Square) []Square {
	out := make([]Square, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// reach calls visit for every square the piece on from can move to, including
// captures. The board must face the piece's owner. It returns false if visit
// stopped the walk early.
func (b *Board) reach(from Square, visit func(to Square) bool) bool {
	piece := b.At(from)
	owner := piece.Owner()
	m := movements[piece.Type()]

	for _, d := range m.steps {
		to := from.add(d)
		if !to.InBounds() || b.At(to).OwnedBy(owner) {
			continue
		}
		if !visit(to) {
			return false
		}
	}

	for _, d := range m.slides {
		for to := from.add(d); to.InBounds(); to = to.add(d) {
			target := b.At(to)
			if target.OwnedBy(owner) {
				break
			}
			if !visit(to) {
				return false
			}
			if target != 0 {
				break
			}
		}
	}
	return true
}
