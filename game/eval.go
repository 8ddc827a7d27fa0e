package game

// pieceValues are rough material values indexed by PieceType.
var pieceValues = [NumPieceTypes + 1]float64{
	King:           0,
	Gold:           6,
	Rook:           10,
	Bishop:         8,
	Silver:         5,
	Lance:          3,
	Knight:         4,
	Pawn:           1,
	PromotedRook:   12,
	PromotedBishop: 10,
	PromotedSilver: 6,
	PromotedLance:  6,
	PromotedKnight: 6,
	PromotedPawn:   6,
}

// EvaluateMaterial tallies board and hand material to a score between -1 and 1
// from the perspective of the player to move.
func EvaluateMaterial(s *GameState) float64 {
	player := s.CurrentPlayer
	var own, opponent float64
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			p := s.Board[r][f]
			switch {
			case p == 0:
			case p.OwnedBy(player):
				own += pieceValues[p.Type()]
			default:
				opponent += pieceValues[p.Type()]
			}
		}
	}

	ownHand, opponentHand := s.Hand(player), s.Hand(player.Opponent())
	for _, t := range HandTypes {
		own += float64(ownHand[t]) * pieceValues[t]
		opponent += float64(opponentHand[t]) * pieceValues[t]
	}
	return normalize(own, opponent)
}

func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
