package game

// Per state: own pieces, opponent pieces, own hand counts, opponent hand counts, side to move.
const (
	statePlanes   = 2*NumPieceTypes + 2*len(HandTypes) + 1
	FeaturePlanes = 2 * statePlanes
)

type Plane [BoardSize][BoardSize]float32

// Planes encodes s and its predecessor as FeaturePlanes planes, current state
// first. Each state is seen from its own player to move; a missing
// predecessor stays all zeros.
func Planes(s *GameState) []Plane {
	planes := make([]Plane, FeaturePlanes)
	encodeState(planes[:statePlanes], s)
	if s.Prev != nil {
		encodeState(planes[statePlanes:], s.Prev)
	}
	return planes
}

func encodeState(planes []Plane, s *GameState) {
	player := s.CurrentPlayer
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			p := s.Board[r][f]
			switch {
			case p == 0:
			case p.OwnedBy(player):
				planes[p.Type()-1][r][f] = 1
			default:
				planes[NumPieceTypes+int(p.Type())-1][r][f] = 1
			}
		}
	}

	handBase := 2 * NumPieceTypes
	own, opponent := s.Hand(player), s.Hand(player.Opponent())
	for i, t := range HandTypes {
		fill(&planes[handBase+i], float32(own[t]))
		fill(&planes[handBase+len(HandTypes)+i], float32(opponent[t]))
	}
	fill(&planes[statePlanes-1], float32(player+1)/2)
}

func fill(p *Plane, v float32) {
	for r := range p {
		for f := range p[r] {
			p[r][f] = v
		}
	}
}
