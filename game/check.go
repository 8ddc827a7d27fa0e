package game

// InCheck reports whether player's king is attacked. The board must face the
// attacking side, i.e. player's opponent. A board without player's king is never in check.
func InCheck(b Board, player Player) bool {
	king, ok := b.kingSquare(player)
	if !ok {
		return false
	}

	attacker := player.Opponent()
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if !b[r][f].OwnedBy(attacker) {
				continue
			}
			hit := false
			b.reach(Square{Rank: r, File: f}, func(to Square) bool {
				hit = to == king
				return !hit
			})
			if hit {
				return true
			}
		}
	}
	return false
}
