package game

// LegalMoves returns every legal move for player on a board facing player.
// Moves that leave player's own king in check are excluded. An empty result
// means player is checkmated or stalemated.
func LegalMoves(b Board, player Player, hand Hand) []Move {
	var moves []Move
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			sq := Square{Rank: r, File: f}
			piece := b.At(sq)
			switch {
			case piece == 0:
				moves = appendDrops(moves, b, player, hand, sq)
			case piece.OwnedBy(player):
				moves = appendPieceMoves(moves, b, player, sq)
			}
		}
	}
	return moves
}

// LegalMovesFor returns the legal moves of the piece on origin. It is empty
// when origin is off the board or does not hold one of player's pieces.
func LegalMovesFor(b Board, player Player, origin Square) []Move {
	if !origin.InBounds() || !b.At(origin).OwnedBy(player) {
		return nil
	}
	return appendPieceMoves(nil, b, player, origin)
}

// LegalDropsFor returns the legal drops of piece type t from player's hand.
func LegalDropsFor(b Board, player Player, hand Hand, t PieceType) []Move {
	if !t.Droppable() || hand[t] <= 0 {
		return nil
	}
	var single Hand
	single[t] = hand[t]

	var moves []Move
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			sq := Square{Rank: r, File: f}
			if b.At(sq) == 0 {
				moves = appendDrops(moves, b, player, single, sq)
			}
		}
	}
	return moves
}

func appendPieceMoves(moves []Move, b Board, player Player, from Square) []Move {
	t := b.At(from).Type()
	b.reach(from, func(to Square) bool {
		if t.Promotable() && (inZone(from.Rank) || inZone(to.Rank)) {
			if !mustPromote(t, to.Rank) {
				moves = appendIfSafe(moves, b, player, Move{From: from, To: to})
			}
			moves = appendIfSafe(moves, b, player, Move{From: from, To: to, Promote: true})
			return true
		}
		moves = appendIfSafe(moves, b, player, Move{From: from, To: to})
		return true
	})
	return moves
}

func appendDrops(moves []Move, b Board, player Player, hand Hand, to Square) []Move {
	for _, t := range HandTypes {
		if hand[t] <= 0 || !canDrop(b, player, t, to) {
			continue
		}
		moves = appendIfSafe(moves, b, player, NewDrop(t, to))
	}
	return moves
}

func canDrop(b Board, player Player, t PieceType, to Square) bool {
	switch t {
	case Pawn:
		return to.Rank > 0 && !b.hasPawnOnFile(player, to.File) && !dropMates(b, player, to)
	case Lance:
		return to.Rank > 0
	case Knight:
		return to.Rank > 1
	}
	return true
}

// dropMates reports whether a pawn dropped on to checkmates the enemy king directly ahead.
func dropMates(b Board, player Player, to Square) bool {
	if b[to.Rank-1][to.File] != NewPiece(King, player.Opponent()) {
		return false
	}
	next := b.Apply(NewDrop(Pawn, to), player).Rotate()
	return len(LegalMoves(next, player.Opponent(), Hand{})) == 0
}

// appendIfSafe appends m unless it leaves player's king attacked.
func appendIfSafe(moves []Move, b Board, player Player, m Move) []Move {
	if InCheck(b.Apply(m, player).Rotate(), player) {
		return moves
	}
	return append(moves, m)
}
