package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, sfen string) *GameState {
	t.Helper()
	s, err := ParseSFEN(sfen)
	require.NoError(t, err)
	return s
}

func TestNewGame(t *testing.T) {
	s := NewGame()

	require.Equal(t, Black, s.Player())
	require.Equal(t, 1, s.MoveNumber)
	require.Nil(t, s.Prev)
	require.False(t, s.Ended())
	require.Zero(t, s.Winner())

	actions := s.ValidActions()
	require.Len(t, actions, 30)
	require.True(t, slices.IsSorted(actions), "Valid actions should be in ascending order")

	mask := s.ValidMask()
	require.Len(t, mask, ActionSize)
	for _, a := range actions {
		require.True(t, mask[a])
	}
}

func TestNewGameStateCopiesHands(t *testing.T) {
	var hands [2]Hand
	hands[0][Pawn] = 2
	s := NewGameState(Board{}, hands, Black, nil)

	hands[0][Pawn] = 5
	require.Equal(t, 2, s.Hand(Black).Count(Pawn), "State should not share the caller's hands")

	other := NewGameState(Board{}, [2]Hand{}, Black, nil)
	require.True(t, other.Hand(Black).IsEmpty(), "States should not share a default hand")
}

func TestPlay(t *testing.T) {
	t.Run("capture credits the unpromoted piece", func(t *testing.T) {
		s := mustParse(t, "4k4/9/9/9/4+p4/4P4/9/9/4K4 b - 1")

		next, err := s.Play(Move{From: Square{5, 4}, To: Square{4, 4}})
		require.NoError(t, err)
		require.Equal(t, White, next.Player())
		require.Equal(t, 2, next.MoveNumber)
		require.Same(t, s, next.Prev)
		require.Equal(t, 1, next.Hand(Black).Count(Pawn))
		require.True(t, next.Hand(White).IsEmpty())
		require.Equal(t, "4k4/9/9/9/4P4/9/9/9/4K4 w P 2", FormatSFEN(next))
	})

	t.Run("quiet move leaves hands alone", func(t *testing.T) {
		s := NewGame()
		next, err := s.Play(Move{From: Square{6, 2}, To: Square{5, 2}})
		require.NoError(t, err)
		require.Equal(t, s.Hands, next.Hands)
	})

	t.Run("drop takes one piece from hand", func(t *testing.T) {
		s := mustParse(t, "4k4/9/9/9/9/9/9/9/4K4 b 2P 1")

		next, err := s.Play(NewDrop(Pawn, Square{4, 4}))
		require.NoError(t, err)
		require.Equal(t, 1, next.Hand(Black).Count(Pawn))
		require.Equal(t, 2, s.Hand(Black).Count(Pawn), "Previous state should keep its hand")
		require.Equal(t, "4k4/9/9/9/4P4/9/9/9/4K4 w P 2", FormatSFEN(next))
	})

	t.Run("drop without a piece in hand", func(t *testing.T) {
		s := NewGame()
		_, err := s.Play(NewDrop(Gold, Square{4, 4}))
		require.ErrorIs(t, err, ErrInvalidMove)

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, NewDrop(Gold, Square{4, 4}), invalid.Move)
	})

	t.Run("moves that cannot be applied", func(t *testing.T) {
		s := NewGame()
		bad := []Move{
			{From: Square{0, 0}, To: Square{1, 0}},
			{From: Square{4, 4}, To: Square{3, 4}},
			{From: Square{8, 4}, To: Square{8, 3}},
			{From: Square{6, 4}, To: Square{-1, 4}},
			{From: Square{8, 4}, To: Square{7, 4}, Promote: true},
		}
		for _, m := range bad {
			_, err := s.Play(m)
			require.ErrorIs(t, err, ErrInvalidMove, "Move %s should be rejected", m)
		}
	})

	t.Run("negative hand count cannot drop", func(t *testing.T) {
		var hands [2]Hand
		hands[0][Pawn] = -1
		s := NewGameState(place(map[Square]Piece{{0, 4}: NewPiece(King, White), {8, 4}: NewPiece(King, Black)}), hands, Black, nil)
		_, err := s.Play(NewDrop(Pawn, Square{4, 4}))
		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("pinned piece cannot leave the line", func(t *testing.T) {
		s := mustParse(t, "4k4/9/9/9/4r4/9/9/4G4/4K4 b - 1")
		_, err := s.Play(Move{From: Square{7, 4}, To: Square{7, 3}})
		require.ErrorIs(t, err, ErrInvalidMove)

		_, err = s.Play(Move{From: Square{7, 4}, To: Square{6, 4}})
		require.NoError(t, err)
	})

	t.Run("previous state is not modified", func(t *testing.T) {
		s := NewGame()
		before := FormatSFEN(s)
		_, err := s.Play(Move{From: Square{6, 4}, To: Square{5, 4}})
		require.NoError(t, err)
		require.Equal(t, before, FormatSFEN(s))
	})
}

func TestNext(t *testing.T) {
	t.Run("plays every valid action", func(t *testing.T) {
		s := NewGame()
		for _, a := range s.ValidActions() {
			next, err := s.Next(a)
			require.NoError(t, err)
			require.Equal(t, White, next.(*GameState).Player())
		}
	})

	t.Run("out of range action", func(t *testing.T) {
		_, err := NewGame().Next(ActionSize)
		require.ErrorIs(t, err, ErrActionOutOfRange)
	})

	t.Run("both sides see 30 moves after one move each", func(t *testing.T) {
		s := NewGame()
		next, err := s.Play(Move{From: Square{6, 0}, To: Square{5, 0}})
		require.NoError(t, err)
		require.Len(t, next.LegalMoves(), 30)
	})
}

func TestEnded(t *testing.T) {
	t.Run("checkmated king", func(t *testing.T) {
		s := mustParse(t, "4k4/4G4/4P4/9/9/9/9/9/4K4 w - 1")
		require.True(t, s.Ended())
		require.Equal(t, Black, s.Winner())
		require.Empty(t, s.ValidActions())
	})

	t.Run("check with an escape", func(t *testing.T) {
		s := mustParse(t, "4k4/4G4/9/9/9/9/9/9/4K4 w - 1")
		require.False(t, s.Ended())
		require.Equal(t, []Move{{From: Square{8, 4}, To: Square{7, 4}}}, s.LegalMoves())
	})
}

func TestKeyAndHash(t *testing.T) {
	a := NewGame()
	b := mustParse(t, "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 17")

	require.Equal(t, a.Key(), b.Key(), "Key should ignore the move number")
	require.Equal(t, a.Hash(), b.Hash())

	next, err := a.Play(Move{From: Square{6, 4}, To: Square{5, 4}})
	require.NoError(t, err)
	require.NotEqual(t, a.Key(), next.Key())
	require.NotEqual(t, a.Hash(), next.Hash())
}

func TestEvaluateMaterial(t *testing.T) {
	require.Zero(t, EvaluateMaterial(NewGame()))

	s := mustParse(t, "4k4/9/9/9/9/9/9/9/4K4 b P 1")
	require.Equal(t, 1.0, EvaluateMaterial(s))

	s = mustParse(t, "4k4/9/9/9/9/9/9/9/4K4 w P 1")
	require.Equal(t, -1.0, EvaluateMaterial(s))
}
