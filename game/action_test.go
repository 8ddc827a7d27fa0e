package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionSize(t *testing.T) {
	require.Equal(t, 11259, ActionSize)
}

func TestDecodeEncode(t *testing.T) {
	t.Run("every action id round-trips", func(t *testing.T) {
		seen := make(map[Move]int, ActionSize)
		for a := 0; a < ActionSize; a++ {
			m, err := Decode(a)
			require.NoError(t, err)
			require.Equal(t, a, Encode(m), "Action %d decoded to %s", a, m)

			prev, dup := seen[m]
			require.False(t, dup, "Actions %d and %d decode to the same move %s", prev, a, m)
			seen[m] = a
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, a := range []int{-1, ActionSize, ActionSize + 139} {
			_, err := Decode(a)
			require.ErrorIs(t, err, ErrActionOutOfRange)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("drop uses the destination plane", func(t *testing.T) {
		a := Encode(NewDrop(Pawn, Square{4, 4}))
		require.Equal(t, PlaneSize*40+dropOffset+6, a)
	})

	t.Run("knight jumps", func(t *testing.T) {
		require.Equal(t, PlaneSize*73+0, Encode(Move{From: Square{8, 1}, To: Square{6, 0}}))
		require.Equal(t, PlaneSize*73+1, Encode(Move{From: Square{8, 1}, To: Square{6, 2}}))
		require.Equal(t, PlaneSize*73+3, Encode(Move{From: Square{8, 1}, To: Square{6, 2}, Promote: true}))
	})

	t.Run("full-length slides keep their direction", func(t *testing.T) {
		west := Encode(Move{From: Square{0, 8}, To: Square{0, 0}})
		east := Encode(Move{From: Square{0, 8}, To: Square{0, 8}.add(Square{0, 1})})
		require.NotEqual(t, west, east)

		north := Encode(Move{From: Square{8, 0}, To: Square{0, 0}})
		northPromoted := Encode(Move{From: Square{8, 0}, To: Square{0, 0}, Promote: true})
		require.Equal(t, PlaneSize*72+queenOffset+7*maxDistance+7, north)
		require.Equal(t, north+queenPromotionOffset, northPromoted)
	})

	t.Run("unrepresentable displacement", func(t *testing.T) {
		require.Panics(t, func() {
			Encode(Move{From: Square{4, 4}, To: Square{5, 6}})
		})
		require.Panics(t, func() {
			Encode(Move{From: Square{4, 4}, To: Square{4, 4}})
		})
	})
}

func TestLegalMovesRoundTrip(t *testing.T) {
	positions := []string{
		StartSFEN,
		"8l/1l+R2P3/p2pBG1pp/kps1p4/Nn1P2G2/P1P1P2PP/1PS6/1KSG3+r1/LN2+p3L w Sbgn3p 124",
		"8l/1l+R2P3/p2pBG1pp/kps1p4/Nn1P2G2/P1P1P2PP/1PS6/1KSG3+r1/LN2+p3L b Sbgn3p 124",
	}
	for _, sfen := range positions {
		s, err := ParseSFEN(sfen)
		require.NoError(t, err)

		actions := make(map[int]bool)
		for _, m := range s.LegalMoves() {
			a := Encode(m)
			got, err := Decode(a)
			require.NoError(t, err)
			require.Equal(t, m, got)
			actions[a] = true
		}
		require.Len(t, actions, len(s.LegalMoves()), "Legal moves of %q should map to distinct actions", sfen)
	}
}
