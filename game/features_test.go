package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanes(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		planes := Planes(NewGame())
		require.Len(t, planes, FeaturePlanes)
		require.Equal(t, 86, FeaturePlanes)

		require.Equal(t, float32(1), planes[King-1][8][4], "Own king plane")
		require.Equal(t, float32(1), planes[NumPieceTypes+int(King)-1][0][4], "Opponent king plane")
		require.Equal(t, float32(1), planes[Pawn-1][6][0])
		require.Zero(t, planes[Pawn-1][2][0])
		require.Equal(t, float32(1), planes[statePlanes-1][3][3], "Black to move")

		for _, p := range planes[statePlanes:] {
			require.Equal(t, Plane{}, p, "Missing predecessor should encode as zeros")
		}
	})

	t.Run("hands and history", func(t *testing.T) {
		prev, err := ParseSFEN("4k4/9/9/9/4+p4/4P4/9/9/4K4 b - 1")
		require.NoError(t, err)
		s, err := prev.Play(Move{From: Square{5, 4}, To: Square{4, 4}})
		require.NoError(t, err)

		planes := Planes(s)
		handBase := 2 * NumPieceTypes
		opponentPawns := planes[handBase+len(HandTypes)+6]
		require.Equal(t, float32(1), opponentPawns[0][0], "White sees black's captured pawn")
		require.Zero(t, planes[handBase+6][0][0])
		require.Zero(t, planes[statePlanes-1][0][0], "White to move")

		require.Equal(t, Planes(prev)[:statePlanes], planes[statePlanes:], "Previous state follows the current one")
	})
}
