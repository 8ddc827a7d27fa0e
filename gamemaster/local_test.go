package gamemaster

import (
	"shogi/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var pawnPush = game.Move{From: game.Square{Rank: 6, File: 4}, To: game.Square{Rank: 5, File: 4}}

const mateInOne = "4k4/9/4P4/9/9/9/9/9/4K4 b G 1"

func TestManagerNewGame(t *testing.T) {
	m := NewManager()

	t.Run("starts from the initial position", func(t *testing.T) {
		s, err := m.NewGame("")
		require.NoError(t, err)
		require.NotEmpty(t, s.ID)
		require.Equal(t, game.StartSFEN, game.FormatSFEN(s.State()))

		got, err := m.Get(s.ID)
		require.NoError(t, err)
		require.Same(t, s, got)
	})

	t.Run("starts from a position", func(t *testing.T) {
		s, err := m.NewGame(mateInOne)
		require.NoError(t, err)
		require.Equal(t, 1, s.State().Hand(game.Black).Count(game.Gold))
	})

	t.Run("rejects bad positions", func(t *testing.T) {
		_, err := m.NewGame("not a position")
		require.ErrorIs(t, err, game.ErrInvalidSFEN)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := m.NewGame("")
		require.NoError(t, err)
		b, err := m.NewGame("")
		require.NoError(t, err)
		require.NotEqual(t, a.ID, b.ID)
	})
}

func TestManagerPlay(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("")
	require.NoError(t, err)

	_, ok := s.Poll()
	require.False(t, ok, "No update before the first move")

	t.Run("plays legal moves", func(t *testing.T) {
		next, err := m.Play(s.ID, pawnPush)
		require.NoError(t, err)
		require.Equal(t, game.White, next.Player())
		require.Equal(t, []game.Move{pawnPush}, s.History())

		update, ok := s.Poll()
		require.True(t, ok)
		require.Equal(t, pawnPush, update.Move)
		require.Same(t, next, update.State)
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		before := s.State()
		_, err := m.Play(s.ID, game.Move{From: game.Square{Rank: 8, File: 4}, To: game.Square{Rank: 4, File: 4}})
		require.ErrorIs(t, err, game.ErrInvalidMove)
		var invalid *game.InvalidMoveError
		require.ErrorAs(t, err, &invalid)
		require.Same(t, before, s.State())
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := m.Play("missing", pawnPush)
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestManagerGameOver(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame(mateInOne)
	require.NoError(t, err)

	mate := game.NewDrop(game.Gold, game.Square{Rank: 1, File: 4})
	next, err := m.Play(s.ID, mate)
	require.NoError(t, err)
	require.True(t, next.Ended())
	require.Equal(t, game.Black, next.Winner())

	_, err = m.Play(s.ID, pawnPush)
	require.ErrorIs(t, err, ErrGameOver)

	update, ok := s.Poll()
	require.True(t, ok, "The final update is still delivered")
	require.Equal(t, mate, update.Move)
	_, ok = s.Poll()
	require.False(t, ok)
	require.True(t, s.GameOver())
}

func TestManagerEndedStart(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("4k4/4G4/4P4/9/9/9/9/9/4K4 w - 1")
	require.NoError(t, err)
	require.True(t, s.GameOver())

	_, open := <-s.updates
	require.False(t, open, "Updates should be closed for an ended position")

	_, err = m.Play(s.ID, pawnPush)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestManagerQueries(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("")
	require.NoError(t, err)

	moves, err := m.LegalMovesFor(s.ID, game.Square{Rank: 6, File: 4})
	require.NoError(t, err)
	require.Equal(t, []game.Move{pawnPush}, moves)

	drops, err := m.LegalDropsFor(s.ID, game.Pawn)
	require.NoError(t, err)
	require.Empty(t, drops, "Nothing in hand")

	held, err := m.NewGame(mateInOne)
	require.NoError(t, err)
	drops, err = m.LegalDropsFor(held.ID, game.Gold)
	require.NoError(t, err)
	require.NotEmpty(t, drops)
	for _, d := range drops {
		require.True(t, d.IsDrop())
		require.Equal(t, game.Gold, d.DropType())
	}

	_, err = m.LegalMovesFor("missing", game.Square{})
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("")
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	require.NoError(t, m.Remove(s.ID))
	require.Zero(t, m.Len())
	require.ErrorIs(t, m.Remove(s.ID), ErrGameNotFound)
	_, err = m.Get(s.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestSessionConcurrentPlay(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("")
	require.NoError(t, err)

	// The centre pawn push is legal once for each side, then never again
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Play(pawnPush)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	require.Equal(t, 2, succeeded)
	require.Len(t, s.History(), 2)
}
