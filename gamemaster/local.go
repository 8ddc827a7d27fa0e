package gamemaster

import (
	"shogi/game"
	"sync"
	"time"
)

// Update is published after every move played in a session.
type Update struct {
	Move  game.Move
	State *game.GameState
}

// Session is one game in progress. Moves are given in the orientation of the
// player to move, as everywhere in the game package.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	state     *game.GameState
	history   []game.Move
	updatedAt time.Time
	updates   chan Update
	gameOver  bool
}

func newSession(id string, state *game.GameState) *Session {
	now := time.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		state:     state,
		updatedAt: now,
		updates:   make(chan Update, 1),
		gameOver:  state.Ended(),
	}
	if s.gameOver {
		close(s.updates)
	}
	return s
}

func (s *Session) State() *game.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) History() []game.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]game.Move(nil), s.history...)
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// GameOver reports whether the position has ended. Once it has, the updates
// channel is closed.
func (s *Session) GameOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameOver
}

// Poll returns the latest unread update without blocking. ok is false when
// nothing new was played.
func (s *Session) Poll() (update Update, ok bool) {
	select {
	case u, open := <-s.updates:
		return u, open
	default:
		return Update{}, false
	}
}

func (s *Session) Play(move game.Move) (*game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return nil, ErrGameOver
	}

	next, err := s.state.Play(move)
	if err != nil {
		return nil, err
	}
	s.state = next
	s.history = append(s.history, move)
	s.updatedAt = time.Now()
	s.gameOver = next.Ended()

	// Only the latest update is kept
	select {
	case <-s.updates:
	default:
	}
	s.updates <- Update{Move: move, State: next}
	if s.gameOver {
		close(s.updates)
	}
	return next, nil
}

func (s *Session) LegalMovesFor(origin game.Square) []game.Move {
	state := s.State()
	return game.LegalMovesFor(state.Board, state.Player(), origin)
}

func (s *Session) LegalDropsFor(t game.PieceType) []game.Move {
	state := s.State()
	return game.LegalDropsFor(state.Board, state.Player(), state.Hand(state.Player()), t)
}
