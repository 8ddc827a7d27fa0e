// Package gamemaster keeps in-process game sessions that a transport layer
// can drive: create a game, query legal moves for a square or a piece in
// hand, and play checked moves.
package gamemaster

import (
	"errors"
	"shogi/game"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

// NewGame starts a session from sfen, or the initial position when sfen is empty.
func (m *Manager) NewGame(sfen string) (*Session, error) {
	state := game.NewGame()
	if sfen != "" {
		var err error
		state, err = game.ParseSFEN(sfen)
		if err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	s := newSession(id, state)
	m.games[id] = s
	log.Debug().Str("game", id).Msg("created game")
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (m *Manager) Play(id string, move game.Move) (*game.GameState, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	next, err := s.Play(move)
	if err != nil {
		return nil, err
	}
	if next.Ended() {
		log.Debug().Str("game", id).Msgf("%s wins", next.Winner())
	}
	return next, nil
}

func (m *Manager) LegalMovesFor(id string, origin game.Square) ([]game.Move, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return s.LegalMovesFor(origin), nil
}

func (m *Manager) LegalDropsFor(id string, t game.PieceType) ([]game.Move, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return s.LegalDropsFor(t), nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
