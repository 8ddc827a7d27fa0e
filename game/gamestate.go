package game

import (
	"hash/fnv"
	"slices"
	"sync"
)

// GameState is one position. It is never modified after construction: Play
// and Next return a new state linked to its predecessor through Prev.
type GameState struct {
	Board         Board
	Hands         [2]Hand
	CurrentPlayer Player
	MoveNumber    int
	Prev          *GameState

	once  sync.Once
	moves []Move
}

// NewGameState builds a state from a board facing player. The hands are copied.
func NewGameState(board Board, hands [2]Hand, player Player, prev *GameState) *GameState {
	return &GameState{
		Board:         board,
		Hands:         hands,
		CurrentPlayer: player,
		MoveNumber:    1,
		Prev:          prev,
	}
}

// NewGame returns the standard starting position with black to move.
func NewGame() *GameState {
	return NewGameState(DefaultBoard(), [2]Hand{}, Black, nil)
}

func handIndex(p Player) int {
	if p == Black {
		return 0
	}
	return 1
}

func (s *GameState) Player() Player {
	return s.CurrentPlayer
}

// Hand returns a copy of p's captured pieces.
func (s *GameState) Hand(p Player) Hand {
	return s.Hands[handIndex(p)]
}

// BlackBoard returns the board as seen from black's side.
func (s *GameState) BlackBoard() Board {
	if s.CurrentPlayer == White {
		return s.Board.Rotate()
	}
	return s.Board
}

func (s *GameState) LegalMoves() []Move {
	s.once.Do(func() {
		s.moves = LegalMoves(s.Board, s.CurrentPlayer, s.Hand(s.CurrentPlayer))
	})
	return s.moves
}

// ValidActions returns the action ids of the legal moves in ascending order.
func (s *GameState) ValidActions() []int {
	moves := s.LegalMoves()
	actions := make([]int, len(moves))
	for i, m := range moves {
		actions[i] = Encode(m)
	}
	slices.Sort(actions)
	return actions
}

// ValidMask returns an ActionSize mask of the legal actions.
func (s *GameState) ValidMask() []bool {
	mask := make([]bool, ActionSize)
	for _, m := range s.LegalMoves() {
		mask[Encode(m)] = true
	}
	return mask
}

// Ended reports whether the player to move has no legal moves and has therefore lost.
func (s *GameState) Ended() bool {
	return len(s.LegalMoves()) == 0
}

// Winner returns the winning player, or 0 while the game is still going.
func (s *GameState) Winner() Player {
	if s.Ended() {
		return s.CurrentPlayer.Opponent()
	}
	return 0
}

// Next decodes action and plays it.
func (s *GameState) Next(action int) (State, error) {
	m, err := Decode(action)
	if err != nil {
		return nil, err
	}
	next, err := s.Play(m)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Play applies the legal move m for the player to move. Captures are credited to the mover's
// hand in unpromoted form and drops are taken from it. The returned board
// faces the opponent.
func (s *GameState) Play(m Move) (*GameState, error) {
	if err := s.validate(m); err != nil {
		return nil, err
	}
	if !slices.Contains(s.LegalMoves(), m) {
		return nil, invalidMove(m, "not legal for %s", s.CurrentPlayer)
	}

	hands := s.Hands
	own := &hands[handIndex(s.CurrentPlayer)]
	if m.IsDrop() {
		own[m.DropType()]--
	} else if captured := s.Board.At(m.To); captured != 0 {
		if t := captured.Type().Base(); t != King {
			own[t]++
		}
	}

	next := NewGameState(s.Board.Apply(m, s.CurrentPlayer).Rotate(), hands, s.CurrentPlayer.Opponent(), s)
	next.MoveNumber = s.MoveNumber + 1
	return next, nil
}

func (s *GameState) validate(m Move) error {
	if !m.To.InBounds() {
		return invalidMove(m, "destination off the board")
	}
	target := s.Board.At(m.To)

	if m.IsDrop() {
		t := m.DropType()
		if !t.Droppable() {
			return invalidMove(m, "%s cannot be dropped", t)
		}
		if s.Hand(s.CurrentPlayer)[t] <= 0 {
			return invalidMove(m, "no %s in hand", t)
		}
		if target != 0 {
			return invalidMove(m, "drop on an occupied square")
		}
		return nil
	}

	if !m.From.InBounds() {
		return invalidMove(m, "origin off the board")
	}
	piece := s.Board.At(m.From)
	if !piece.OwnedBy(s.CurrentPlayer) {
		return invalidMove(m, "origin does not hold a %s piece", s.CurrentPlayer)
	}
	if target.OwnedBy(s.CurrentPlayer) {
		return invalidMove(m, "destination holds own piece")
	}
	if m.Promote && !piece.Type().Promotable() {
		return invalidMove(m, "%s cannot promote", piece.Type())
	}
	return nil
}

// Key identifies the position regardless of history and move number.
func (s *GameState) Key() string {
	return positionSFEN(s)
}

func (s *GameState) Hash() StateHash {
	h := fnv.New64a()
	h.Write([]byte(s.Key()))
	return StateHash(h.Sum64())
}
