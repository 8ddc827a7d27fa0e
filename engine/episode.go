package engine

import (
	"fmt"
	"shogi/game"
	"shogi/searcher/agent"
)

// Example is one training sample: the features of a position, the search
// policy found there and the final outcome for the player to move.
type Example struct {
	Planes []game.Plane
	Policy []float64
	Player game.Player
	Reward float64
}

// Episode plays one self-play game from start, or the initial position when
// start is nil, with a single agent on both sides and returns an example per
// move. Rewards are +1 for the winner's positions, -1 for the loser's and 0
// everywhere when the move cap ends the game.
func Episode(a agent.Agent, start *game.GameState, maxMoves int) ([]Example, game.Player, error) {
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	var examples []Example
	state := start
	if state == nil {
		state = game.NewGame()
	}
	for !state.Ended() && len(examples) < maxMoves {
		decision, err := a.FindMove(state)
		if err != nil {
			return nil, 0, fmt.Errorf("move %d: %w", state.MoveNumber, err)
		}
		examples = append(examples, Example{
			Planes: game.Planes(state),
			Policy: decision.Policy,
			Player: state.Player(),
		})

		next, err := state.Next(decision.Action)
		if err != nil {
			return nil, 0, fmt.Errorf("move %d: %w", state.MoveNumber, err)
		}
		state = next.(*game.GameState)
	}

	winner := state.Winner()
	for i := range examples {
		switch {
		case winner == 0:
			examples[i].Reward = 0
		case examples[i].Player == winner:
			examples[i].Reward = 1
		default:
			examples[i].Reward = -1
		}
	}
	return examples, winner, nil
}
