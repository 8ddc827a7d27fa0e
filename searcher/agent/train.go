package agent

import (
	"math"
	"shogi/game"
	"shogi/searcher"
	"shogi/utils"

	"golang.org/x/exp/rand"
)

type TrainingOption func(a *trainingAgent)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	greedyAfter int
	rng         *rand.Rand
}

func WithTemperature(temperature float64) TrainingOption {
	return func(a *trainingAgent) {
		if temperature >= 0 {
			a.temperature = temperature
		}
	}
}

// WithGreedyAfter switches to the most visited action once the game has passed move n.
func WithGreedyAfter(n int) TrainingOption {
	return func(a *trainingAgent) {
		if n > 0 {
			a.greedyAfter = n
		}
	}
}

func WithSeed(seed uint64) TrainingOption {
	return func(a *trainingAgent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// NewTrainingAgent returns a new agent for self-play during training.
func NewTrainingAgent(mcts *searcher.MCTS, options ...TrainingOption) Agent {
	a := &trainingAgent{
		mcts:        mcts,
		temperature: 1.0,
		rng:         rand.New(rand.NewSource(1)),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *trainingAgent) FindMove(state game.State) (Decision, error) {
	policy, metric, err := a.mcts.Simulate(state)
	if err != nil {
		return Decision{Metric: metric}, err
	}

	temperature := a.temperature
	if gs, ok := state.(*game.GameState); ok && a.greedyAfter > 0 && gs.MoveNumber > a.greedyAfter {
		temperature = 0
	}
	action := sample(adjustTemperature(policy, temperature), a.rng)
	return Decision{Action: action, Policy: policy, Metric: metric}, nil
}

// adjustTemperature sharpens (t < 1) or flattens (t > 1) a visit policy. A zero
// temperature puts all weight on the most visited action.
func adjustTemperature(policy []float64, temperature float64) []float64 {
	adjusted := make([]float64, len(policy))
	if temperature == 0 {
		adjusted[utils.ArgMax(policy)] = 1
		return adjusted
	}

	exponent := 1.0 / temperature
	for a, visit := range policy {
		if visit > 0 {
			adjusted[a] = math.Pow(visit, exponent)
		}
	}
	// Normalize
	sum := utils.Sum(adjusted)
	if sum == 0 {
		return adjustTemperature(policy, 0)
	}
	for a := range adjusted {
		adjusted[a] /= sum
	}
	return adjusted
}

func sample(policy []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	last := -1
	for a, prob := range policy {
		if prob == 0 {
			continue
		}
		last = a
		cumulative += prob
		if sampled < cumulative {
			return a
		}
	}
	return last // Fallback in case of rounding errors
}
