package agent

import (
	"shogi/game"
	"shogi/searcher"
	"shogi/utils"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (Decision, error) {
	policy, metric, err := a.mcts.Simulate(state)
	if err != nil {
		return Decision{Metric: metric}, err
	}
	return Decision{Action: utils.ArgMax(policy), Policy: policy, Metric: metric}, nil
}
