package searcher

import (
	"fmt"
	"shogi/experiments/metrics"
	"shogi/game"

	"github.com/rs/zerolog/log"
)

type Option func(mcts *MCTS)

// MCTS keeps statistics for every state it has expanded. It is not safe for
// concurrent use; parallel games need one MCTS each.
type MCTS struct {
	oracle   Oracle
	cpuct    float64
	episodes int
	maxDepth int
	nodes    map[string]*node
	terminal map[string]bool
	metrics  metrics.Collector
}

type step struct {
	node   *node
	action int
}

func WithCPuct(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.cpuct = c
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(oracle Oracle, options ...Option) *MCTS {
	if oracle == nil {
		panic("MCTS needs an oracle")
	}
	m := &MCTS{ // Default values
		oracle:   oracle,
		cpuct:    DefaultCPuct,
		maxDepth: MaxDepth,
		nodes:    make(map[string]*node),
		terminal: make(map[string]bool),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 {
		panic("Must specify search episodes")
	}
	return m
}

// Simulate runs the configured number of searches from state and returns the
// resulting visit policy.
func (m *MCTS) Simulate(state game.State) ([]float64, metrics.SearchMetric, error) {
	m.metrics.Start(m.cpuct, m.maxDepth)
	for i := 0; i < m.episodes; i++ {
		m.Search(state)
		m.metrics.AddEpisode()
	}
	metric := m.metrics.Complete()

	policy, err := m.Policy(state)
	if err != nil {
		return nil, metric, err
	}
	return policy, metric, nil
}

// Search runs one playout from root: descend by PUCT to a terminal or
// unexpanded state, evaluate it, then back the value up the visited path.
// It returns the value from the perspective of the player who moved into root.
func (m *MCTS) Search(root game.State) float64 {
	var path []step
	state := root
	value := Draw

	for depth := 0; ; depth++ {
		key := state.Key()
		if m.isTerminal(key, state) {
			m.metrics.AddTerminalHit()
			value = Win
			break
		}

		n, ok := m.nodes[key]
		if !ok {
			value = -m.expand(key, state)
			break
		}

		if depth >= m.maxDepth {
			m.metrics.AddCutoff()
			value = Draw
			break
		}

		action := n.selectAction(m.cpuct)
		next, err := state.Next(action)
		if err != nil {
			panic(fmt.Sprintf("valid action %d could not be played: %v", action, err))
		}
		path = append(path, step{node: n, action: action})
		state = next
	}

	for i := len(path) - 1; i >= 0; i-- {
		path[i].node.update(path[i].action, value)
		value = -value
	}
	return value
}

func (m *MCTS) isTerminal(key string, state game.State) bool {
	ended, ok := m.terminal[key]
	if !ok {
		ended = state.Ended()
		m.terminal[key] = ended
	}
	return ended
}

// expand asks the oracle about state, stores its masked priors and returns its value.
func (m *MCTS) expand(key string, state game.State) float64 {
	priors, value := m.oracle.Predict(state)
	actions := state.ValidActions()

	masked := make([]float64, len(actions))
	sum := 0.0
	for i, a := range actions {
		masked[i] = priors[a]
		sum += priors[a]
	}

	if sum > 0 {
		for i := range masked {
			masked[i] /= sum
		}
	} else {
		log.Warn().Str("state", key).Int("actions", len(actions)).
			Msg("oracle gave no weight to any valid action, using uniform priors")
		m.metrics.AddDegeneratePolicy()
		for i := range masked {
			masked[i] = 1 / float64(len(actions))
		}
	}

	m.nodes[key] = newNode(actions, masked)
	m.metrics.AddExpansion()
	return value
}

// Policy returns the share of root visits each action received from state.
func (m *MCTS) Policy(state game.State) ([]float64, error) {
	key := state.Key()
	n, ok := m.nodes[key]
	if !ok || n.visits == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnvisitedState, key)
	}

	policy := make([]float64, game.ActionSize)
	for a, e := range n.edges {
		policy[a] = float64(e.visits) / float64(n.visits)
	}
	return policy, nil
}

// Visits returns how often state has been passed through during backup.
func (m *MCTS) Visits(state game.State) int {
	if n, ok := m.nodes[state.Key()]; ok {
		return n.visits
	}
	return 0
}

// Reset forgets all statistics.
func (m *MCTS) Reset() {
	m.nodes = make(map[string]*node)
	m.terminal = make(map[string]bool)
}
