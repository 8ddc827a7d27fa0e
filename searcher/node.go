package searcher

import "math"

// edge holds the statistics of one action taken from a node.
type edge struct {
	visits int
	q      float64
}

// node holds the statistics of one expanded state.
type node struct {
	actions []int
	priors  []float64 // aligned with actions
	visits  int
	edges   map[int]*edge
}

func newNode(actions []int, priors []float64) *node {
	return &node{
		actions: actions,
		priors:  priors,
		edges:   make(map[int]*edge, len(actions)),
	}
}

// selectAction returns the action with the highest PUCT score. Ties go to the
// earliest action.
func (n *node) selectAction(c float64) int {
	policy := newPUCT(c, n.visits)
	best := math.Inf(-1)
	action := -1
	for i, a := range n.actions {
		score := policy.evaluate(n.priors[i], n.edges[a])
		if score > best {
			best = score
			action = a
		}
	}
	if action < 0 {
		panic("selecting from a node without actions")
	}
	return action
}

// update folds value into the running mean of action a.
func (n *node) update(a int, value float64) {
	e, ok := n.edges[a]
	if !ok {
		e = &edge{}
		n.edges[a] = e
	}
	e.q = (float64(e.visits)*e.q + value) / float64(e.visits+1)
	e.visits++
	n.visits++
}
