package searcher

import "math"

const epsilon = 1e-8

// puct scores the actions of a node with N visits.
type puct struct {
	c          float64
	sqrtN      float64
	sqrtNFresh float64
}

func newPUCT(c float64, N int) puct {
	if N < 0 {
		panic("parent visits must not be negative")
	}
	return puct{
		c:          c,
		sqrtN:      math.Sqrt(float64(N)),
		sqrtNFresh: math.Sqrt(float64(N) + epsilon),
	}
}

// evaluate returns q + c*p*sqrt(N)/(1+n) for a visited action and c*p*sqrt(N+eps) otherwise.
func (p puct) evaluate(prior float64, e *edge) float64 {
	if e == nil {
		return p.c * prior * p.sqrtNFresh
	}
	return e.q + p.c*prior*p.sqrtN/float64(1+e.visits)
}
