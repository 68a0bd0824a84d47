package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT prepares a scorer for the children of a node with N parent visits.
func newUCT(exploration float64, N int) uct {
	return uct{numerator: exploration * exploration * math.Log(float64(N))}
}

// evaluate scores a child by win rate plus exploration bonus:
// UCT = w/n + sqrt(c^2*ln(N)/n). An unvisited child scores +Inf so that
// every child is tried once before any is revisited.
func (u uct) evaluate(wins, visits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	n := float64(visits)
	return float64(wins)/n + math.Sqrt(u.numerator/n)
}
