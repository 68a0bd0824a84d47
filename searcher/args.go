package searcher

import "math"

// Hyperparameters for MCTS

const DefaultExploration = math.Sqrt2 // Exploration constant for UCT

// Rewards credited during backpropagation
const (
	Win  = 1
	Loss = 0
)

// NoMove is the sentinel returned when the root position is already over.
const NoMove = -1
