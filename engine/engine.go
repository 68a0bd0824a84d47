package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// MaxMoves guards the game loop; a Connect Four game cannot exceed a full
// board.
const MaxMoves = game.Rows * game.Cols

type Engine interface {
	// Run starts a game and plays it to a terminal outcome
	Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric)
}
