package metrics

import (
	"time"

	"connectfour/game"
	"connectfour/searcher"
)

// AgentConfig describes one search configuration under comparison.
type AgentConfig struct {
	ID          int
	Exploration float64
	Budget      time.Duration
}

// MoveMetric captures one committed move and the search that produced it.
type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	searcher.SearchStats
}

// GameMetric captures one finished game.
type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// GameRecord ties a game to the agent configs that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// MoveRecord ties a move to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
