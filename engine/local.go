package engine

import (
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"

	"github.com/rs/zerolog/log"
)

// LocalEngine owns the authoritative game state and drives two in-process
// agents through a full game. Agents only ever see copies of the state;
// committed moves reach them through Observe.
type LocalEngine struct {
	State  *game.State
	Agents [2]Agent
}

func NewLocalEngine(one, two Agent) *LocalEngine {
	return &LocalEngine{
		State:  game.NewState(),
		Agents: [2]Agent{one, two},
	}
}

func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.CurrentPlayer())

	moveCount := 0
	for !e.State.IsTerminal() && moveCount < MaxMoves {
		player := e.State.CurrentPlayer()
		agent := e.Agents[player-game.PlayerOne]

		col, stats := agent.FindMove(e.State.Copy())
		e.State.ApplyMove(col)
		moveCount++

		for _, a := range e.Agents {
			a.Observe(col)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:        moveCount,
			Player:      player,
			Column:      col,
			SearchStats: stats,
		})

		log.Debug().Msgf("move %d: %s played column %d after %d rollouts",
			moveCount, player, col, stats.Rollouts)
	}

	outcome := e.State.Outcome()
	end := time.Now()

	log.Info().Msgf("game over after %d moves: %s", moveCount, outcome)

	gameMetric := metrics.GameMetric{
		StartingPlayer: game.PlayerOne,
		Winner:         outcome,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     moveCount,
	}
	return outcome, gameMetric, moveMetrics
}
