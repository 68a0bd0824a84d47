package experiments

import (
	"fmt"
	"math"
	"time"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 50 * time.Millisecond
)

// RunExplorationExperiment pits a range of UCT exploration constants against
// the sqrt(2) baseline in self-play and records who wins.
func RunExplorationExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Exploration: math.Sqrt2, Budget: TimeBudget}
	configs := []metrics.AgentConfig{
		{ID: 1, Exploration: 0.5, Budget: TimeBudget},
		{ID: 2, Exploration: 1.0, Budget: TimeBudget},
		{ID: 3, Exploration: math.Sqrt2, Budget: TimeBudget}, // Baseline equivalent
		{ID: 4, Exploration: 2.0, Budget: TimeBudget},
		{ID: 5, Exploration: 3.0, Budget: TimeBudget},
	}

	// Each matchup pairs a candidate against the baseline
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("exploration", append(configs, baseline), matchUps)
}

// RunThroughputExperiment measures how the rollout count scales with the time
// budget. Both sides share a config so games stay balanced.
func RunThroughputExperiment() {
	configs := []metrics.AgentConfig{
		{ID: 1, Exploration: math.Sqrt2, Budget: 10 * time.Millisecond},
		{ID: 2, Exploration: math.Sqrt2, Budget: 25 * time.Millisecond},
		{ID: 3, Exploration: math.Sqrt2, Budget: 50 * time.Millisecond},
		{ID: 4, Exploration: math.Sqrt2, Budget: 100 * time.Millisecond},
		{ID: 5, Exploration: math.Sqrt2, Budget: 250 * time.Millisecond},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	runExperiment("throughput", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			// Alternate the starting agent to cancel the first-move advantage
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			winner, gameMetric, moveMetrics := runGame(first, second)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, NumGames, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored experiment records")
}

// runGame executes a single game between two agent configs and returns the
// outcome.
func runGame(config1, config2 metrics.AgentConfig) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(createAgent(config1), createAgent(config2))
	return e.Run()
}

func createAgent(config metrics.AgentConfig) engine.Agent {
	mcts := searcher.NewMCTS(game.NewState(), searcher.WithExploration(config.Exploration))
	return engine.NewMCTSAgent(mcts, config.Budget)
}
