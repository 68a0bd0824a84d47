package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"connectfour/experiments"
	"connectfour/game"
	"connectfour/meta"
	"connectfour/searcher"
	"connectfour/utils"
)

func main() {
	mode := flag.String("mode", "play", "play, exploration or throughput")
	budget := flag.Duration("budget", meta.SEARCH_BUDGET, "search time per AI move")
	exploration := flag.Float64("exploration", meta.EXPLORATION, "UCT exploration constant")
	flag.Parse()

	switch *mode {
	case "play":
		playInteractive(*budget, *exploration)
	case "exploration":
		experiments.RunExplorationExperiment()
	case "throughput":
		experiments.RunThroughputExperiment()
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

// playInteractive runs a human (player one) against the MCTS engine on the
// terminal. All game logic stays behind the core's public operations.
func playInteractive(budget time.Duration, exploration float64) {
	state := game.NewState()
	mcts := searcher.NewMCTS(state, searcher.WithExploration(exploration))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("Current state:")
		fmt.Print(state)

		col := readMove(scanner, state)
		state.ApplyMove(col)
		mcts.PerformMove(col)
		fmt.Print(state)
		if state.IsTerminal() {
			break
		}

		fmt.Println("AI is thinking...")
		mcts.RunSearch(budget)
		stats := mcts.Statistics()
		fmt.Printf("Statistics: %d rollouts in %v, max depth %d\n",
			stats.Rollouts, stats.Elapsed, stats.MaxDepth)

		move := mcts.DetermineBestMove()
		fmt.Printf("AI chose column %d\n", move)
		state.ApplyMove(move)
		mcts.PerformMove(move)
		if state.IsTerminal() {
			fmt.Print(state)
			break
		}
	}

	switch state.Outcome() {
	case game.OutcomeOne:
		fmt.Println("You won!")
	case game.OutcomeTwo:
		fmt.Println("The AI won!")
	default:
		fmt.Println("Draw!")
	}
}

// readMove prompts until the human enters a legal column.
func readMove(scanner *bufio.Scanner, state *game.State) int {
	for {
		fmt.Print("Enter a column: ")
		if !scanner.Scan() {
			fmt.Println()
			os.Exit(0)
		}
		col, err := strconv.Atoi(scanner.Text())
		if err != nil || !utils.Contains(state.LegalMoves(), col) {
			fmt.Println("Illegal move")
			continue
		}
		return col
	}
}
