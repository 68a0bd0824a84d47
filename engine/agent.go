package engine

import (
	"time"

	"connectfour/game"
	"connectfour/searcher"

	"golang.org/x/exp/rand"
)

// Agent picks moves for one side. Observe must be called for every committed
// move, the agent's own included, so agents that carry state between turns
// (the MCTS tree root) stay in sync with the authoritative game.
type Agent interface {
	FindMove(state *game.State) (int, searcher.SearchStats)
	Observe(col int)
}

type mctsAgent struct {
	mcts   *searcher.MCTS
	budget time.Duration
}

// NewMCTSAgent returns an agent that searches for the given budget per move.
func NewMCTSAgent(mcts *searcher.MCTS, budget time.Duration) Agent {
	return &mctsAgent{mcts: mcts, budget: budget}
}

func (a *mctsAgent) FindMove(state *game.State) (int, searcher.SearchStats) {
	a.mcts.RunSearch(a.budget)
	return a.mcts.DetermineBestMove(), a.mcts.Statistics()
}

func (a *mctsAgent) Observe(col int) {
	a.mcts.PerformMove(col)
}

type randomAgent struct{}

// NewRandomAgent returns a uniformly random baseline agent.
func NewRandomAgent() Agent {
	return randomAgent{}
}

func (randomAgent) FindMove(state *game.State) (int, searcher.SearchStats) {
	moves := state.LegalMoves()
	return moves[rand.Intn(len(moves))], searcher.SearchStats{}
}

func (randomAgent) Observe(col int) {}
