package searcher

import (
	"time"

	"connectfour/game"

	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// WithExploration sets the UCT exploration constant. Each engine carries its
// own constant, so engines with different settings can run side by side.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// MCTS maintains a tree of explored move sequences rooted at the current game
// position. Every simulation runs against a scratch copy of the root state;
// the root state itself only advances through PerformMove.
type MCTS struct {
	exploration float64
	rootState   *game.State
	root        *node
	collector   statsCollector
}

// NewMCTS returns an engine rooted at a copy of the given position.
func NewMCTS(state *game.State, options ...Option) *MCTS {
	m := &MCTS{
		exploration: DefaultExploration,
		rootState:   state.Copy(),
		root:        newNode(NoMove, nil),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// RunSearch repeats the select/expand/rollout/backup cycle until the time
// budget elapses. At least one full iteration runs even for a zero or
// negative budget, so the search always makes progress.
func (m *MCTS) RunSearch(budget time.Duration) {
	start := time.Now()
	for {
		m.simulate()
		m.collector.addRollout()
		if time.Since(start) >= budget {
			break
		}
	}
	m.collector.complete(time.Since(start))
}

func (m *MCTS) simulate() {
	nd, state := m.selectNode()
	toMove := state.CurrentPlayer()
	outcome := m.rollout(state)
	backup(nd, toMove, outcome)
}

// selectNode descends from the root by UCT until it reaches a node worth a
// rollout, applying each step's move to a scratch copy of the root state.
// Descent returns immediately at a freshly-unvisited node; a node without
// children is expanded (all legal moves at once) unless the position is over,
// then one random new child is descended into.
func (m *MCTS) selectNode() (*node, *game.State) {
	current := m.root
	state := m.rootState.Copy()

	for len(current.children) > 0 {
		current = bestUCTChild(current, m.exploration)
		state.ApplyMove(current.action)
		if current.visits == 0 {
			return current, state
		}
	}

	if !state.IsTerminal() {
		current.expand(state.LegalMoves())
		current = randomChild(current)
		state.ApplyMove(current.action)
	}
	return current, state
}

// bestUCTChild picks the child maximizing the UCT value, breaking ties
// uniformly at random. Unvisited children score +Inf and so are tried first.
func bestUCTChild(n *node, exploration float64) *node {
	scorer := newUCT(exploration, n.visits)

	best := make([]*node, 0, len(n.children))
	bestValue := 0.0
	for _, child := range n.children {
		value := scorer.evaluate(child.wins, child.visits)
		if len(best) == 0 || value > bestValue {
			best = best[:0]
			bestValue = value
		}
		if value == bestValue {
			best = append(best, child)
		}
	}
	return best[rand.Intn(len(best))]
}

func randomChild(n *node) *node {
	i := rand.Intn(len(n.children))
	for _, child := range n.children {
		if i == 0 {
			return child
		}
		i--
	}
	panic("searcher: node has no children")
}

// rollout plays uniformly random legal moves on the scratch state until the
// game is over.
func (m *MCTS) rollout(state *game.State) game.Outcome {
	for !state.IsTerminal() {
		moves := state.LegalMoves()
		state.ApplyMove(moves[rand.Intn(len(moves))])
	}
	return state.Outcome()
}

// backup credits the rollout outcome from the reached node up to the root.
// A node's wins are counted from the perspective of the player who moved into
// it (the parent's mover), which is whose interests UCT serves when the
// parent compares children. The reward therefore flips at every ancestor
// step; draws credit nothing at any level.
func backup(nd *node, toMove game.Player, outcome game.Outcome) {
	reward := Loss
	if outcome != game.OutcomeDraw && !outcome.WonBy(toMove) {
		reward = Win
	}
	for n := nd; n != nil; n = n.parent {
		n.visits++
		n.wins += reward
		if outcome == game.OutcomeDraw {
			reward = Loss
		} else {
			reward = Win - reward
		}
	}
}

// DetermineBestMove returns the root child with the highest visit count,
// breaking ties uniformly at random. Visit count is the robustness criterion:
// it tracks confidence better than raw win rate. Returns NoMove when the root
// position is already over; asking is a normal query, not a fault.
func (m *MCTS) DetermineBestMove() int {
	if m.rootState.IsTerminal() || len(m.root.children) == 0 {
		return NoMove
	}

	best := make([]int, 0, len(m.root.children))
	bestVisits := -1
	for col, child := range m.root.children {
		if child.visits > bestVisits {
			best = best[:0]
			bestVisits = child.visits
		}
		if child.visits == bestVisits {
			best = append(best, col)
		}
	}
	return best[rand.Intn(len(best))]
}

// PerformMove commits a move and advances the tree root. Callers invoke it
// for every committed move, theirs or the opponent's, to keep the engine in
// sync with the authoritative game. If the move was explored the child
// subtree survives with its statistics; otherwise the tree restarts from a
// fresh zero-visit root.
func (m *MCTS) PerformMove(col int) {
	if child, ok := m.root.children[col]; ok {
		child.parent = nil
		m.root = child
	} else {
		m.root = newNode(NoMove, nil)
	}
	m.rootState.ApplyMove(col)
}

// Statistics reports rollout count, elapsed time of the last run, and the
// current maximum tree depth.
func (m *MCTS) Statistics() SearchStats {
	return m.collector.stats(m.root.depth())
}
