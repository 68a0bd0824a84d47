package searcher

import (
	"testing"
	"time"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

// wonState returns a terminal position: player one has four in a row.
func wonState(t *testing.T) *game.State {
	t.Helper()
	s := game.NewState()
	for _, c := range []int{0, 6, 1, 6, 2, 6, 3} {
		s.ApplyMove(c)
	}
	require.True(t, s.IsTerminal())
	return s
}

func TestRunSearch(t *testing.T) {
	t.Run("zero budget still performs one rollout", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		m.RunSearch(0)

		stats := m.Statistics()
		require.GreaterOrEqual(t, stats.Rollouts, int64(1),
			"Search should guarantee progress even without a budget")
		require.Greater(t, stats.MaxDepth, 1, "First iteration should expand the root")
	})

	t.Run("root child visits sum to rollout count", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		m.RunSearch(20 * time.Millisecond)

		sum := 0
		for _, child := range m.root.children {
			sum += child.visits
		}
		stats := m.Statistics()
		require.EqualValues(t, stats.Rollouts, sum,
			"Every iteration should descend through exactly one root child")
		require.EqualValues(t, stats.Rollouts, m.root.visits,
			"Every iteration should credit the root")
	})

	t.Run("does not mutate the caller's state", func(t *testing.T) {
		s := game.NewState()
		m := NewMCTS(s)
		m.RunSearch(10 * time.Millisecond)

		require.Equal(t, game.PlayerOne, s.CurrentPlayer())
		require.Len(t, s.LegalMoves(), game.Cols, "Simulations should only touch scratch copies")
	})

	t.Run("terminal root does not panic", func(t *testing.T) {
		m := NewMCTS(wonState(t))
		m.RunSearch(0)
		require.GreaterOrEqual(t, m.Statistics().Rollouts, int64(1))
	})
}

func TestDetermineBestMove(t *testing.T) {
	t.Run("terminal root yields the sentinel", func(t *testing.T) {
		m := NewMCTS(wonState(t))
		m.RunSearch(0)
		require.Equal(t, NoMove, m.DetermineBestMove())
	})

	t.Run("before any search yields the sentinel", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		require.Equal(t, NoMove, m.DetermineBestMove())
	})

	t.Run("finds the immediate winning move", func(t *testing.T) {
		// Player one threatens at column 3 with three in a row on the
		// bottom; the winning child's rollouts always succeed, so it
		// dominates the visit counts.
		s := game.NewState()
		for _, c := range []int{0, 6, 1, 6, 2, 5} {
			s.ApplyMove(c)
		}
		m := NewMCTS(s)
		m.RunSearch(200 * time.Millisecond)

		require.Equal(t, 3, m.DetermineBestMove(),
			"Search should prefer the move that wins on the spot")
	})

	t.Run("picks the most visited child", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		m.root.expand([]int{0, 1, 2})
		m.root.children[0].visits = 5
		m.root.children[1].visits = 9
		m.root.children[2].visits = 3
		m.root.visits = 17

		require.Equal(t, 1, m.DetermineBestMove())
	})
}

func TestPerformMove(t *testing.T) {
	t.Run("explored move keeps its subtree statistics", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		m.RunSearch(20 * time.Millisecond)

		col := m.DetermineBestMove()
		child := m.root.children[col]
		wantVisits := child.visits

		m.PerformMove(col)

		require.Same(t, child, m.root, "Root should advance to the existing child")
		require.Nil(t, m.root.parent, "New root should drop its back-reference")
		require.Equal(t, wantVisits, m.root.visits, "Subtree statistics should survive the move")
		require.Equal(t, game.PlayerTwo, m.rootState.CurrentPlayer())
	})

	t.Run("unexplored move starts a fresh root", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		m.PerformMove(3)

		require.Zero(t, m.root.visits, "Unexplored move should carry no prior statistics")
		require.Empty(t, m.root.children)
		require.Equal(t, game.PlayerTwo, m.rootState.CurrentPlayer())
	})

	t.Run("keeps the engine playable across a full game", func(t *testing.T) {
		m := NewMCTS(game.NewState())
		s := game.NewState()
		for !s.IsTerminal() {
			m.RunSearch(time.Millisecond)
			col := m.DetermineBestMove()
			require.Contains(t, s.LegalMoves(), col, "Engine should always recommend a legal move")
			s.ApplyMove(col)
			m.PerformMove(col)
		}
		require.Equal(t, NoMove, m.DetermineBestMove())
	})
}

func TestBackup(t *testing.T) {
	t.Run("decisive outcome alternates credit by level", func(t *testing.T) {
		root := newNode(NoMove, nil)
		root.expand([]int{0})
		child := root.children[0]
		child.expand([]int{1})
		leaf := child.children[1]

		// Player two is to move at the leaf and player one won the
		// rollout, so the leaf (reached by player one's move) earns the
		// win and its parent does not.
		backup(leaf, game.PlayerTwo, game.OutcomeOne)

		require.Equal(t, 1, leaf.visits)
		require.Equal(t, Win, leaf.wins)
		require.Equal(t, 1, child.visits)
		require.Equal(t, Loss, child.wins)
		require.Equal(t, 1, root.visits)
		require.Equal(t, Win, root.wins)
	})

	t.Run("outcome equal to the mover credits nothing at the leaf", func(t *testing.T) {
		root := newNode(NoMove, nil)
		root.expand([]int{0})
		leaf := root.children[0]

		backup(leaf, game.PlayerOne, game.OutcomeOne)

		require.Equal(t, Loss, leaf.wins, "The player to move at the leaf won, so the move into it lost")
		require.Equal(t, Win, root.wins)
	})

	t.Run("draw credits nothing at any level", func(t *testing.T) {
		root := newNode(NoMove, nil)
		root.expand([]int{0})
		child := root.children[0]
		child.expand([]int{1})
		leaf := child.children[1]

		backup(leaf, game.PlayerOne, game.OutcomeDraw)

		for _, n := range []*node{leaf, child, root} {
			require.Equal(t, 1, n.visits)
			require.Equal(t, Loss, n.wins)
		}
	})
}
