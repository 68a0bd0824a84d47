package game

import (
	"fmt"
	"strings"
)

// Board dimensions and the line length needed to win.
const (
	Rows      = 6
	Cols      = 7
	WinLength = 4
)

// State is the dynamic state of a game: the grid of cell owners, the next
// free row per column, whose turn it is, and the last placed cell. Rows are
// indexed top to bottom, so columns fill from Rows-1 upward.
//
// State is mutated in place by ApplyMove; the searcher runs playouts against
// disposable copies obtained from Copy.
type State struct {
	grid    [Rows][Cols]Player
	heights [Cols]int
	current Player
	lastRow int
	lastCol int
}

// NewState returns an empty board with player one to move.
func NewState() *State {
	s := &State{
		current: PlayerOne,
		lastRow: -1,
		lastCol: -1,
	}
	for c := 0; c < Cols; c++ {
		s.heights[c] = Rows - 1
	}
	return s
}

// Copy returns an independent copy of the state. The grid and heights are
// fixed-size arrays, so a value copy is a deep copy.
func (s *State) Copy() *State {
	c := *s
	return &c
}

// ApplyMove drops the current player's piece into the given column and flips
// the turn. The column must be legal: callers validate against LegalMoves
// first, so an out-of-range or full column is a programming error and panics.
func (s *State) ApplyMove(col int) {
	if col < 0 || col >= Cols {
		panic(fmt.Sprintf("game: move out of range: column %d", col))
	}
	row := s.heights[col]
	if row < 0 {
		panic(fmt.Sprintf("game: move into full column %d", col))
	}
	s.grid[row][col] = s.current
	s.heights[col] = row - 1
	s.lastRow = row
	s.lastCol = col
	s.current = s.current.Opponent()
}

// LegalMoves returns the playable columns in ascending order.
func (s *State) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if s.heights[c] >= 0 {
			moves = append(moves, c)
		}
	}
	return moves
}

// IsTerminal reports whether the game is over: the last move completed a
// winning line, or the board is full.
func (s *State) IsTerminal() bool {
	if s.Winner() != PlayerNone {
		return true
	}
	for c := 0; c < Cols; c++ {
		if s.heights[c] >= 0 {
			return false
		}
	}
	return true
}

// lineDirections are the four axes a winning line can lie on.
var lineDirections = [4][2]int{
	{0, 1},  // Horizontal
	{1, 0},  // Vertical
	{1, 1},  // Diagonal
	{1, -1}, // Anti-diagonal
}

// Winner returns the player who completed a winning line with the last move,
// or PlayerNone. Only lines through the last placed cell are checked: a
// longer line cannot appear anywhere else, which keeps the check O(1) per
// move instead of a full-board scan.
func (s *State) Winner() Player {
	if s.lastRow < 0 {
		return PlayerNone
	}
	owner := s.grid[s.lastRow][s.lastCol]

	for _, dir := range lineDirections {
		count := 1
		// Extend both ways from the last placed cell.
		for _, sign := range [2]int{1, -1} {
			dr, dc := sign*dir[0], sign*dir[1]
			r, c := s.lastRow+dr, s.lastCol+dc
			for r >= 0 && r < Rows && c >= 0 && c < Cols && s.grid[r][c] == owner {
				count++
				r += dr
				c += dc
			}
		}
		if count >= WinLength {
			return owner
		}
	}
	return PlayerNone
}

// Outcome returns the result of a finished game. Calling it on a live
// position is a programming error and panics. A full board that also
// contains a winning line reports the win, not a draw.
func (s *State) Outcome() Outcome {
	switch s.Winner() {
	case PlayerOne:
		return OutcomeOne
	case PlayerTwo:
		return OutcomeTwo
	}
	if len(s.LegalMoves()) > 0 {
		panic("game: outcome queried on a non-terminal state")
	}
	return OutcomeDraw
}

// CurrentPlayer returns the player to move.
func (s *State) CurrentPlayer() Player {
	return s.current
}

// LastMove returns the cell of the most recent placement. ok is false before
// the first move.
func (s *State) LastMove() (row, col int, ok bool) {
	if s.lastRow < 0 {
		return 0, 0, false
	}
	return s.lastRow, s.lastCol, true
}

// Cell returns the owner of the cell at the given position.
func (s *State) Cell(row, col int) Player {
	return s.grid[row][col]
}

// String renders the board for terminal display.
func (s *State) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 4*Cols+2) + "\n")
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			token := ' '
			switch s.grid[r][c] {
			case PlayerOne:
				token = 'X'
			case PlayerTwo:
				token = 'O'
			}
			fmt.Fprintf(&b, "| %c ", token)
		}
		b.WriteString("|\n")
	}
	b.WriteString(strings.Repeat("=", 4*Cols+2) + "\n")
	for c := 0; c < Cols; c++ {
		fmt.Fprintf(&b, "  %d ", c)
	}
	b.WriteString("\n")
	return b.String()
}
