package game

// Player identifies the owner of a cell and whose turn it is.
type Player int8

const (
	PlayerNone Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return PlayerNone
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	}
	return "none"
}

// Outcome is the result of a finished game.
type Outcome int8

const (
	OutcomeNone Outcome = iota
	OutcomeOne
	OutcomeTwo
	OutcomeDraw
)

// WonBy reports whether the outcome is a win for the given player.
func (o Outcome) WonBy(p Player) bool {
	return (o == OutcomeOne && p == PlayerOne) || (o == OutcomeTwo && p == PlayerTwo)
}

func (o Outcome) String() string {
	switch o {
	case OutcomeOne:
		return "player one"
	case OutcomeTwo:
		return "player two"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}
