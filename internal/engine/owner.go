// Package engine implements the Connect Four game-state engine: the grid,
// gravity drops, turn order and win/tie detection.
// It has no UI dependencies so the rules stay pure and testable.
package engine

// Owner identifies who occupies a grid cell.
type Owner uint8

const (
	Empty Owner = iota
	PlayerOne
	PlayerTwo
)

// Valid reports whether o is one of the two players.
func (o Owner) Valid() bool {
	return o == PlayerOne || o == PlayerTwo
}

// Opponent returns the other player. Empty has no opponent.
func (o Owner) Opponent() Owner {
	switch o {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// Number returns 1 or 2 for players and 0 for Empty.
func (o Owner) Number() int {
	switch o {
	case PlayerOne:
		return 1
	case PlayerTwo:
		return 2
	default:
		return 0
	}
}

// String returns a human-readable name for the owner.
func (o Owner) String() string {
	switch o {
	case Empty:
		return "Empty"
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character ASCII mark used in text dumps.
func (o Owner) Symbol() byte {
	switch o {
	case PlayerOne:
		return 'X'
	case PlayerTwo:
		return 'O'
	default:
		return '.'
	}
}
