package tictactoe

// BoardSize is the number of rows and columns on the board
const BoardSize = 3

// Player identifies one of the two sides
type Player uint8

const (
	// PlayerX always moves first
	PlayerX Player = iota + 1

	// PlayerO moves second
	PlayerO
)

// String returns the mark used for the player on the board
func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Cell is the content of a single square, either empty or occupied by a player
type Cell struct {
	occupant Player
}

// CellEmpty is an unoccupied square
var CellEmpty = Cell{}

// Occupied returns a cell held by the given player
func Occupied(p Player) Cell {
	return Cell{occupant: p}
}

// IsEmpty reports whether nobody has played the cell
func (c Cell) IsEmpty() bool {
	return c.occupant == 0
}

// Occupant returns the player holding the cell; ok is false for an empty cell
func (c Cell) Occupant() (Player, bool) {
	return c.occupant, c.occupant != 0
}

// String renders an empty cell as a space and an occupied one as the player's mark
func (c Cell) String() string {
	if c.IsEmpty() {
		return " "
	}
	return c.occupant.String()
}

// State is the lifecycle stage of a game
type State string

const (
	// StateInProgress means moves are still accepted
	StateInProgress State = "in_progress"

	// StateWon means a player completed a line
	StateWon State = "won"

	// StateDrawn means the board filled up without a winner
	StateDrawn State = "drawn"
)
