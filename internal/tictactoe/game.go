package tictactoe

import "strings"

// lines lists every winning line as (row, col) triples. Row i is checked
// before column i, diagonals last.
var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}}, {{0, 0}, {1, 0}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}}, {{0, 1}, {1, 1}, {2, 1}},
	{{2, 0}, {2, 1}, {2, 2}}, {{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}}, {{0, 2}, {1, 1}, {2, 0}},
}

// Game holds the board and whose turn it is
type Game struct {
	board   [BoardSize][BoardSize]Cell
	current Player
}

// New creates an empty board with X to move
func New() *Game {
	return &Game{current: PlayerX}
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() Player {
	return g.current
}

// Cell returns the content of the square at the zero-based coordinates.
// Out of range coordinates read as empty.
func (g *Game) Cell(row, col int) Cell {
	if !inBounds(row, col) {
		return CellEmpty
	}
	return g.board[row][col]
}

// ApplyMove marks the square for the current player and passes the turn.
// A rejected move leaves the board and the current player untouched.
func (g *Game) ApplyMove(row, col int) error {
	if !inBounds(row, col) {
		return ErrOutOfBounds
	}
	if g.State() != StateInProgress {
		return ErrGameOver
	}
	if !g.board[row][col].IsEmpty() {
		return ErrCellOccupied
	}

	g.board[row][col] = Occupied(g.current)
	g.current = g.current.Opponent()
	return nil
}

// Winner returns the player owning a complete row, column or diagonal
func (g *Game) Winner() (Player, bool) {
	for _, line := range lines {
		first := g.board[line[0][0]][line[0][1]]
		if first.IsEmpty() {
			continue
		}
		if first == g.board[line[1][0]][line[1][1]] && first == g.board[line[2][0]][line[2][1]] {
			return first.occupant, true
		}
	}
	return 0, false
}

// IsFull reports whether every square is occupied
func (g *Game) IsFull() bool {
	for _, row := range g.board {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// IsDraw is true when the board is full and nobody completed a line
func (g *Game) IsDraw() bool {
	if _, won := g.Winner(); won {
		return false
	}
	return g.IsFull()
}

// State derives the lifecycle stage from the board
func (g *Game) State() State {
	if _, won := g.Winner(); won {
		return StateWon
	}
	if g.IsFull() {
		return StateDrawn
	}
	return StateInProgress
}

// String renders the board with every cell bracketed, one row per line
func (g *Game) String() string {
	var b strings.Builder
	for _, row := range g.board {
		for _, cell := range row {
			b.WriteByte('[')
			b.WriteString(cell.String())
			b.WriteByte(']')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
