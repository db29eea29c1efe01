package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GameTestSuite struct {
	suite.Suite
	game *Game
}

func (s *GameTestSuite) SetupTest() {
	s.game = New()
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

// play applies zero-based moves and fails the test on any rejection
func (s *GameTestSuite) play(moves ...[2]int) {
	for _, mv := range moves {
		s.Require().NoError(s.game.ApplyMove(mv[0], mv[1]))
	}
}

// fill sets the board directly, row-major, using "X", "O" or " "
func (s *GameTestSuite) fill(marks ...string) {
	s.Require().Len(marks, BoardSize*BoardSize)
	for i, mark := range marks {
		switch mark {
		case "X":
			s.game.board[i/BoardSize][i%BoardSize] = Occupied(PlayerX)
		case "O":
			s.game.board[i/BoardSize][i%BoardSize] = Occupied(PlayerO)
		default:
			s.game.board[i/BoardSize][i%BoardSize] = CellEmpty
		}
	}
}

func (s *GameTestSuite) TestNewGame() {
	s.Equal(PlayerX, s.game.CurrentPlayer())
	s.Equal(StateInProgress, s.game.State())
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s.True(s.game.Cell(row, col).IsEmpty())
		}
	}
	_, won := s.game.Winner()
	s.False(won)
	s.False(s.game.IsDraw())
}

func (s *GameTestSuite) TestApplyMove_AlternatesPlayers() {
	expected := []Player{PlayerO, PlayerX, PlayerO, PlayerX}
	moves := [][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 2}}

	for i, mv := range moves {
		mover := s.game.CurrentPlayer()
		s.Require().NoError(s.game.ApplyMove(mv[0], mv[1]))

		occupant, ok := s.game.Cell(mv[0], mv[1]).Occupant()
		s.True(ok)
		s.Equal(mover, occupant)
		s.Equal(expected[i], s.game.CurrentPlayer())
	}
}

func (s *GameTestSuite) TestApplyMove_OutOfBounds() {
	for _, mv := range [][2]int{{3, 0}, {0, 3}, {-1, 1}, {1, -1}, {5, 5}} {
		err := s.game.ApplyMove(mv[0], mv[1])
		s.ErrorIs(err, ErrOutOfBounds)
	}
	s.Equal(PlayerX, s.game.CurrentPlayer())
	s.Equal("[ ][ ][ ]\n[ ][ ][ ]\n[ ][ ][ ]\n", s.game.String())
}

func (s *GameTestSuite) TestApplyMove_CellOccupied() {
	s.play([2]int{1, 1})
	before := s.game.String()

	err := s.game.ApplyMove(1, 1)

	s.ErrorIs(err, ErrCellOccupied)
	s.Equal(PlayerO, s.game.CurrentPlayer())
	s.Equal(before, s.game.String())
}

func (s *GameTestSuite) TestApplyMove_RejectedAfterWin() {
	// X takes the top row
	s.play([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{0, 2})
	s.Require().Equal(StateWon, s.game.State())

	err := s.game.ApplyMove(2, 2)

	s.ErrorIs(err, ErrGameOver)
	s.True(s.game.Cell(2, 2).IsEmpty())
	s.Equal(PlayerO, s.game.CurrentPlayer())
}

func (s *GameTestSuite) TestWinner_Rows() {
	for row := 0; row < BoardSize; row++ {
		s.game = New()
		marks := []string{" ", " ", " ", " ", " ", " ", " ", " ", " "}
		for col := 0; col < BoardSize; col++ {
			marks[row*BoardSize+col] = "O"
		}
		s.fill(marks...)

		winner, ok := s.game.Winner()
		s.True(ok, "row %d", row)
		s.Equal(PlayerO, winner)
	}
}

func (s *GameTestSuite) TestWinner_Columns() {
	for col := 0; col < BoardSize; col++ {
		s.game = New()
		marks := []string{" ", " ", " ", " ", " ", " ", " ", " ", " "}
		for row := 0; row < BoardSize; row++ {
			marks[row*BoardSize+col] = "X"
		}
		s.fill(marks...)

		winner, ok := s.game.Winner()
		s.True(ok, "column %d", col)
		s.Equal(PlayerX, winner)
	}
}

func (s *GameTestSuite) TestWinner_Diagonals() {
	s.fill(
		"X", "O", " ",
		"O", "X", " ",
		" ", " ", "X",
	)
	winner, ok := s.game.Winner()
	s.True(ok)
	s.Equal(PlayerX, winner)

	s.fill(
		"X", "X", "O",
		" ", "O", " ",
		"O", " ", "X",
	)
	winner, ok = s.game.Winner()
	s.True(ok)
	s.Equal(PlayerO, winner)
}

func (s *GameTestSuite) TestWinner_PartialBoard() {
	s.fill(
		"X", "O", "X",
		" ", "O", " ",
		" ", "X", " ",
	)
	_, ok := s.game.Winner()
	s.False(ok)
	s.Equal(StateInProgress, s.game.State())
}

func (s *GameTestSuite) TestIsDraw_FullBoardWithoutWinner() {
	s.fill(
		"X", "O", "X",
		"O", "X", "O",
		"O", "X", "O",
	)
	_, ok := s.game.Winner()
	s.False(ok)
	s.True(s.game.IsDraw())
	s.Equal(StateDrawn, s.game.State())
}

func (s *GameTestSuite) TestIsDraw_FullBoardWithWinner() {
	s.fill(
		"X", "X", "X",
		"O", "O", "X",
		"X", "O", "O",
	)
	s.False(s.game.IsDraw())
	s.Equal(StateWon, s.game.State())
}

func (s *GameTestSuite) TestPlayedDraw() {
	s.play(
		[2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2},
		[2]int{1, 1}, [2]int{1, 0}, [2]int{1, 2},
		[2]int{2, 1}, [2]int{2, 0}, [2]int{2, 2},
	)
	s.True(s.game.IsDraw())
	s.ErrorIs(s.game.ApplyMove(0, 0), ErrGameOver)
}

func (s *GameTestSuite) TestString() {
	s.play([2]int{0, 0}, [2]int{1, 1})
	s.Equal("[X][ ][ ]\n[ ][O][ ]\n[ ][ ][ ]\n", s.game.String())
}
