package cli

import (
	"io"
	"strings"

	"github.com/KirkDiggler/termgames/internal/tictactoe"
	"github.com/muesli/termenv"
)

// styler colours console output, degrading to plain text when the output is
// not a terminal or plain output was requested
type styler struct {
	output *termenv.Output
}

func newStyler(w io.Writer, plain bool) *styler {
	var opts []termenv.OutputOption
	if plain {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &styler{
		output: termenv.NewOutput(w, opts...),
	}
}

func (s *styler) success(text string) string {
	return s.output.String(text).Foreground(termenv.ANSIGreen).Bold().String()
}

func (s *styler) failure(text string) string {
	return s.output.String(text).Foreground(termenv.ANSIRed).Bold().String()
}

func (s *styler) warning(text string) string {
	return s.output.String(text).Foreground(termenv.ANSIYellow).String()
}

func (s *styler) player(p tictactoe.Player) string {
	color := termenv.ANSICyan
	if p == tictactoe.PlayerO {
		color = termenv.ANSIMagenta
	}
	return s.output.String(p.String()).Foreground(color).Bold().String()
}

// renderBoard draws the board like tictactoe.Game.String, colouring the marks
func (s *styler) renderBoard(game *tictactoe.Game) string {
	var b strings.Builder
	for row := 0; row < tictactoe.BoardSize; row++ {
		for col := 0; col < tictactoe.BoardSize; col++ {
			b.WriteByte('[')
			if p, ok := game.Cell(row, col).Occupant(); ok {
				b.WriteString(s.player(p))
			} else {
				b.WriteByte(' ')
			}
			b.WriteByte(']')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
