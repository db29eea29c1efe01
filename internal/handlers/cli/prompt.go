package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter writes prompts and reads one line of input per answer
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ask prints the prompt as is and returns the next trimmed line.
// io.EOF is returned once input is exhausted.
func (p *prompter) ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *prompter) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
