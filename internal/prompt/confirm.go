package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when a question needs a terminal but stdin is not one.
var ErrNotInteractive = errors.New("non-interactive stdin")

// Confirmer asks questions on a line-oriented terminal. Commands and answers
// share one buffered reader, so a Confirmer must not be copied after first use.
type Confirmer struct {
	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool

	reader *bufio.Reader
}

func DefaultConfirmer() *Confirmer {
	return &Confirmer{
		In:  os.Stdin,
		Out: os.Stdout,
		IsInteractive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func (c *Confirmer) interactive() bool {
	return c.IsInteractive != nil && c.IsInteractive()
}

func (c *Confirmer) printf(format string, args ...any) {
	if c.Out != nil {
		fmt.Fprintf(c.Out, format, args...)
	}
}

// Line prints prompt and reads one line without its line ending. It returns
// io.EOF once the input is exhausted.
func (c *Confirmer) Line(prompt string) (string, error) {
	if prompt != "" {
		c.printf("%s", prompt)
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choose asks question until the answer matches one of choices, either in
// full or by its first letter.
func (c *Confirmer) Choose(question string, choices ...string) (string, error) {
	if !c.interactive() {
		return "", ErrNotInteractive
	}
	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = "[" + choice[:1] + "]" + choice[1:]
	}
	for {
		answer, err := c.Line(fmt.Sprintf("%s (%s): ", question, strings.Join(labels, "/")))
		if err != nil {
			return "", err
		}
		if choice, ok := matchChoice(answer, choices); ok {
			return choice, nil
		}
		c.printf("Please answer %s.\n", strings.Join(choices, ", "))
	}
}

func matchChoice(answer string, choices []string) (string, bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return "", false
	}
	for _, choice := range choices {
		if answer == choice || answer == choice[:1] {
			return choice, true
		}
	}
	return "", false
}

func (c *Confirmer) ConfirmOverwrite(path string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !c.interactive() {
		return false, fmt.Errorf("%w: use -y to overwrite existing files", ErrNotInteractive)
	}
	response, err := c.Line(fmt.Sprintf("Warning: %s already exists. Overwrite? (y/n): ", path))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y", nil
}
