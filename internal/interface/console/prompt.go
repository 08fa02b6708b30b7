// Package console implements the interactive menu front-end.
// It reads integers and lines from standard input, invokes the application
// layer, and writes human-readable result lines to standard output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrTooManyInvalidInputs is returned when the user exhausts the bounded
// number of attempts for a numeric prompt. The reference implementation
// crashed on invalid numeric input; re-prompting and then abandoning the
// operation is the redesigned behavior.
var ErrTooManyInvalidInputs = errors.New("too many invalid inputs")

// Prompter reads user input line by line with graceful handling of
// non-numeric answers.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

// NewPrompter creates a Prompter with the given attempt bound.
func NewPrompter(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// Line prompts for a free-form line of text and returns it trimmed.
// An io.EOF from the underlying reader is passed through to the caller.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int prompts for an integer, re-prompting on invalid input until the
// attempt bound is exhausted, then returns ErrTooManyInvalidInputs.
func (p *Prompter) Int(label string) (int, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a whole number, got %q.\n", line)
			continue
		}
		return n, nil
	}
	return 0, ErrTooManyInvalidInputs
}
