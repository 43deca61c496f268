package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultPrompt is printed before every line the learner types.
const DefaultPrompt = "> "

// MaxLineSize bounds a single input line.
const MaxLineSize = 1 << 20

// Prompt reads learner input one line at a time.
// The menu and every lesson share one Prompt so buffered input isn't lost
// between them.
type Prompt struct {
	scanner *bufio.Scanner
	w       io.Writer
	marker  string
}

// NewPrompt creates a prompt reading from r and printing the marker to w.
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Prompt{
		scanner: scanner,
		w:       w,
		marker:  DefaultPrompt,
	}
}

// ReadLine prints the prompt and returns the next line with surrounding
// whitespace removed. Returns io.EOF when input is exhausted.
func (p *Prompt) ReadLine() (string, error) {
	fmt.Fprint(p.w, p.marker)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
