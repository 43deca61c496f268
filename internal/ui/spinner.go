package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Spinner shows an animated indicator while a lesson is fetched or set up.
// When the output is not a terminal it prints one line at start and one at
// the end instead of animating.
type Spinner struct {
	mu           sync.Mutex
	label        string
	state        SpinnerState
	frame        int
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	output       func(string)
	animated     bool
	running      bool
	lastRendered string
}

// NewSpinner creates a spinner writing to stdout, animated only on a TTY.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:    label,
		state:    SpinnerPending,
		output:   func(s string) { fmt.Print(s) },
		animated: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewSpinnerTo creates a non-animated spinner writing to w.
func NewSpinnerTo(w io.Writer, label string) *Spinner {
	s := NewSpinner(label)
	s.output = func(str string) { fmt.Fprint(w, str) }
	s.animated = false
	if f, ok := w.(*os.File); ok {
		s.animated = term.IsTerminal(int(f.Fd()))
	}
	return s
}

// SetOutput sets the output function for the spinner.
func (s *Spinner) SetOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = fn
}

// SetAnimated overrides TTY detection.
func (s *Spinner) SetAnimated(animated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animated = animated
}

// Start begins the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	animated := s.animated
	s.mu.Unlock()

	if !animated {
		s.mu.Lock()
		s.output(s.label + "...\n")
		s.mu.Unlock()
		close(s.doneChan)
		return
	}

	s.render()
	go s.animate()
}

// Stop halts the animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and marks it as successful.
func (s *Spinner) Success() {
	s.finish(SpinnerSuccess)
}

// Fail stops the spinner and marks it as failed.
func (s *Spinner) Fail() {
	s.finish(SpinnerFailed)
}

func (s *Spinner) finish(state SpinnerState) {
	s.Stop()
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.renderFinal()
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	colorIndex := (s.frame / 2) % len(GradientColors)
	style := lipgloss.NewStyle().Foreground(GradientColors[colorIndex])
	line := fmt.Sprintf("\r%s %s...", style.Render(spinnerFrames[s.frame]), s.label)

	s.clear()
	s.output(line)
	s.lastRendered = line
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := SymbolPending
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	switch s.state {
	case SpinnerSuccess:
		symbol = SymbolSuccess
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	case SpinnerFailed:
		symbol = SymbolFail
		style = lipgloss.NewStyle().Foreground(ColorError)
	}

	timing := lipgloss.NewStyle().Foreground(ColorMuted).Render(formatDuration(time.Since(s.startTime).Seconds()))

	s.clear()
	s.output(fmt.Sprintf("%s %s %s\n", style.Render(symbol), s.label, timing))
}

// clear wipes the previously rendered animation frame. Caller holds mu.
func (s *Spinner) clear() {
	if s.lastRendered == "" {
		return
	}
	s.output("\r" + strings.Repeat(" ", len([]rune(s.lastRendered))) + "\r")
	s.lastRendered = ""
}
