// Package tutor is the top-level loop of learngit: it shows the lesson menu,
// prepares the chosen lesson, hands it to a lesson.Runner and cleans up
// afterwards.
package tutor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/rileyhilliard/learngit/internal/lesson"
	"github.com/rileyhilliard/learngit/internal/logger"
	"github.com/rileyhilliard/learngit/internal/transcript"
	"github.com/rileyhilliard/learngit/internal/ui"
)

// QuitToken ends the program from the menu. Matched case-insensitively.
const QuitToken = "q"

// Selection errors. SelectLesson wraps them, so match with errors.Is.
var (
	ErrInvalidSelection = errors.New(errors.ErrSelect, "selection is not a number", "")
	ErrOutOfRange       = errors.New(errors.ErrSelect, "selection is out of range", "")
)

// Provisioner prepares and removes lesson working copies.
// Implemented by *provision.Provisioner.
type Provisioner interface {
	Provision(ctx context.Context, l config.Lesson) (string, error)
	Teardown(l config.Lesson, originalCwd string) error
}

// PickFunc shows an interactive picker and returns the equivalent menu input.
type PickFunc func(items []ui.LessonItem) (string, error)

// Selection is a parsed menu choice.
type Selection struct {
	Quit bool
	// Index is the 0-based catalog index. Unset when Quit is true.
	Index int
}

// Options configures a Tutor.
type Options struct {
	Settings    *config.Settings
	Provisioner Provisioner
	// Shell runs learner commands. Nil uses the local shell.
	Shell lesson.Shell
	// Input is shared by the menu and every lesson.
	Input  io.Reader
	Output io.Writer
	// Picker replaces the typed menu when set.
	Picker      PickFunc
	Transcripts *transcript.Writer
	Version     string
	Logger      logger.Logger
}

// Tutor runs the menu loop over a lesson catalog.
type Tutor struct {
	lessons     []config.Lesson
	settings    *config.Settings
	prov        Provisioner
	shell       lesson.Shell
	prompt      *ui.Prompt
	w           io.Writer
	out         *ui.Feedback
	picker      PickFunc
	transcripts *transcript.Writer
	version     string
	log         logger.Logger
}

// New creates a Tutor for lessons.
func New(lessons []config.Lesson, opts Options) (*Tutor, error) {
	if len(lessons) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No lessons to choose from",
			"Add at least one lesson to the catalog")
	}
	if opts.Provisioner == nil {
		return nil, errors.New(errors.ErrConfig,
			"Tutor has no provisioner",
			"This is an internal error - pass Options.Provisioner")
	}

	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	w := opts.Output
	if w == nil {
		w = io.Discard
	}
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	return &Tutor{
		lessons:     lessons,
		settings:    settings,
		prov:        opts.Provisioner,
		shell:       opts.Shell,
		prompt:      ui.NewPrompt(in, w),
		w:           w,
		out:         ui.NewFeedback(w),
		picker:      opts.Picker,
		transcripts: opts.Transcripts,
		version:     opts.Version,
		log:         log,
	}, nil
}

// ListLessons renders the menu: one "N. title - difficulty" line per
// lesson, numbered from 1, followed by "[Q]. Quit".
func (t *Tutor) ListLessons() string {
	var b strings.Builder
	for i, l := range t.lessons {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, l.Title, l.Difficulty)
	}
	b.WriteString("[Q]. Quit\n")
	return b.String()
}

// SelectLesson parses one menu input.
func (t *Tutor) SelectLesson(input string) (Selection, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, QuitToken) {
		return Selection{Quit: true}, nil
	}
	if !isNumeric(input) {
		return Selection{}, errors.WrapWithCode(ErrInvalidSelection, errors.ErrSelect,
			"Please enter the activity number.", "")
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(t.lessons) {
		return Selection{}, errors.WrapWithCode(ErrOutOfRange, errors.ErrSelect,
			fmt.Sprintf("That activity is out of range. Please enter a number between [1 - %d] to select the corresponding activity.", len(t.lessons)),
			"")
	}
	return Selection{Index: n - 1}, nil
}

// Run shows the menu until the learner quits, exits from inside a lesson,
// input ends or ctx is cancelled. Lesson failures are reported and the menu
// is shown again; only input errors are returned.
func (t *Tutor) Run(ctx context.Context) error {
	fmt.Fprint(t.w, ui.RenderHeader(ui.HeaderInfo{
		Version: t.version,
		Tagline: "Welcome to learngit!",
	}))

	for {
		if ctx.Err() != nil {
			t.out.Println("Quitting")
			return nil
		}

		input, err := t.readSelection()
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.out.Println("Quitting")
				return nil
			}
			return errors.WrapWithCode(err, errors.ErrSelect, "Couldn't read your selection", "")
		}
		if ctx.Err() != nil {
			t.out.Println("Quitting")
			return nil
		}

		sel, err := t.SelectLesson(input)
		if err != nil {
			t.reportSelection(err)
			continue
		}
		if sel.Quit {
			t.out.Println("Quitting")
			return nil
		}

		stop, err := t.runLesson(ctx, t.lessons[sel.Index])
		if err != nil || stop {
			return err
		}
	}
}

func (t *Tutor) readSelection() (string, error) {
	if t.picker != nil {
		items := make([]ui.LessonItem, len(t.lessons))
		for i, l := range t.lessons {
			items[i] = ui.LessonItem{Title: l.Title, Difficulty: l.Difficulty}
		}
		return t.picker(items)
	}

	fmt.Fprintln(t.w, "\nWhich activity would you like to do?")
	fmt.Fprint(t.w, t.ListLessons())
	return t.prompt.ReadLine()
}

func (t *Tutor) reportSelection(err error) {
	var selErr *errors.Error
	if errors.As(err, &selErr) {
		t.out.Warn(selErr.Message)
		return
	}
	t.out.Warn(err.Error())
}

// runLesson provisions l, runs it and tears it down. stop reports whether
// the whole program should end.
func (t *Tutor) runLesson(ctx context.Context, l config.Lesson) (stop bool, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		t.log.Warn("couldn't record working directory: %v", err)
		cwd = ""
	}

	dest, err := t.prov.Provision(ctx, l)
	if err != nil {
		fmt.Fprint(t.w, err.Error())
		t.out.Fail(fmt.Sprintf("Error loading activity %q", l.Title))
		return false, nil
	}
	t.log.Debug("lesson %q provisioned at %s", l.Title, dest)

	runner, err := lesson.Load(l, dest, t.settings.PlanFile, lesson.Options{
		Sentinel:        t.settings.Sentinel,
		NeutralPrefixes: t.settings.NeutralPrefixes,
		Shell:           t.shell,
		Input:           t.prompt,
		Output:          t.w,
		Logger:          t.log,
	})
	if err != nil {
		fmt.Fprint(t.w, err.Error())
		t.teardown(l, cwd)
		return false, nil
	}

	res, runErr := runner.Run(ctx)
	t.teardown(l, cwd)
	t.saveTranscript(l, res)
	t.out.Divider()
	fmt.Fprint(t.w, ui.RenderLessonSummary(ui.LessonSummary{
		Title:     l.Title,
		Outcome:   res.Outcome.String(),
		StepsDone: res.StepIndex,
		Steps:     res.Steps,
		Commands:  len(res.History),
		Duration:  res.Finished.Sub(res.Started),
	}))

	if runErr != nil {
		return true, runErr
	}
	switch res.Outcome {
	case lesson.OutcomeExited, lesson.OutcomeAborted:
		return true, nil
	}
	return false, nil
}

func (t *Tutor) teardown(l config.Lesson, cwd string) {
	if err := t.prov.Teardown(l, cwd); err != nil {
		t.out.Warn("Cleanup didn't finish:")
		fmt.Fprint(t.w, err.Error())
	}
}

func (t *Tutor) saveTranscript(l config.Lesson, res lesson.Result) {
	if t.transcripts == nil {
		return
	}
	dir, err := t.transcripts.Write(l, res)
	if err != nil {
		t.log.Warn("transcript not saved: %v", err)
		return
	}
	t.log.Debug("transcript saved to %s", dir)
	if err := transcript.Prune(t.transcripts.Dir(), t.settings.Transcripts.Keep); err != nil {
		t.log.Warn("couldn't prune old transcripts: %v", err)
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
