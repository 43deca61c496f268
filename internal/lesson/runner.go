// Package lesson runs one lesson: it reads the learner's commands, decides
// whether each one is progress, and executes the ones it allows.
//
// Every input line is classified in priority order:
//
//	in-app    "!hint", "!history", "!exit"; handled by the tutor itself
//	expected  full match of the step's expected_command or allow_equivalents
//	neutral   read-only inspection such as "ls" or "git status"
//	rejected  anything else; feedback only
//
// Only a successful expected command advances the step index, and it only
// ever advances by one. Every line read is appended to the history,
// whatever its kind.
package lesson

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/rileyhilliard/learngit/internal/exec"
	"github.com/rileyhilliard/learngit/internal/logger"
	"github.com/rileyhilliard/learngit/internal/ui"
	"github.com/rileyhilliard/learngit/internal/util"
)

// Shell executes a learner command in the lesson directory and returns the
// combined output. A non-nil error means the attempt failed; output is still
// returned so it can be shown.
type Shell interface {
	Run(cmd, workDir string) (string, error)
}

// LineReader supplies learner input one trimmed line at a time.
type LineReader interface {
	ReadLine() (string, error)
}

// Outcome is how a run ended.
type Outcome int

const (
	// OutcomeCompleted: every step passed, or a step marked end was matched.
	OutcomeCompleted Outcome = iota
	// OutcomeExited: the learner typed the exit command. The caller should
	// tear the lesson down and stop the program.
	OutcomeExited
	// OutcomeAborted: input ran out or the context was cancelled.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExited:
		return "exited"
	default:
		return "aborted"
	}
}

// Result summarizes a finished run.
type Result struct {
	Outcome   Outcome
	StepIndex int
	Steps     int // number of steps in the plan
	History   []string
	Started   time.Time
	Finished  time.Time
}

// Options configures a Runner. Zero values fall back to the defaults.
type Options struct {
	Sentinel        string
	NeutralPrefixes []string
	Shell           Shell
	Input           LineReader
	Output          io.Writer
	Logger          logger.Logger
}

// Runner drives one lesson. It is not safe for concurrent use.
type Runner struct {
	title      string
	dir        string
	steps      []Step
	classifier Classifier
	shell      Shell
	in         LineReader
	out        *ui.Feedback
	log        logger.Logger

	stepIndex int
	history   []string
}

// Load reads the plan file from the lesson directory and builds a Runner.
func Load(lesson config.Lesson, dir, planFile string, opts Options) (*Runner, error) {
	plan, err := config.LoadPlan(filepath.Join(dir, planFile))
	if err != nil {
		return nil, err
	}
	return NewRunner(lesson.Title, dir, plan, opts)
}

// NewRunner builds a Runner for plan, executing commands in dir.
func NewRunner(title, dir string, plan []config.Step, opts Options) (*Runner, error) {
	if err := config.ValidatePlan(plan); err != nil {
		return nil, err
	}
	steps, err := CompileSteps(plan)
	if err != nil {
		return nil, err
	}
	if opts.Input == nil {
		return nil, errors.New(errors.ErrLesson,
			"Lesson runner has no input",
			"This is an internal error - pass Options.Input")
	}

	r := &Runner{
		title: title,
		dir:   dir,
		steps: steps,
		classifier: Classifier{
			Sentinel:        opts.Sentinel,
			NeutralPrefixes: opts.NeutralPrefixes,
		},
		shell: opts.Shell,
		in:    opts.Input,
		log:   opts.Logger,
	}
	if r.classifier.Sentinel == "" {
		r.classifier.Sentinel = "!"
	}
	if r.classifier.NeutralPrefixes == nil {
		r.classifier.NeutralPrefixes = config.DefaultNeutralPrefixes
	}
	if r.shell == nil {
		r.shell = exec.LocalShell{}
	}
	if r.log == nil {
		r.log = logger.Noop()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	r.out = ui.NewFeedback(opts.Output)
	return r, nil
}

// StepIndex returns the 0-based index of the current step.
func (r *Runner) StepIndex() int {
	return r.stepIndex
}

// History returns a copy of every line read so far.
func (r *Runner) History() []string {
	return append([]string(nil), r.history...)
}

// Steps returns the number of steps in the plan.
func (r *Runner) Steps() int {
	return len(r.steps)
}

// Run teaches the lesson until it completes, the learner exits, input ends
// or ctx is cancelled. The returned error is only set for input failures
// other than EOF.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	started := time.Now()
	finish := func(o Outcome, err error) (Result, error) {
		r.log.Debug("lesson %q ended: %s at step %d", r.title, o, r.stepIndex)
		return Result{
			Outcome:   o,
			StepIndex: r.stepIndex,
			Steps:     len(r.steps),
			History:   r.History(),
			Started:   started,
			Finished:  time.Now(),
		}, err
	}

	fmt.Fprint(r.out.Writer(), ui.RenderLessonTitle(r.title))
	r.out.Muted(fmt.Sprintf("%d %s. Type %shint if you get stuck.",
		len(r.steps), util.Pluralize(len(r.steps), "step", "steps"), r.classifier.Sentinel))

	for r.stepIndex < len(r.steps) {
		step := r.steps[r.stepIndex]
		r.out.StepHeader(r.stepIndex+1, step.Explanation)

		for advanced := false; !advanced; {
			if ctx.Err() != nil {
				return finish(OutcomeAborted, nil)
			}

			input, err := r.in.ReadLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return finish(OutcomeAborted, nil)
				}
				return finish(OutcomeAborted, errors.WrapWithCode(err, errors.ErrLesson,
					"Couldn't read your input", ""))
			}
			// An interrupt while the read was blocked discards the line.
			if ctx.Err() != nil {
				return finish(OutcomeAborted, nil)
			}
			r.history = append(r.history, input)

			kind := r.classifier.Classify(input, step)
			r.log.Debug("step %d input %q classified %s", r.stepIndex+1, input, kind)

			switch kind {
			case KindInApp:
				if r.handleAppCommand(input, step) {
					r.out.Println("Exiting.")
					return finish(OutcomeExited, nil)
				}
			case KindExpected:
				if step.End {
					return finish(OutcomeCompleted, nil)
				}
				if r.runShell(input) {
					r.out.Success("Correct!")
					r.stepIndex++
					advanced = true
				}
			case KindNeutral:
				r.runShell(input)
			default:
				r.out.Warn("That's not the command we're looking for.")
				r.out.Muted(fmt.Sprintf("Type %shint if you're stuck.", r.classifier.Sentinel))
			}
		}
	}

	r.out.Println("")
	r.out.Success("Lesson complete! Great job.")
	return finish(OutcomeCompleted, nil)
}

// handleAppCommand runs a tutor command and reports whether the learner
// asked to exit.
func (r *Runner) handleAppCommand(input string, step Step) (exit bool) {
	switch input[len(r.classifier.Sentinel):] {
	case "hint":
		r.out.Hint(step.HintText())
	case "history":
		r.out.Println("Command History:")
		for _, cmd := range r.history {
			r.out.Println("  " + cmd)
		}
	case "exit":
		return true
	default:
		r.out.Fail("Unknown application command.")
	}
	return false
}

// runShell executes input in the lesson directory and prints the result.
func (r *Runner) runShell(input string) bool {
	output, err := r.shell.Run(input, r.dir)
	if err != nil {
		r.log.Debug("command %q failed: %v", input, err)
		var cmdErr *exec.CommandError
		if !errors.As(err, &cmdErr) && output == "" {
			output = err.Error()
		}
		r.out.CommandError(output)
		if cmdErr != nil {
			if name, ok := cmdErr.NotFound(); ok {
				r.out.Muted(fmt.Sprintf("'%s' isn't installed or isn't on your PATH.", name))
			}
		}
		return false
	}
	r.out.Output(output)
	return true
}
