// Package provision prepares a lesson's working copy and removes it again.
//
// Provision fetches the lesson repository and runs its setup commands;
// Teardown removes the working copy and runs its cleanup commands. Both run
// every shell command with an explicit directory instead of changing the
// process working directory.
package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/rileyhilliard/learngit/internal/exec"
	"github.com/rileyhilliard/learngit/internal/logger"
	"github.com/rileyhilliard/learngit/internal/ui"
)

// CommandFunc runs one shell command in dir, streaming its output.
// Matches exec.ExecuteLocal.
type CommandFunc func(cmd, dir string, stdout, stderr io.Writer) (int, error)

// Provisioner fetches and removes lesson working copies.
type Provisioner struct {
	// BaseDir is where relative lesson destinations and hook commands resolve.
	BaseDir string
	Fetcher Fetcher
	Out     io.Writer
	Run     CommandFunc
	Log     logger.Logger
}

// New creates a Provisioner rooted at baseDir.
func New(baseDir string, fetcher Fetcher, out io.Writer) *Provisioner {
	return &Provisioner{
		BaseDir: baseDir,
		Fetcher: fetcher,
		Out:     out,
		Run:     exec.ExecuteLocal,
		Log:     logger.NewEnvLogger("[provision]"),
	}
}

// Destination returns the absolute working-copy path for lesson.
func (p *Provisioner) Destination(lesson config.Lesson) string {
	return config.ResolvePath(p.BaseDir, lesson.To)
}

// Provision fetches the lesson into its destination, then runs the setup
// commands in order. If a setup command fails the fetched copy is removed.
// Returns the destination path.
func (p *Provisioner) Provision(ctx context.Context, lesson config.Lesson) (string, error) {
	dest := p.Destination(lesson)
	if err := p.checkDestination(dest); err != nil {
		return "", err
	}

	spinner := ui.NewSpinnerTo(p.out(), fmt.Sprintf("Loading activity %q", lesson.Title))
	if p.streamsProgress() {
		// Redrawing the spinner line would garble the fetcher's output.
		spinner.SetAnimated(false)
	}
	spinner.Start()
	if err := p.Fetcher.Fetch(ctx, lesson.URL, dest); err != nil {
		spinner.Fail()
		return "", err
	}
	spinner.Success()
	p.log().Debug("fetched %s into %s", lesson.URL, dest)

	for _, cmd := range lesson.SetupCommands {
		if err := p.runHook(cmd); err != nil {
			if rmErr := os.RemoveAll(dest); rmErr != nil {
				p.log().Warn("couldn't remove %s after failed setup: %v", dest, rmErr)
			}
			return "", errors.WrapWithCode(err, errors.ErrProvision,
				fmt.Sprintf("Setup for %q failed", lesson.Title),
				"Check the lesson's setup_commands; the activity was not started.")
		}
	}

	return dest, nil
}

// Teardown restores the process working directory to originalCwd if it
// moved, removes the lesson's working copy and runs the cleanup commands.
// Every step is attempted; failures are joined into the returned error.
func (p *Provisioner) Teardown(lesson config.Lesson, originalCwd string) error {
	var errs []error

	if originalCwd != "" {
		if cwd, err := os.Getwd(); err != nil || cwd != originalCwd {
			if err := os.Chdir(originalCwd); err != nil {
				errs = append(errs, errors.WrapWithCode(err, errors.ErrProvision,
					"Couldn't return to "+originalCwd, ""))
			}
		}
	}

	dest := p.Destination(lesson)
	if err := p.checkDestination(dest); err != nil {
		errs = append(errs, err)
	} else if err := os.RemoveAll(dest); err != nil {
		errs = append(errs, errors.WrapWithCode(err, errors.ErrProvision,
			"Couldn't remove lesson files at "+dest,
			"Remove the directory by hand."))
	}

	for _, cmd := range lesson.CleanupCommands {
		if err := p.runHook(cmd); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// runHook runs one setup or cleanup command in BaseDir.
func (p *Provisioner) runHook(cmd string) error {
	p.log().Debug("running hook %q in %s", cmd, p.BaseDir)
	run := p.Run
	if run == nil {
		run = exec.ExecuteLocal
	}
	code, err := run(cmd, p.BaseDir, p.out(), p.out())
	if err != nil {
		return err
	}
	return exec.HandleHookError(cmd, code)
}

// checkDestination refuses destinations that would take BaseDir (or one of
// its parents) down with them on removal.
func (p *Provisioner) checkDestination(dest string) error {
	base := filepath.Clean(p.BaseDir)
	rel, err := filepath.Rel(dest, base)
	if err == nil && !isOutside(rel) {
		return errors.New(errors.ErrProvision,
			fmt.Sprintf("Lesson destination %s contains the directory learngit runs from", dest),
			"Point the lesson's 'to' at a subdirectory, e.g. \"lessons/intro\".")
	}
	return nil
}

func (p *Provisioner) streamsProgress() bool {
	pw, ok := p.Fetcher.(progressWriter)
	return ok && pw.WritesProgress()
}

// isOutside reports whether a relative path climbs out of its root. A name
// that merely starts with dots, like "..lessons", stays inside.
func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (p *Provisioner) out() io.Writer {
	if p.Out == nil {
		return io.Discard
	}
	return p.Out
}

func (p *Provisioner) log() logger.Logger {
	if p.Log == nil {
		return logger.Noop()
	}
	return p.Log
}
