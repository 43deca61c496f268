package provision

import (
	"context"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/rileyhilliard/learngit/internal/exec"
	"github.com/rileyhilliard/learngit/internal/util"
)

// Fetcher downloads a lesson repository into dest.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// progressWriter is implemented by fetchers that can print their own
// progress while fetching.
type progressWriter interface {
	WritesProgress() bool
}

// GitFetcher clones in-process with go-git, so git needn't be installed
// for the fetch itself.
type GitFetcher struct {
	// Progress receives clone progress. Nil discards it.
	Progress io.Writer
}

// Fetch clones url into dest. go-git removes dest again if the clone fails
// after creating it.
func (f GitFetcher) Fetch(ctx context.Context, url, dest string) error {
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:      url,
		Progress: f.Progress,
	})
	if err != nil {
		if err == git.ErrRepositoryAlreadyExists {
			return errors.WrapWithCode(err, errors.ErrProvision,
				"Lesson directory already holds a repository: "+dest,
				"Remove it or change the lesson's 'to' path, then try again.")
		}
		return errors.WrapWithCode(err, errors.ErrProvision,
			"Couldn't fetch lesson from "+url,
			"Check your network connection and that the lesson url is correct.")
	}
	return nil
}

// WritesProgress reports whether clone progress is being printed.
func (f GitFetcher) WritesProgress() bool {
	return f.Progress != nil
}

// CLIFetcher shells out to `git clone`, for setups relying on git's own
// credential helpers.
type CLIFetcher struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Fetch runs git clone url dest through the shell.
func (f CLIFetcher) Fetch(ctx context.Context, url, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stdout, stderr := f.Stdout, f.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	code, err := exec.ExecuteLocal(util.ShellJoin("git", "clone", url, dest), "", stdout, stderr)
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.New(errors.ErrProvision,
			"git clone failed for "+url,
			"Check the output above, your network connection and the lesson url.")
	}
	return nil
}

// WritesProgress reports whether git's output is being printed.
func (f CLIFetcher) WritesProgress() bool {
	return f.Stdout != nil || f.Stderr != nil
}

// NewFetcher returns the fetcher named in settings.
func NewFetcher(name string, progress io.Writer) Fetcher {
	if name == config.FetcherGitCLI {
		return CLIFetcher{Stdout: progress, Stderr: progress}
	}
	return GitFetcher{Progress: progress}
}
