package cli

import (
	"io"
	"os"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/rileyhilliard/learngit/internal/logger"
	"github.com/rileyhilliard/learngit/internal/provision"
	"github.com/rileyhilliard/learngit/internal/transcript"
	"github.com/rileyhilliard/learngit/internal/tutor"
	"github.com/rileyhilliard/learngit/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runTutor loads settings and the catalog, then runs the menu loop until
// the learner quits.
func runTutor(cmd *cobra.Command, flags *GlobalFlags) error {
	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}

	lessons, err := config.LoadCatalog(settings.Catalog)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	out := cmd.OutOrStdout()
	var progress io.Writer
	if flags.Verbose {
		progress = out
	}
	prov := provision.New(cwd, provision.NewFetcher(settings.Fetcher, progress), out)

	opts := tutor.Options{
		Settings:    settings,
		Provisioner: prov,
		Input:       cmd.InOrStdin(),
		Output:      out,
		Version:     formatVersion(GetVersion()),
		Logger:      logger.Default(),
	}

	if flags.Pick {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New(errors.ErrConfig,
				"--pick needs an interactive terminal",
				"Run without --pick to type the activity number instead.")
		}
		opts.Picker = ui.PickLesson
	}

	if settings.Transcripts.Enabled {
		w, err := transcript.NewWriter(settings.Transcripts.Dir)
		if err != nil {
			return err
		}
		opts.Transcripts = w
	}

	t, err := tutor.New(lessons, opts)
	if err != nil {
		return err
	}
	return t.Run(cmd.Context())
}
