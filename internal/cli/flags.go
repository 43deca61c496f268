package cli

import (
	"os"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/logger"
	"github.com/rileyhilliard/learngit/internal/ui"
	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags of the root command.
type GlobalFlags struct {
	Config  string
	Catalog string
	NoColor bool
	Verbose bool
	Pick    bool
}

var globalFlags GlobalFlags

// addGlobalFlags registers the persistent flags on cmd.
func addGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.Config, "config", "", "settings file (default .learngit.yaml or ~/.config/learngit/config.yaml)")
	pf.StringVar(&flags.Catalog, "catalog", "", "lesson catalog file (default .availablelessons)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "show debug output and clone progress")
	pf.BoolVar(&flags.Pick, "pick", false, "choose lessons with an arrow-key picker")
}

// applyGlobalFlags turns the parsed flags into process-wide settings.
// NO_COLOR in the environment has the same effect as --no-color.
func applyGlobalFlags(flags *GlobalFlags) {
	if flags.NoColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}
	logger.SetVerbose(flags.Verbose)
}

// loadSettings finds and reads the settings file, then applies flag
// overrides on top.
func loadSettings(flags *GlobalFlags) (*config.Settings, error) {
	path, err := config.FindSettings(flags.Config)
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if flags.Catalog != "" {
		settings.Catalog = flags.Catalog
	}
	return settings, nil
}
