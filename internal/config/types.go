package config

// Settings holds learngit's own configuration (.learngit.yaml + LEARNGIT_* env).
type Settings struct {
	// Catalog is the path of the lesson catalog file.
	Catalog string `yaml:"catalog" mapstructure:"catalog"`

	// PlanFile is the lesson plan file name inside each fetched lesson.
	PlanFile string `yaml:"plan_file" mapstructure:"plan_file"`

	// Sentinel prefixes in-app commands such as !hint.
	Sentinel string `yaml:"sentinel" mapstructure:"sentinel"`

	// NeutralPrefixes are read-only commands the learner may always run.
	NeutralPrefixes []string `yaml:"neutral_prefixes" mapstructure:"neutral_prefixes"`

	// Fetcher selects how lessons are fetched: "go-git" or "git-cli".
	Fetcher string `yaml:"fetcher" mapstructure:"fetcher"`

	Transcripts TranscriptConfig `yaml:"transcripts" mapstructure:"transcripts"`
}

// TranscriptConfig controls the per-lesson transcript files.
type TranscriptConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Dir is where transcripts are written. Supports ~ and ${HOME}.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Keep is how many runs per lesson to retain. 0 keeps all of them.
	Keep int `yaml:"keep" mapstructure:"keep"`
}

// Fetcher names.
const (
	FetcherGoGit  = "go-git"
	FetcherGitCLI = "git-cli"
)

// Lesson describes one selectable lesson in the catalog.
type Lesson struct {
	Title      string `yaml:"title" json:"title"`
	Difficulty string `yaml:"difficulty" json:"difficulty"`

	// URL is the repository holding the lesson content and its plan.
	URL string `yaml:"url" json:"url"`

	// To is the destination directory, relative to where learngit runs.
	To string `yaml:"to" json:"to"`

	SetupCommands   []string `yaml:"setup_commands" json:"setup_commands"`
	CleanupCommands []string `yaml:"cleanup_commands" json:"cleanup_commands"`
}

// Step is one entry of a lesson plan.
type Step struct {
	Explanation string `yaml:"explanation" json:"explanation"`

	// ExpectedCommand is a pattern the whole input line must match.
	ExpectedCommand string `yaml:"expected_command" json:"expected_command"`

	// AllowEquivalents are extra patterns accepted in place of ExpectedCommand.
	AllowEquivalents []string `yaml:"allow_equivalents" json:"allow_equivalents"`

	Hint string `yaml:"hint" json:"hint"`

	// End finishes the lesson as soon as the step is matched, without running it.
	End bool `yaml:"end" json:"end"`
}

// DefaultNeutralPrefixes are the inspection commands allowed at any step.
var DefaultNeutralPrefixes = []string{"ls", "cat", "git status", "git log"}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Catalog:         ".availablelessons",
		PlanFile:        ".lessonplan",
		Sentinel:        "!",
		NeutralPrefixes: append([]string(nil), DefaultNeutralPrefixes...),
		Fetcher:         FetcherGoGit,
		Transcripts: TranscriptConfig{
			Enabled: false,
			Dir:     "~/.learngit/transcripts",
			Keep:    20,
		},
	}
}
