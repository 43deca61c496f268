// Package transcript saves a record of each finished lesson: what the
// learner typed, how far they got and how the lesson ended.
//
// Each lesson run gets its own directory:
//
//	<dir>/<lesson-slug>-<YYYYMMDD-HHMMSS>/transcript.json
//	<dir>/<lesson-slug>-<YYYYMMDD-HHMMSS>/history.log
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/rileyhilliard/learngit/internal/lesson"
	"github.com/rileyhilliard/learngit/internal/util"
)

// timestampLayout is appended to every run directory name.
const timestampLayout = "20060102-150405"

// Record is the structure written to transcript.json.
type Record struct {
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	URL        string    `json:"url"`
	Outcome    string    `json:"outcome"`
	StepIndex  int       `json:"step_index"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Duration   string    `json:"duration"`
	History    []string  `json:"history"`
}

// Writer stores transcripts under a base directory.
type Writer struct {
	dir string
}

// NewWriter creates the base directory if needed.
func NewWriter(baseDir string) (*Writer, error) {
	baseDir = config.ExpandTilde(baseDir)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't create transcript directory "+baseDir,
			"Check your permissions, or disable transcripts.")
	}
	return &Writer{dir: baseDir}, nil
}

// Dir returns the base directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write saves one lesson run and returns its directory.
func (w *Writer) Write(l config.Lesson, res lesson.Result) (string, error) {
	started := res.Started
	if started.IsZero() {
		started = time.Now()
	}
	runDir := filepath.Join(w.dir, fmt.Sprintf("%s-%s", util.Slugify(l.Title), started.Format(timestampLayout)))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrExec,
			"Can't create transcript directory "+runDir,
			"Check your permissions.")
	}

	history := res.History
	if history == nil {
		history = []string{}
	}
	record := Record{
		Title:      l.Title,
		Difficulty: l.Difficulty,
		URL:        l.URL,
		Outcome:    res.Outcome.String(),
		StepIndex:  res.StepIndex,
		StartTime:  res.Started,
		EndTime:    res.Finished,
		Duration:   res.Finished.Sub(res.Started).Round(time.Second).String(),
		History:    history,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrExec,
			"Can't encode transcript",
			"This is unexpected - check the lesson result.")
	}
	if err := os.WriteFile(filepath.Join(runDir, "transcript.json"), data, 0644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrExec,
			"Can't write transcript in "+runDir,
			"Check your permissions.")
	}

	log := strings.Join(history, "\n")
	if log != "" {
		log += "\n"
	}
	if err := os.WriteFile(filepath.Join(runDir, "history.log"), []byte(log), 0644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrExec,
			"Can't write history log in "+runDir,
			"Check your permissions.")
	}

	return runDir, nil
}
