package transcript

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/learngit/internal/errors"
)

type runDir struct {
	path    string
	modTime time.Time
}

// Prune keeps only the newest keep runs per lesson. keep <= 0 keeps everything.
func Prune(baseDir string, keep int) error {
	if keep <= 0 {
		return nil
	}

	dirs, err := listRunDirs(baseDir)
	if err != nil {
		return err
	}

	groups := make(map[string][]runDir)
	for _, d := range dirs {
		name := lessonSlug(filepath.Base(d.path))
		groups[name] = append(groups[name], d)
	}

	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].modTime.After(group[j].modTime)
		})
		if len(group) <= keep {
			continue
		}
		for _, d := range group[keep:] {
			if err := os.RemoveAll(d.path); err != nil {
				return errors.WrapWithCode(err, errors.ErrExec,
					"Can't delete transcript "+d.path,
					"Check your permissions.")
			}
		}
	}
	return nil
}

func listRunDirs(baseDir string) ([]runDir, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrExec,
			"Can't read transcript directory "+baseDir,
			"Check your permissions.")
	}

	var dirs []runDir
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		dirs = append(dirs, runDir{
			path:    filepath.Join(baseDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}
	return dirs, nil
}

// lessonSlug strips the trailing -YYYYMMDD-HHMMSS from a run directory name.
func lessonSlug(dirName string) string {
	parts := strings.Split(dirName, "-")
	if len(parts) < 3 {
		return dirName
	}
	last, second := parts[len(parts)-1], parts[len(parts)-2]
	if len(last) == 6 && len(second) == 8 && isDigits(last) && isDigits(second) {
		return strings.Join(parts[:len(parts)-2], "-")
	}
	return dirName
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
