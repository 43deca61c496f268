package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileName is the per-directory settings file.
	SettingsFileName = ".learngit.yaml"
	// GlobalConfigDir is the directory for global settings.
	GlobalConfigDir = ".config/learngit"
	// GlobalConfigFile is the global settings file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides (LEARNGIT_CATALOG, ...).
	EnvPrefix = "LEARNGIT"
)

// FindSettings locates the settings file:
// 1. Explicit path
// 2. .learngit.yaml in the current directory
// 3. ~/.config/learngit/config.yaml
//
// Returns an empty path when none exists.
func FindSettings(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified settings file not found: "+explicit,
				"Check the path is correct")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	local := filepath.Join(cwd, SettingsFileName)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadSettings reads settings from path (may be empty) and LEARNGIT_* env vars,
// layered over DefaultSettings.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read settings file",
				"Check "+path+" exists and is valid YAML")
		}
	}

	cfg := DefaultSettings()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid settings format",
			"Check the YAML syntax in "+path)
	}
	cfg.Transcripts.Dir = ExpandTilde(Expand(cfg.Transcripts.Dir))

	if err := ValidateSettings(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("plan_file", d.PlanFile)
	v.SetDefault("sentinel", d.Sentinel)
	v.SetDefault("neutral_prefixes", d.NeutralPrefixes)
	v.SetDefault("fetcher", d.Fetcher)
	v.SetDefault("transcripts.enabled", d.Transcripts.Enabled)
	v.SetDefault("transcripts.dir", d.Transcripts.Dir)
	v.SetDefault("transcripts.keep", d.Transcripts.Keep)
}

// LoadCatalog reads the lesson catalog. JSON and YAML are both accepted.
func LoadCatalog(path string) ([]Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Lesson catalog not found: "+path,
				"Run learngit from the directory holding .availablelessons, or pass --catalog")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't read lesson catalog "+path,
			"Check file permissions")
	}

	var lessons []Lesson
	if err := decodeList(data, &lessons); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Lesson catalog is not a valid list of lessons",
			"The catalog must be a JSON or YAML array of {title, difficulty, url, to, ...}")
	}

	if err := ValidateCatalog(lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// LoadPlan reads a lesson plan file.
func LoadPlan(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLesson,
			"Can't read lesson plan "+path,
			"Make sure the lesson repository contains a lesson plan file")
	}

	var steps []Step
	if err := decodeList(data, &steps); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLesson,
			"Lesson plan is not a valid list of steps",
			"Each step needs at least explanation and expected_command")
	}

	if err := ValidatePlan(steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// decodeList decodes a top-level array. Documents that open with '[' are
// parsed as JSON since tab-indented JSON trips the YAML scanner.
func decodeList(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}
	return yaml.Unmarshal(trimmed, out)
}
