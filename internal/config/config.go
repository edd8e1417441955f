package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool-level settings. Everything has a working default;
// a config file only needs the keys it wants to override.
type Config struct {
	// JenkinsURL is the base URL of the Jenkins instance builds are
	// submitted to.
	JenkinsURL string `yaml:"jenkins_url"`
	// JobName is the Jenkins job triggered once per matrix pairing.
	JobName string `yaml:"job_name"`
	// ReleasesDir is the subdirectory of the root dir holding prior
	// release builds.
	ReleasesDir string `yaml:"releases_dir"`
	// CandidatesDir is the subdirectory of the root dir holding candidate
	// builds.
	CandidatesDir string `yaml:"candidates_dir"`
	// OSXSuffix marks a build directory as a desktop (OS X) client build.
	OSXSuffix string `yaml:"osx_suffix"`
	// CandidateMaxAgeDays bounds how old a candidate's buildvars.json may
	// be before discovery skips it, unless scheduling all candidates.
	CandidateMaxAgeDays int `yaml:"candidate_max_age_days"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		JenkinsURL:          "http://localhost:8080",
		JobName:             "compatibility-control",
		ReleasesDir:         "old-juju",
		CandidatesDir:       "candidate",
		OSXSuffix:           "-osx",
		CandidateMaxAgeDays: 7,
	}
}

// Load reads a YAML config file and applies defaults for any keys the
// file leaves unset. An empty path returns the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// Backfill anything the file set to its zero value.
	def := Default()
	if cfg.JenkinsURL == "" {
		cfg.JenkinsURL = def.JenkinsURL
	}
	if cfg.JobName == "" {
		cfg.JobName = def.JobName
	}
	if cfg.ReleasesDir == "" {
		cfg.ReleasesDir = def.ReleasesDir
	}
	if cfg.CandidatesDir == "" {
		cfg.CandidatesDir = def.CandidatesDir
	}
	if cfg.OSXSuffix == "" {
		cfg.OSXSuffix = def.OSXSuffix
	}
	if cfg.CandidateMaxAgeDays == 0 {
		cfg.CandidateMaxAgeDays = def.CandidateMaxAgeDays
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.CandidateMaxAgeDays < 0 {
		return fmt.Errorf("candidate_max_age_days must be positive, got %d", c.CandidateMaxAgeDays)
	}
	return nil
}
