// Package matrix pairs prior release builds with candidate builds into
// the client/server compatibility test matrix.
package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jujuqa/compatctl/internal/candidates"
	"github.com/jujuqa/compatctl/internal/config"
	"github.com/jujuqa/compatctl/internal/models"
)

// Builder derives job records from the on-disk release and candidate
// layout under a scheduling root.
type Builder struct {
	cfg config.Config
	// find lists candidate directories; swapped out in tests.
	find func(root string, cfg config.Config, all bool) ([]string, error)
}

// New creates a matrix builder for the given configuration.
func New(cfg config.Config) *Builder {
	return &Builder{cfg: cfg, find: candidates.Find}
}

// Releases lists the names of prior release builds under root. Entries
// that are not directories are skipped.
func (b *Builder) Releases(root string) ([]string, error) {
	dir := filepath.Join(root, b.cfg.ReleasesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading releases directory: %w", err)
	}

	var releases []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		releases = append(releases, entry.Name())
	}
	return releases, nil
}

// IsOSXClient reports whether a build directory name denotes a desktop
// client build. Everything else is treated as the default (ubuntu)
// platform family.
func (b *Builder) IsOSXClient(name string) bool {
	return strings.HasSuffix(name, b.cfg.OSXSuffix)
}

// ReadBuildvars parses the buildvars.json metadata inside a candidate
// directory. A missing file or an absent version key is an error, not a
// skip: a candidate that was discovered but cannot be described aborts
// the run.
func ReadBuildvars(candidatePath string) (models.Buildvars, error) {
	var bv models.Buildvars

	path := filepath.Join(candidatePath, "buildvars.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return bv, fmt.Errorf("reading buildvars: %w", err)
	}
	if err := json.Unmarshal(data, &bv); err != nil {
		return bv, fmt.Errorf("parsing %s: %w", path, err)
	}
	if bv.Version == "" {
		return bv, fmt.Errorf("%s: no version recorded", path)
	}
	return bv, nil
}

// Calculate produces the full ordered matrix for root. For every
// discovered candidate and every release with the same OS family it
// emits two records, candidate-as-server first, then candidate-as-client.
// The client_os label follows the release side in both directions.
func (b *Builder) Calculate(root string, all bool) ([]models.JobRecord, error) {
	releases, err := b.Releases(root)
	if err != nil {
		return nil, err
	}

	candidatesPath := candidates.Path(root, b.cfg)
	paths, err := b.find(root, b.cfg, all)
	if err != nil {
		return nil, err
	}

	var records []models.JobRecord
	for _, candidatePath := range paths {
		if filepath.Dir(candidatePath) != candidatesPath {
			return nil, &models.PathMismatchError{
				Candidate: candidatePath,
				Expected:  candidatesPath,
			}
		}
		candidate := filepath.Base(candidatePath)

		bv, err := ReadBuildvars(candidatePath)
		if err != nil {
			return nil, fmt.Errorf("candidate %s: %w", candidate, err)
		}

		for _, release := range releases {
			if b.IsOSXClient(candidate) != b.IsOSXClient(release) {
				continue
			}
			clientOS := models.ClientUbuntu
			if b.IsOSXClient(release) {
				clientOS = models.ClientOSX
			}

			records = append(records,
				models.JobRecord{
					OldVersion:    release, // client
					Candidate:     bv.Version,
					NewToOld:      true,
					CandidatePath: candidate,
					ClientOS:      clientOS,
				},
				models.JobRecord{
					OldVersion:    release, // server
					Candidate:     bv.Version,
					NewToOld:      false,
					CandidatePath: candidate,
					ClientOS:      clientOS,
				},
			)
		}
	}
	return records, nil
}
