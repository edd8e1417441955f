// Package candidates discovers candidate build directories under the
// scheduling root.
package candidates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jujuqa/compatctl/internal/config"
)

// Directories with this suffix hold published build artifacts, not
// candidate builds, and are never scheduled.
const artifactsSuffix = "-artifacts"

// Path returns the directory candidate builds land in under root.
func Path(root string, cfg config.Config) string {
	return filepath.Join(root, cfg.CandidatesDir)
}

// Find lists candidate build directories under root, in lexical order.
// An entry qualifies when it is a directory other than "tmp", does not
// carry the artifacts suffix, and contains a readable buildvars.json.
// Unless all is set, candidates whose buildvars.json is older than the
// configured freshness window are skipped as already scheduled.
func Find(root string, cfg config.Config, all bool) ([]string, error) {
	dir := Path(root, cfg)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading candidates directory: %w", err)
	}

	cutoff := time.Now().Add(-time.Duration(cfg.CandidateMaxAgeDays) * 24 * time.Hour)

	var found []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == "tmp" || strings.HasSuffix(name, artifactsSuffix) {
			continue
		}

		buildvars := filepath.Join(dir, name, "buildvars.json")
		st, err := os.Stat(buildvars)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return nil, fmt.Errorf("checking %s: %w", buildvars, err)
		}
		if !all && st.ModTime().Before(cutoff) {
			continue
		}

		found = append(found, filepath.Join(dir, name))
	}
	return found, nil
}
