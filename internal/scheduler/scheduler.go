// Package scheduler composes the matrix builder and the Jenkins client:
// it builds the pairing matrix for a root directory and submits one
// build per record, in order.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jujuqa/compatctl/internal/config"
	"github.com/jujuqa/compatctl/internal/creds"
	"github.com/jujuqa/compatctl/internal/jenkins"
	"github.com/jujuqa/compatctl/internal/matrix"
	"github.com/jujuqa/compatctl/internal/models"
)

// Trigger requests one remote execution of a named job. *jenkins.Client
// satisfies it; tests substitute their own.
type Trigger interface {
	BuildJob(ctx context.Context, job string, params map[string]string, token string) error
}

// Options configures a scheduling run.
type Options struct {
	// Root is the directory containing the releases and candidates dirs.
	Root string
	// All schedules every discovered candidate instead of only fresh ones.
	All bool
	// ConfigPath is an optional YAML config file; empty means defaults.
	ConfigPath string
	// Creds feeds credential resolution. Unused in dry-run mode.
	Creds creds.Options
	// DryRun prints the matrix instead of dispatching it.
	DryRun bool
	// Out receives dry-run output. Defaults to stdout.
	Out io.Writer
}

// Summary reports what a run did.
type Summary struct {
	Records    int
	Dispatched int
	DryRun     bool
}

// BuildJobs submits one build per record, sequentially and in order.
// The first failure aborts the remaining dispatches.
func BuildJobs(ctx context.Context, trigger Trigger, job, token string, records []models.JobRecord) error {
	for _, r := range records {
		slog.Info("triggering build",
			"job", job,
			"old_version", r.OldVersion,
			"candidate", r.Candidate,
			"new_to_old", r.NewToOld,
			"client_os", r.ClientOS)

		if err := trigger.BuildJob(ctx, job, r.Params(), token); err != nil {
			return fmt.Errorf("dispatching %s vs %s: %w", r.OldVersion, r.Candidate, err)
		}
	}
	return nil
}

// Run builds the matrix for opts.Root and dispatches it. In dry-run
// mode it renders the matrix as a table and stops before touching
// credentials or Jenkins.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	records, err := matrix.New(cfg).Calculate(opts.Root, opts.All)
	if err != nil {
		return nil, fmt.Errorf("building matrix: %w", err)
	}

	if opts.DryRun {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		renderMatrix(out, records)
		return &Summary{Records: len(records), DryRun: true}, nil
	}

	credentials, err := creds.Resolve(opts.Creds)
	if err != nil {
		return nil, err
	}

	token, err := jenkins.AuthToken(opts.Root, cfg.JobName)
	if err != nil {
		return nil, fmt.Errorf("looking up auth token: %w", err)
	}

	client := jenkins.NewClient(cfg.JenkinsURL, credentials)
	if err := BuildJobs(ctx, client, cfg.JobName, token, records); err != nil {
		return nil, err
	}

	return &Summary{Records: len(records), Dispatched: len(records)}, nil
}
