// Package jenkins talks to the Jenkins instance that runs the
// compatibility builds.
package jenkins

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jujuqa/compatctl/internal/creds"
)

// Client triggers parameterized builds on a single Jenkins instance.
type Client struct {
	baseURL    string
	creds      creds.Credentials
	httpClient *http.Client
}

// NewClient creates a client for the Jenkins instance at baseURL.
func NewClient(baseURL string, c creds.Credentials) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      c,
		httpClient: http.DefaultClient,
	}
}

// StatusError reports a trigger request Jenkins answered with a
// non-success status.
type StatusError struct {
	Job        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("triggering %s: HTTP %d", e.Job, e.StatusCode)
}

// BuildJob requests one execution of job with the given parameters,
// presenting the job's trigger token and HTTP basic auth. Jenkins
// accepts build parameters as query values on the buildWithParameters
// endpoint.
func (c *Client) BuildJob(ctx context.Context, job string, params map[string]string, token string) error {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	if token != "" {
		q.Set("token", token)
	}

	endpoint := fmt.Sprintf("%s/job/%s/buildWithParameters?%s",
		c.baseURL, url.PathEscape(job), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.creds.User, c.creds.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("triggering %s: %w", job, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Job: job, StatusCode: resp.StatusCode}
	}
	return nil
}
