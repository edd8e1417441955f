package jenkins

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// AuthToken reads the remote-trigger token from the job definition that
// Jenkins keeps on disk under the scheduling root. The token is the
// text of the authToken element in jobs/<job>/config.xml.
func AuthToken(root, job string) (string, error) {
	path := filepath.Join(root, "jobs", job, "config.xml")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading job config: %w", err)
	}

	var jobConfig struct {
		AuthToken string `xml:"authToken"`
	}
	if err := xml.Unmarshal(data, &jobConfig); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if jobConfig.AuthToken == "" {
		return "", fmt.Errorf("%s: no authToken element", path)
	}
	return jobConfig.AuthToken, nil
}
