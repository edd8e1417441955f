package models

import "fmt"

// PathMismatchError reports a discovered candidate whose parent directory
// is not the resolved candidates path. It signals a misconfigured
// discovery rather than bad data, and aborts the run.
type PathMismatchError struct {
	Candidate string
	Expected  string
}

func (e *PathMismatchError) Error() string {
	return fmt.Sprintf("wrong path: candidate %s is not directly under %s", e.Candidate, e.Expected)
}
