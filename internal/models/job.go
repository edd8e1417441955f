package models

// ClientOS labels the operating-system family of the client side of a
// pairing, as understood by the compatibility-control Jenkins job.
type ClientOS string

const (
	ClientUbuntu ClientOS = "ubuntu"
	ClientOSX    ClientOS = "osx"
)

// JobRecord is one cell of the compatibility matrix: a single
// client/server pairing to submit as one remote build.
type JobRecord struct {
	// OldVersion is the release directory name, e.g. "1.20.11-osx".
	OldVersion string
	// Candidate is the candidate's version string from buildvars.json.
	Candidate string
	// NewToOld is true when the candidate plays the server role and the
	// release plays the client role, false for the reverse pairing.
	NewToOld bool
	// CandidatePath is the candidate directory base name.
	CandidatePath string
	// ClientOS labels the client platform. It is driven by the release
	// side of the pairing in both directions.
	ClientOS ClientOS
}

// Params renders the record as the flat parameter map sent to Jenkins.
// Jenkins build parameters are untyped strings, so the direction flag is
// serialized as "true"/"false".
func (r JobRecord) Params() map[string]string {
	newToOld := "false"
	if r.NewToOld {
		newToOld = "true"
	}
	return map[string]string{
		"old_version":    r.OldVersion,
		"candidate":      r.Candidate,
		"new_to_old":     newToOld,
		"candidate_path": r.CandidatePath,
		"client_os":      string(r.ClientOS),
	}
}

// Buildvars is the metadata a candidate build writes alongside its
// artifacts. Only Version is required; the rest is informational.
type Buildvars struct {
	Version    string `json:"version"`
	Branch     string `json:"branch,omitempty"`
	RevisionID string `json:"revision_id,omitempty"`
}
