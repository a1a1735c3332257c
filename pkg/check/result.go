package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	// StatusSkip marks a check that could not read the state it verifies.
	// Skipped checks never affect the overall status.
	StatusSkip Status = "SKIP"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "shell", "git version"
	Status  Status   // OK, FAIL or SKIP
	Message string   // one-line summary shown next to the status
	Details []string // extra human-readable lines
	Err     error    // underlying error for failures and skips
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Skipped returns true if the check could not be verified.
func (r Result) Skipped() bool {
	return r.Status == StatusSkip
}
