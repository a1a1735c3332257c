package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of the developer environment
// and returns a Result indicating success, failure or that it was skipped.
//
// Implementations:
//   - shellcheck.Check: verifies the default login shell
//   - gitcheck.VersionCheck: verifies the installed git version
//   - gitcheck.EmailCheck: asks the user to confirm the git email on GitHub
//   - gitcheck.EditorCheck: verifies the configured git editor
type Checker interface {
	Run() Result
}

// Func adapts a plain function to the Checker interface.
type Func func() Result

// Run calls f.
func (f Func) Run() Result {
	return f()
}
