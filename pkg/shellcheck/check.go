package shellcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertti/devready/pkg/check"
)

// DefaultShell is the shell every machine is expected to use.
const DefaultShell = "zsh"

// ShellVar holds the user's default shell.
const ShellVar = "SHELL"

// ErrShellUnset is returned when $SHELL is not defined at all.
var ErrShellUnset = errors.New("SHELL environment variable is not set")

// Check verifies that the user's default shell is the required one.
type Check struct {
	Required string    // shell name, matched as a case-sensitive substring
	Getter   EnvGetter // injected for testing
}

// Run executes the shell check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "shell"}

	required := c.Required
	if required == "" {
		required = DefaultShell
	}

	shell, ok := c.Getter.LookupEnv(ShellVar)
	if !ok {
		return result.Skip(ErrShellUnset)
	}

	if !strings.Contains(shell, required) {
		return result.Fail(
			fmt.Sprintf("Your default shell is %s, but should be %s", shell, required),
			fmt.Errorf("shell %q does not match %q", shell, required),
		)
	}

	return result.Passf("Your default shell is %s", required)
}
