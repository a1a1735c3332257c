package gitcheck

import (
	"fmt"

	"github.com/vertti/devready/pkg/check"
	"github.com/vertti/devready/pkg/version"
)

// DefaultRequiredVersion is the git version every machine should run.
const DefaultRequiredVersion = "2.0"

const versionPrefix = "git version"

// VersionCheck verifies that git is recent enough.
type VersionCheck struct {
	Required *version.Requirement // nil means DefaultRequiredVersion
	Runner   GitRunner
}

// Run executes the git version check.
func (c *VersionCheck) Run() check.Result {
	result := check.Result{Name: "git version"}

	req, err := c.requirement()
	if err != nil {
		return result.Skip(err)
	}

	out, err := c.Runner.Version()
	if err != nil {
		return result.Skipf("failed to get git version: %w", err)
	}

	v, err := version.ParseToolOutput(out, versionPrefix)
	if err != nil {
		return result.Skip(err)
	}

	if !req.Satisfied(v) {
		return result.Fail(
			fmt.Sprintf("Your default git version is outdated: %s", v),
			fmt.Errorf("git %s does not satisfy %s", v, req),
		)
	}

	return result.Passf("Your default git version is %s", v)
}

func (c *VersionCheck) requirement() (version.Requirement, error) {
	if c.Required != nil {
		return *c.Required, nil
	}
	return version.ParseRequirement(DefaultRequiredVersion)
}
