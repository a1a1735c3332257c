package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Requirement is a required major.minor pair. A version satisfies it when
// the major versions are equal and the minor version is at least the
// required one; patch and later tokens are ignored.
type Requirement struct {
	Major int
	Minor int

	constraint *semver.Constraints
}

// ParseRequirement parses a "major.minor" requirement such as "2.0".
func ParseRequirement(s string) (Requirement, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Requirement{}, fmt.Errorf("empty version requirement")
	}

	v, err := ParseToolOutput(s, "")
	if err != nil {
		return Requirement{}, fmt.Errorf("invalid version requirement %q: %w", s, err)
	}

	// Same major, minor at least the required one.
	expr := fmt.Sprintf(">= %d.%d.0, < %d.0.0", v.Major, v.Minor, v.Major+1)
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return Requirement{}, fmt.Errorf("invalid version requirement %q: %w", s, err)
	}

	return Requirement{Major: v.Major, Minor: v.Minor, constraint: c}, nil
}

// String returns the requirement as "major.minor".
func (r Requirement) String() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Satisfied reports whether v meets the requirement.
func (r Requirement) Satisfied(v Version) bool {
	if r.constraint == nil {
		return v.Major == r.Major && v.Minor >= r.Minor
	}
	// Patch is deliberately zeroed: only major and minor take part.
	sv := semver.New(uint64(v.Major), uint64(v.Minor), 0, "", "")
	return r.constraint.Check(sv)
}
