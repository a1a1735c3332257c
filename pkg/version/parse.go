package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when tool output has fewer than two numeric
// dot-separated tokens.
var ErrMalformed = errors.New("malformed version")

// Version is the numeric prefix of a tool's version string.
type Version struct {
	Major int
	Minor int
	Patch int

	// Tokens holds every dot-separated token, numeric or not.
	Tokens []string
}

// String returns the version tokens joined by dots.
func (v Version) String() string {
	if len(v.Tokens) > 0 {
		return strings.Join(v.Tokens, ".")
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseToolOutput parses the output of a `<tool> --version` command.
// The first occurrence of prefix is removed, then all whitespace, and the
// remainder is split on dots. Major and minor must be numeric; any further
// tokens are kept but only a numeric third token is read as the patch.
func ParseToolOutput(output, prefix string) (Version, error) {
	s := output
	if prefix != "" {
		s = strings.Replace(s, prefix, "", 1)
	}
	s = strings.Join(strings.Fields(s), "")

	tokens := strings.Split(s, ".")
	if len(tokens) < 2 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformed, strings.TrimSpace(output))
	}

	major, err := parseToken(tokens[0])
	if err != nil {
		return Version{}, fmt.Errorf("%w: major %q in %q", ErrMalformed, tokens[0], strings.TrimSpace(output))
	}
	minor, err := parseToken(tokens[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: minor %q in %q", ErrMalformed, tokens[1], strings.TrimSpace(output))
	}

	v := Version{Major: major, Minor: minor, Tokens: tokens}
	if len(tokens) > 2 {
		if patch, err := parseToken(tokens[2]); err == nil {
			v.Patch = patch
		}
	}
	return v, nil
}

func parseToken(tok string) (int, error) {
	n, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
