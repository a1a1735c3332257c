// Package testutil holds small helpers shared by check tests.
package testutil

import (
	"strings"

	"github.com/vertti/devready/pkg/check"
)

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// Result builds a check result for runner and output tests.
func Result(status check.Status, message string, details ...string) check.Result {
	return check.Result{Status: status, Message: message, Details: details}
}
