package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/devready/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

const (
	readyBanner  = "🚀  Awesome! Your computer is now ready!"
	bummerBanner = "😥  Bummer! Something's wrong."
	skipNotice   = "Test not available for now..."
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off all ANSI escape sequences.
func DisableColor() {
	green, red, dim, reset = "", "", "", ""
}

// PrintChecking announces the check that is about to run.
func PrintChecking(w io.Writer, label string) {
	fmt.Fprintf(w, "Checking %s...\n", label)
}

// PrintResult outputs a check result with colored status.
// Skipped results print a notice followed by their diagnostic details.
func PrintResult(w io.Writer, r check.Result) {
	switch r.Status {
	case check.StatusOK:
		fmt.Fprintf(w, "%s[OK] %s%s\n", green, r.Message, reset)
	case check.StatusFail:
		fmt.Fprintf(w, "%s[KO] %s%s\n", red, r.Message, reset)
	default:
		fmt.Fprintln(w, skipNotice)
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "     %s\n", formatLabel(d))
	}
}

// PrintBanner prints the final verdict for the whole run.
func PrintBanner(w io.Writer, ok bool) {
	fmt.Fprintln(w)
	if ok {
		fmt.Fprintf(w, "%s%s%s\n", green, readyBanner, reset)
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", red, bummerBanner, reset)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	if i := strings.Index(s, ": "); i > 0 {
		return dim + s[:i+1] + reset + s[i+1:]
	}
	return s
}
