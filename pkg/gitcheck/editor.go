package gitcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/devready/pkg/check"
)

// DefaultEditor identifies VS Code in core.editor (e.g. "code --wait").
const DefaultEditor = "code"

// EditorCheck verifies that git opens the expected editor.
type EditorCheck struct {
	Target string // case-insensitive substring, defaults to DefaultEditor
	Runner GitRunner
}

// Run executes the editor check.
func (c *EditorCheck) Run() check.Result {
	result := check.Result{Name: "git editor"}

	target := c.Target
	if target == "" {
		target = DefaultEditor
	}

	editor, err := c.Runner.GlobalConfig("core.editor")
	if err != nil {
		return result.Skipf("failed to read git core.editor: %w", err)
	}

	if !strings.Contains(strings.ToLower(editor), strings.ToLower(target)) {
		return result.Fail(
			fmt.Sprintf("Ask a teacher to check your ~/.gitconfig editor setup. Right now, it's `%s`", editor),
			fmt.Errorf("core.editor %q does not contain %q", editor, target),
		)
	}

	if target == DefaultEditor {
		return result.Pass("VS Code is your default git editor")
	}
	return result.Passf("%s is your default git editor", editor)
}
