package gitcheck

import (
	"errors"
	"fmt"
	"io"

	"github.com/vertti/devready/pkg/check"
	"github.com/vertti/devready/pkg/prompt"
)

// DefaultEmailPage lists the emails registered on the user's GitHub account.
const DefaultEmailPage = "https://github.com/settings/emails"

var (
	// ErrEmailUnset is returned when user.email is configured but empty.
	ErrEmailUnset = errors.New("git user.email is empty")
	// ErrNoPrompt is returned when the check has no input channel to ask on.
	ErrNoPrompt = errors.New("no interactive input available")
)

// EmailCheck asks the user to confirm that the git email is registered on GitHub.
// It owns the last use of Prompt and closes it once answered.
type EmailCheck struct {
	EmailPage string // defaults to DefaultEmailPage
	Runner    GitRunner
	Prompt    prompt.Asker
	Out       io.Writer // where instructions are written
}

// Run executes the email check.
func (c *EmailCheck) Run() check.Result {
	result := check.Result{Name: "git/Github email matching"}

	email, err := c.Runner.GlobalConfig("user.email")
	if err != nil {
		return result.Skipf("failed to read git user.email: %w", err)
	}
	if email == "" {
		return result.Skip(ErrEmailUnset)
	}

	if c.Prompt == nil {
		return result.Skip(ErrNoPrompt)
	}
	out := c.Out
	if out == nil {
		out = io.Discard
	}

	page := c.EmailPage
	if page == "" {
		page = DefaultEmailPage
	}
	fmt.Fprintf(out, "Please go to %s and make sure that\n", page)
	fmt.Fprintf(out, "the following email is listed on that page: %s\n", email)

	answer, err := c.Prompt.Ask("Is that the case? (y/n + <Enter>)\n> ")
	_ = c.Prompt.Close()
	if err != nil {
		return result.Skipf("failed to read confirmation: %w", err)
	}

	if !prompt.Affirmative(answer) {
		return result.Fail(
			fmt.Sprintf("Add %s to your GitHub account or update your git global settings", email),
			fmt.Errorf("email %s not confirmed", email),
		)
	}

	return result.Pass("git email is included in Github emails")
}
