package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/devready/pkg/gitcheck"
	"github.com/vertti/devready/pkg/prompt"
	"github.com/vertti/devready/pkg/runner"
	"github.com/vertti/devready/pkg/shellcheck"
	"github.com/vertti/devready/pkg/version"
)

// ErrCheckFailed is returned when at least one check fails.
// It makes the process exit with status 1.
var ErrCheckFailed = errors.New("check failed")

// Test seams.
var (
	newGitRunner = func() gitcheck.GitRunner {
		return &gitcheck.RealGitRunner{Log: logger.WithField("component", "git")}
	}
	envGetter shellcheck.EnvGetter = &shellcheck.RealEnvGetter{}
)

func runChecks(cmd *cobra.Command, _ []string) error {
	req, err := version.ParseRequirement(cfg.GitVersion)
	if err != nil {
		return fmt.Errorf("invalid --git-version: %w", err)
	}
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !prompt.IsTerminal(f) {
		logger.Debug("stdin is not a terminal, confirmation is read from piped input")
	}

	p := prompt.New(in, out)
	defer func() { _ = p.Close() }()

	r := &runner.Runner{Out: out, Log: logger}
	report := r.Run(steps(out, p, &req))
	if !report.OK() {
		return ErrCheckFailed
	}
	return nil
}

// steps returns the checks in the order they must run. The email check is
// the only interactive one and consumes the prompt.
func steps(out io.Writer, p prompt.Asker, req *version.Requirement) []runner.Step {
	git := newGitRunner()
	return []runner.Step{
		{Label: "shell", Check: &shellcheck.Check{Required: cfg.Shell, Getter: envGetter}},
		{Label: "git version", Check: &gitcheck.VersionCheck{Required: req, Runner: git}},
		{Label: "git/Github email matching", Check: &gitcheck.EmailCheck{
			EmailPage: cfg.EmailPage,
			Runner:    git,
			Prompt:    p,
			Out:       out,
		}},
		{Label: "git editor", Check: &gitcheck.EditorCheck{Target: cfg.Editor, Runner: git}},
	}
}
