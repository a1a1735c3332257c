package gitcheck

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vertti/devready/pkg/logging"
)

// GitRunner abstracts git command execution for testability.
type GitRunner interface {
	// Version returns the raw output of 'git --version'.
	Version() (string, error)

	// GlobalConfig returns the value of 'git config --global <key>'.
	// An unset key is reported as an error, as git exits with status 1.
	GlobalConfig(key string) (string, error)
}

// RealGitRunner executes actual git commands.
type RealGitRunner struct {
	Binary string             // defaults to "git"
	Log    logrus.FieldLogger // optional
}

func (r *RealGitRunner) Version() (string, error) {
	return r.run("--version")
}

func (r *RealGitRunner) GlobalConfig(key string) (string, error) {
	out, err := r.run("config", "--global", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r *RealGitRunner) run(args ...string) (string, error) {
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}

	log := r.logger().WithField("args", strings.Join(args, " "))
	log.Debug("running git")

	cmd := exec.Command(binary, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		log.WithError(err).Debug("git command failed")
		if msg := strings.TrimSpace(errOut.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return out.String(), nil
}

func (r *RealGitRunner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logging.Discard()
}
