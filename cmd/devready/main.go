package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "devready",
	Short: "Verify that your computer is set up for development",
	Long: `devready checks your shell, git installation and git global settings,
and asks you to confirm what cannot be verified automatically.

Checks, in order:
  shell                       default shell is zsh
  git version                 git is 2.x, at least the required minor version
  git/Github email matching   your git email is listed on your GitHub account
  git editor                  git uses VS Code as its editor

The command exits with status 1 when any check fails. Checks that cannot be
verified (git missing, setting unset) are reported but do not fail the run.`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runChecks,
}
