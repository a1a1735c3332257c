package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vertti/devready/pkg/gitcheck"
	"github.com/vertti/devready/pkg/logging"
	"github.com/vertti/devready/pkg/output"
	"github.com/vertti/devready/pkg/shellcheck"
)

// settings holds the resolved configuration for one run.
type settings struct {
	Shell      string
	GitVersion string
	Editor     string
	EmailPage  string
	NoColor    bool
	LogLevel   string
	Verbose    bool
}

var (
	cfgFile string
	cfg     settings
	logger  logrus.FieldLogger = logging.Discard()
)

func init() {
	flags := rootCmd.Flags()
	flags.String("shell", shellcheck.DefaultShell, "required default shell")
	flags.String("git-version", gitcheck.DefaultRequiredVersion, "required git major.minor version")
	flags.String("editor", gitcheck.DefaultEditor, "required git editor (case-insensitive substring of core.editor)")
	flags.String("email-page", gitcheck.DefaultEmailPage, "page listing the emails of your GitHub account")
	flags.Bool("no-color", false, "disable colored output")

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.devready.yaml)")
	pflags.String("log-level", "warn", "log level (debug, info, warn, error)")
	pflags.BoolP("verbose", "v", false, "enable debug logging (equivalent to --log-level debug)")
}

// setup resolves configuration from flags, DEVREADY_* environment variables
// and the optional config file, then builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix("DEVREADY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := readConfigFile(v); err != nil {
		return err
	}

	cfg = settings{
		Shell:      v.GetString("shell"),
		GitVersion: v.GetString("git-version"),
		Editor:     v.GetString("editor"),
		EmailPage:  v.GetString("email-page"),
		NoColor:    v.GetBool("no-color"),
		LogLevel:   v.GetString("log-level"),
		Verbose:    v.GetBool("verbose"),
	}

	l, err := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Verbose: cfg.Verbose,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = l
	if v.ConfigFileUsed() != "" {
		logger.WithField("file", v.ConfigFileUsed()).Debug("loaded config file")
	}

	if cfg.NoColor {
		output.DisableColor()
	}
	return nil
}

func readConfigFile(v *viper.Viper) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".devready")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
