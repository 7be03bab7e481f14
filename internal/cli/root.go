// Package cli implements the badgegen command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags holds the global flags shared by all commands.
type Flags struct {
	LogLevel string
}

// NewRootCmd creates the root command with every sub-command attached.
func NewRootCmd() *cobra.Command {
	flags := &Flags{LogLevel: "info"}

	cmd := &cobra.Command{
		Use:   "badgegen",
		Short: "Generate shields.io markdown badges",
		Long: `badgegen builds markdown badges backed by the shields.io static badge APIs.

Badges can be rendered one at a time, in batches from a YAML file, or for
every repository of a GitHub organization.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(flags.LogLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newBadgeCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newCrawlCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// Execute runs the CLI with args, printing any error.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		newOutput(cmd.ErrOrStderr()).Error(err.Error())
	}
	return err
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}
