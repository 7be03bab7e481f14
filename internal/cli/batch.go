package cli

import (
	"fmt"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/badge"
	"github.com/UnitVectorY-Labs/badgegenerator/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Render every badge defined in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			lines, err := renderAll(cfg.Options())
			if err != nil {
				return err
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			newOutput(cmd.ErrOrStderr()).Successf("Rendered %d badges", len(lines))
			return nil
		},
	}
}

// renderAll renders the badges concurrently, keeping input order.
func renderAll(opts []badge.Options) ([]string, error) {
	lines := make([]string, len(opts))

	var g errgroup.Group
	for i, o := range opts {
		g.Go(func() error {
			md, err := badge.Generic(o)
			if err != nil {
				return fmt.Errorf("badge %d: %w", i, err)
			}
			lines[i] = md
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}
