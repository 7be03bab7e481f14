package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/crawler"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the badges found in a markdown file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				content []byte
				err     error
			)
			if args[0] == "-" {
				content, err = io.ReadAll(cmd.InOrStdin())
			} else {
				content, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, b := range crawler.ExtractBadges(content) {
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", b.AltText, b.ImageURL, b.TargetURL); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
