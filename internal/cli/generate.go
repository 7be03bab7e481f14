package cli

import (
	"github.com/UnitVectorY-Labs/badgegenerator/internal/generator"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	inputDir, outputDir := "data", "output"

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write markdown snippets and an HTML preview from crawled data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generator.Run(inputDir, outputDir); err != nil {
				return err
			}
			newOutput(cmd.ErrOrStderr()).Successf("Badges written to %s", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", inputDir, "Directory of crawled data")
	cmd.Flags().StringVar(&outputDir, "output", outputDir, "Directory for generated output")

	return cmd
}
