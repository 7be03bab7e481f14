package cli

import (
	"errors"
	"os"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/crawler"
	"github.com/spf13/cobra"
)

// ErrMissingToken is returned when GITHUB_TOKEN is not set for a crawl.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is required for crawl")

func newCrawlCmd() *cobra.Command {
	opts := crawler.Options{OutputDir: "data", Workers: crawler.DefaultWorkerCount}

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Build badges for every repository of a GitHub organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Token = os.Getenv("GITHUB_TOKEN")
			if opts.Token == "" {
				return ErrMissingToken
			}
			if err := crawler.Run(cmd.Context(), opts); err != nil {
				return err
			}
			newOutput(cmd.ErrOrStderr()).Successf("Crawl of %s written to %s", opts.Org, opts.OutputDir)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Org, "org", "", "GitHub organization name")
	f.BoolVar(&opts.IncludePrivate, "private", false, "Include private repositories (default: public only)")
	f.StringVar(&opts.OutputDir, "output", opts.OutputDir, "Directory for data output")
	f.IntVar(&opts.Workers, "workers", opts.Workers, "Concurrent repository workers")
	f.StringVar(&opts.BaseURL, "api-url", "", "GitHub API base URL (GitHub Enterprise)")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}
