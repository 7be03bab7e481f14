package cli

import (
	"errors"
	"fmt"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/badge"
	"github.com/spf13/cobra"
)

// ErrEmptyFlag is returned when a required badge flag is given an empty value.
var ErrEmptyFlag = errors.New("flag must not be empty")

func newBadgeCmd() *cobra.Command {
	var (
		opts     badge.Options
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Render a single generic badge",
		Example: `  badgegen badge --label build --message passing --color green
  badgegen badge --message docs --color blue --logo readthedocs --strategy query`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Message == "" {
				return fmt.Errorf("--message: %w", ErrEmptyFlag)
			}
			if opts.Color == "" {
				return fmt.Errorf("--color: %w", ErrEmptyFlag)
			}
			if cmd.Flags().Changed("strategy") {
				s, err := badge.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				opts.OnlyQueryParams = s == badge.QueryParams
			}

			md, err := badge.Generic(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), md)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Label, "label", "", "Left-hand text")
	f.StringVar(&opts.Message, "message", "", "Right-hand text")
	f.StringVar(&opts.Color, "color", "", "Message color, e.g. green or ff69b4")
	f.BoolVar(&opts.IsLarge, "large", false, "Use the for-the-badge style")
	f.StringVar(&opts.Target, "target", "", "Link target for the badge")
	f.StringVar(&opts.Logo, "logo", "", "simple-icons logo name")
	f.StringVar(&opts.LogoColor, "logo-color", "", "Logo color (needs --logo)")
	f.BoolVar(&opts.OnlyQueryParams, "query-params", false, "Use the query-param API instead of the dash path")
	f.StringVar(&strategy, "strategy", badge.DashPath.String(), "URL strategy: dash or query (overrides --query-params)")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}
