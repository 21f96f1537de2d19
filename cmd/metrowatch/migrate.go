package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite legacy snapshot keys into the L<code> form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := a.logger()

			c, err := buildComponents(a.cfg, afero.NewOsFs(), logger)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to initialize monitoring service")
				return err
			}
			defer func() { _ = c.Close() }()

			report, err := c.service.MigrateSnapshot(cmd.Context())
			if err != nil {
				logger.Error().Err(err).Msg("Snapshot migration failed")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rewritten: %d, unmapped: %d, keys: %d\n", len(report.Rewrites), len(report.Unmapped), len(report.Snapshot))
			return nil
		},
	}
}
