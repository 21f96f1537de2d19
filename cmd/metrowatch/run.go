package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one status check cycle",
		Long: `Fetch the current line statuses, report every change since the last run
through Telegram and the history log, and update the snapshot.
Exits non-zero when the cycle aborts or the snapshot cannot be saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := a.logger()

			c, err := buildComponents(a.cfg, afero.NewOsFs(), logger)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to initialize monitoring service")
				return err
			}
			defer func() {
				if err := c.Close(); err != nil {
					logger.Warn().Err(err).Msg("Failed to release resources")
				}
			}()

			summary, err := c.service.RunCycle(cmd.Context())
			if err != nil {
				logger.Error().Err(err).Str("cycle_id", summary.CycleID).Str("state", string(summary.State)).Msg("Status check failed")
				return err
			}
			return nil
		},
	}
}
