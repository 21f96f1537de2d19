package main

import (
	"time"

	"github.com/aleister1102/metrowatch/internal/monitor"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run status check cycles continuously until interrupted",
		Long: `Run a status check immediately and then once per interval, in this process.
Use this instead of an external scheduler; do not combine both against the same snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := a.logger()

			c, err := buildComponents(a.cfg, afero.NewOsFs(), logger)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to initialize monitoring service")
				return err
			}
			defer func() { _ = c.Close() }()

			if interval <= 0 {
				interval = a.cfg.MonitorConfig.CheckInterval()
			}
			monitor.NewScheduler(c.service, interval, logger).Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Time between checks (defaults to monitor_config.check_interval_seconds)")
	return cmd
}
