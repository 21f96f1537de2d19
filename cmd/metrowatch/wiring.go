package main

import (
	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/datastore"
	"github.com/aleister1102/metrowatch/internal/differ"
	"github.com/aleister1102/metrowatch/internal/monitor"
	"github.com/aleister1102/metrowatch/internal/normalizer"
	"github.com/aleister1102/metrowatch/internal/notifier"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// components is the wired service plus the resources that must be released afterwards.
type components struct {
	service *monitor.MonitoringService
	closers []func() error
}

func (c *components) Close() error {
	var collector common.ErrorCollector
	for _, closeFn := range c.closers {
		collector.Add(closeFn())
	}
	return collector.Error()
}

// buildComponents wires the monitoring service from configuration.
func buildComponents(cfg *config.GlobalConfig, fs afero.Fs, logger zerolog.Logger) (*components, error) {
	clock := timeutils.OperatorClock()
	c := &components{}

	fetcher, err := monitor.NewStatusFetcher(cfg.FetchConfig, nil, logger)
	if err != nil {
		return nil, err
	}

	telegram, err := notifier.NewTelegramNotifier(cfg.NotificationConfig, nil, logger)
	if err != nil {
		return nil, err
	}

	csvLog := datastore.NewCSVHistoryLog(fs, cfg.StorageConfig, logger)
	var history monitor.HistoryLog = csvLog
	if cfg.StorageConfig.HistoryDBPath != "" {
		sqliteLog, err := datastore.NewSQLiteHistoryLog(cfg.StorageConfig.HistoryDBPath, logger)
		if err != nil {
			// the CSV log stays authoritative
			logger.Warn().Err(err).Msg("History database unavailable, continuing with CSV history only")
		} else {
			c.closers = append(c.closers, sqliteLog.Close)
			history = datastore.NewMultiHistoryLog(csvLog, sqliteLog)
		}
	}

	service, err := monitor.NewMonitoringService(monitor.ServiceDeps{
		Fetcher:    fetcher,
		Normalizer: normalizer.NewLineNormalizer(cfg.LineConfig.Colors, logger),
		Differ:     differ.NewStatusDiffer(clock, logger),
		Snapshots:  datastore.NewJSONSnapshotStore(fs, cfg.StorageConfig, logger),
		History:    history,
		Renderer:   notifier.NewMessageFormatter(cfg.LineConfig.HealthyMarker, cfg.NotificationConfig.ParseMode),
		Notifier:   telegram,
		Clock:      clock,
	}, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.service = service
	return c, nil
}
