package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// AppFlags holds the persistent command line flags.
type AppFlags struct {
	ConfigFile string
	LogLevel   string
}

// app is the state shared by subcommands once the root pre-run has loaded configuration.
type app struct {
	flags  AppFlags
	lookup config.EnvLookup
	cfg    *config.GlobalConfig
	log    *logger.Logger
}

// newApp creates the CLI state. lookup is the only source of environment values.
func newApp(lookup config.EnvLookup) *app {
	return &app{lookup: lookup}
}

// command builds the metrowatch command tree bound to a.
func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "metrowatch",
		Short:         "Watch São Paulo metro and train line statuses and report changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}

	cmd.PersistentFlags().StringVarP(&a.flags.ConfigFile, "config", "c", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	cmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newWatchCmd(a))
	cmd.AddCommand(newMigrateCmd(a))
	return cmd
}

// execute runs cmd and releases the logger however the command ended.
// Cobra skips post-run hooks when RunE fails.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	defer a.teardown()
	return cmd.ExecuteContext(ctx)
}

func (a *app) setup() error {
	cfg, err := config.LoadGlobalConfig(a.flags.ConfigFile, a.lookup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Could not load configuration: %v\n", err)
		return err
	}
	if a.flags.LogLevel != "" {
		cfg.LogConfig.LogLevel = a.flags.LogLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Configuration validation failed: %v\n", err)
		return err
	}

	log, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Could not initialize logger: %v\n", err)
		return err
	}

	a.cfg = cfg
	a.log = log
	l := a.logger()
	l.Debug().Str("api_url", cfg.FetchConfig.APIURL).Str("snapshot_path", cfg.StorageConfig.SnapshotPath).Msg("Configuration loaded")
	return nil
}

func (a *app) teardown() {
	if a.log != nil {
		_ = a.log.Close()
		a.log = nil
	}
}

func (a *app) logger() zerolog.Logger {
	if a.log == nil {
		return zerolog.Nop()
	}
	return *a.log.GetZerolog()
}
