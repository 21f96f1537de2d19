package config

import (
	"os"
	"path/filepath"
)

// EnvLookup matches os.LookupEnv. The loader receives it explicitly so that tests
// and callers control exactly which environment is visible.
type EnvLookup func(key string) (string, bool)

// NoEnv is an EnvLookup that sees an empty environment.
func NoEnv(string) (string, bool) { return "", false }

// ApplyEnvOverrides copies credentials and the API URL from the environment into cfg.
// Non-empty environment values win over file values.
func ApplyEnvOverrides(cfg *GlobalConfig, lookup EnvLookup) {
	if v, ok := lookup(EnvTelegramToken); ok && v != "" {
		cfg.NotificationConfig.TelegramBotToken = v
	}
	if v, ok := lookup(EnvTelegramChatID); ok && v != "" {
		cfg.NotificationConfig.TelegramChatID = v
	}
	if v, ok := lookup(EnvFetchAPIURL); ok && v != "" {
		cfg.FetchConfig.APIURL = v
	}
}

// GetConfigPath determines the configuration file path.
// Priority:
// 1. path given on the command line
// 2. METROWATCH_CONFIG_PATH environment variable
// 3. config.yaml, config.yml, config.json in the current working directory
// Returns "" when nothing exists.
func GetConfigPath(configFilePathFlag string, lookup EnvLookup) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
		return ""
	}

	if envPath, ok := lookup(EnvConfigPath); ok && envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		path := filepath.Join(cwd, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// Helper function to check if a file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) || err != nil {
		return false
	}
	return !info.IsDir()
}
