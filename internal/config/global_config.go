package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/metrowatch/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	FetchConfig        FetchConfig        `json:"fetch_config,omitempty" yaml:"fetch_config,omitempty"`
	LineConfig         LineConfig         `json:"line_config,omitempty" yaml:"line_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	MonitorConfig      MonitorConfig      `json:"monitor_config,omitempty" yaml:"monitor_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	StorageConfig      StorageConfig      `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		FetchConfig:        NewDefaultFetchConfig(),
		LineConfig:         NewDefaultLineConfig(),
		LogConfig:          NewDefaultLogConfig(),
		MonitorConfig:      NewDefaultMonitorConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		StorageConfig:      NewDefaultStorageConfig(),
	}
}

// maxConfigFileSize caps how much of a config file is read
const maxConfigFileSize = 1 * 1024 * 1024

// LoadGlobalConfig loads the configuration from a file or default locations, then applies
// environment overrides through lookup. YAML is used for .yaml/.yml files, JSON otherwise.
// With no config file at all the defaults (plus overrides) are returned.
func LoadGlobalConfig(providedPath string, lookup EnvLookup) (*GlobalConfig, error) {
	if lookup == nil {
		lookup = NoEnv
	}
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath, lookup)
	if filePath == "" && providedPath != "" {
		return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	if filePath != "" {
		data, err := loadConfigFileContent(filePath)
		if err != nil {
			return nil, common.WrapError(err, "failed to load config file content")
		}

		if err := parseConfigContent(data, filePath, cfg); err != nil {
			return nil, common.WrapError(err, "failed to parse config content")
		}
	}

	ApplyEnvOverrides(cfg, lookup)
	return cfg, nil
}

// loadConfigFileContent reads the config file, refusing oversized files
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewError("config file '%s' is %d bytes, limit is %d", filePath, info.Size(), maxConfigFileSize)
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
