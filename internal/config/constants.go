package config

const (
	// Fetch Defaults
	DefaultFetchAPIURL         = "https://www.diretodostrens.com.br/api/status"
	DefaultFetchTimeoutSeconds = 30
	DefaultFetchUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultFetchMaxContentSize = 1 * 1024 * 1024

	// Storage Defaults
	DefaultStorageSnapshotPath = "state/line_status.json"
	DefaultStorageHistoryPath  = "state/line_history.csv"

	// Notification Defaults
	DefaultTelegramAPIBaseURL         = "https://api.telegram.org"
	DefaultNotificationTimeoutSeconds = 10
	DefaultTelegramParseMode          = "Markdown"

	// Monitor Defaults
	DefaultMonitorCheckIntervalSeconds = 300

	// Line Defaults
	DefaultHealthyMarker = "Normal"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = LogFormatConsole
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Log formats accepted by log_format
const (
	LogFormatConsole = "console"
	LogFormatText    = "text"
	LogFormatJSON    = "json"
)

// Environment variables consulted by the loader. Nothing else in the module reads the environment.
const (
	EnvConfigPath     = "METROWATCH_CONFIG_PATH"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
	EnvFetchAPIURL    = "METROWATCH_API_URL"
)
