package config

import "time"

// NotificationConfig defines configuration for Telegram notifications.
// Empty credentials disable delivery without failing the run.
type NotificationConfig struct {
	TelegramBotToken   string `json:"telegram_bot_token,omitempty" yaml:"telegram_bot_token,omitempty"`
	TelegramChatID     string `json:"telegram_chat_id,omitempty" yaml:"telegram_chat_id,omitempty"`
	TelegramAPIBaseURL string `json:"telegram_api_base_url,omitempty" yaml:"telegram_api_base_url,omitempty" validate:"required,url"`
	ParseMode          string `json:"parse_mode,omitempty" yaml:"parse_mode,omitempty" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
	TimeoutSeconds     int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=1,max=120"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		TelegramAPIBaseURL: DefaultTelegramAPIBaseURL,
		ParseMode:          DefaultTelegramParseMode,
		TimeoutSeconds:     DefaultNotificationTimeoutSeconds,
	}
}

// Enabled reports whether both credentials are present
func (c NotificationConfig) Enabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// Timeout returns the delivery timeout as a duration
func (c NotificationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
