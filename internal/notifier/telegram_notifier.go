package notifier

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/httpclient"
	"github.com/aleister1102/metrowatch/internal/models"

	"github.com/rs/zerolog"
)

// TelegramNotifier delivers messages through the Telegram Bot API sendMessage method.
type TelegramNotifier struct {
	cfg        config.NotificationConfig
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewTelegramNotifier creates a TelegramNotifier. When httpClient is nil one is built
// with the configured delivery timeout.
func NewTelegramNotifier(cfg config.NotificationConfig, httpClient *httpclient.HTTPClient, logger zerolog.Logger) (*TelegramNotifier, error) {
	moduleLogger := logger.With().Str("component", "TelegramNotifier").Logger()

	if httpClient == nil {
		var err error
		httpClient, err = httpclient.NewHTTPClientBuilder(moduleLogger).
			WithTimeout(cfg.Timeout()).
			WithFollowRedirects(false).
			Build()
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram http client: %w", err)
		}
	}

	if !cfg.Enabled() {
		moduleLogger.Info().Msg("Telegram credentials not configured, notifications are disabled")
	}

	return &TelegramNotifier{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     moduleLogger,
	}, nil
}

// Enabled reports whether messages will actually be sent.
func (tn *TelegramNotifier) Enabled() bool {
	return tn.cfg.Enabled()
}

// Send posts text to the configured chat. Missing credentials make it a no-op.
// Any failure is returned wrapping models.ErrNotificationDelivery.
func (tn *TelegramNotifier) Send(ctx context.Context, text string) error {
	if !tn.cfg.Enabled() {
		tn.logger.Debug().Msg("Telegram not configured, skipping notification")
		return nil
	}

	form := url.Values{}
	form.Set("chat_id", tn.cfg.TelegramChatID)
	form.Set("text", text)
	if tn.cfg.ParseMode != "" {
		form.Set("parse_mode", tn.cfg.ParseMode)
	}

	if tn.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tn.cfg.Timeout())
		defer cancel()
	}

	resp, err := tn.httpClient.Do(&httpclient.HTTPRequest{
		URL:     tn.endpoint(),
		Method:  "POST",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded", "Accept": "application/json"},
		Body:    strings.NewReader(form.Encode()),
		Context: ctx,
		LogURL:  redactToken(tn.endpoint(), tn.cfg.TelegramBotToken),
	})
	if err != nil {
		// the error carries the URL, which embeds the bot token
		tn.logger.Error().Msg("Failed to reach Telegram API")
		return fmt.Errorf("%w: request failed: %s", models.ErrNotificationDelivery, redactToken(err.Error(), tn.cfg.TelegramBotToken))
	}

	if !resp.IsSuccess() {
		snippet := resp.BodySnippet(512)
		tn.logger.Error().Int("status_code", resp.StatusCode).Str("response_body", snippet).Msg("Telegram notification failed")
		return fmt.Errorf("%w: telegram responded with status %d: %s", models.ErrNotificationDelivery, resp.StatusCode, snippet)
	}

	tn.logger.Info().Int("status_code", resp.StatusCode).Msg("Telegram notification sent successfully")
	return nil
}

func (tn *TelegramNotifier) endpoint() string {
	return fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(tn.cfg.TelegramAPIBaseURL, "/"), tn.cfg.TelegramBotToken)
}

func redactToken(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "<redacted>")
}
