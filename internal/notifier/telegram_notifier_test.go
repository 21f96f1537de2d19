package notifier

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotificationConfig(baseURL string) config.NotificationConfig {
	cfg := config.NewDefaultNotificationConfig()
	cfg.TelegramAPIBaseURL = baseURL
	cfg.TelegramBotToken = "123:secret"
	cfg.TelegramChatID = "-1001"
	return cfg
}

func TestTelegramNotifier_Send(t *testing.T) {
	var gotPath, gotChatID, gotText, gotParseMode, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotChatID = r.PostForm.Get("chat_id")
		gotText = r.PostForm.Get("text")
		gotParseMode = r.PostForm.Get("parse_mode")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tn, err := NewTelegramNotifier(testNotificationConfig(server.URL), nil, zerolog.Nop())
	require.NoError(t, err)

	err = tn.Send(context.Background(), "✅ *Line 1 - Azul*")
	require.NoError(t, err)

	assert.Equal(t, "/bot123:secret/sendMessage", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "-1001", gotChatID)
	assert.Equal(t, "✅ *Line 1 - Azul*", gotText)
	assert.Equal(t, "Markdown", gotParseMode)
}

func TestTelegramNotifier_MissingCredentialsIsNoop(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	tests := []struct {
		name   string
		token  string
		chatID string
	}{
		{name: "no token", chatID: "-1001"},
		{name: "no chat id", token: "123:secret"},
		{name: "neither"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testNotificationConfig(server.URL)
			cfg.TelegramBotToken = tt.token
			cfg.TelegramChatID = tt.chatID

			tn, err := NewTelegramNotifier(cfg, nil, zerolog.Nop())
			require.NoError(t, err)
			assert.False(t, tn.Enabled())
			assert.NoError(t, tn.Send(context.Background(), "hello"))
		})
	}
	assert.False(t, called)
}

func TestTelegramNotifier_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: can't parse entities"}`))
	}))
	defer server.Close()

	tn, err := NewTelegramNotifier(testNotificationConfig(server.URL), nil, zerolog.Nop())
	require.NoError(t, err)

	err = tn.Send(context.Background(), "*broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotificationDelivery)
	assert.Contains(t, err.Error(), "400")
}

func TestTelegramNotifier_TransportFailureRedactsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	tn, err := NewTelegramNotifier(testNotificationConfig(baseURL), nil, zerolog.Nop())
	require.NoError(t, err)

	err = tn.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotificationDelivery)
	assert.NotContains(t, err.Error(), "123:secret")
}

func TestTelegramNotifier_DebugLogsRedactToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	tn, err := NewTelegramNotifier(testNotificationConfig(server.URL), nil, logger)
	require.NoError(t, err)
	require.NoError(t, tn.Send(context.Background(), "hello"))

	out := buf.String()
	assert.Contains(t, out, "HTTP request completed")
	assert.Contains(t, out, "/bot<redacted>/sendMessage")
	assert.NotContains(t, out, "123:secret")
}

func TestTelegramNotifier_LogLinesCarryOneComponent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	tn, err := NewTelegramNotifier(testNotificationConfig(server.URL), nil, logger)
	require.NoError(t, err)
	require.NoError(t, tn.Send(context.Background(), "hello"))

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		assert.Equal(t, 1, bytes.Count(line, []byte(`"component":`)), string(line))
	}
	assert.Contains(t, buf.String(), `"subcomponent":"HTTPClient"`)
}
