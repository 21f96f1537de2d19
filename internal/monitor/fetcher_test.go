package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, url string) *StatusFetcher {
	t.Helper()
	cfg := config.NewDefaultFetchConfig()
	cfg.APIURL = url
	cfg.TimeoutSeconds = 2
	cfg.EnableHTTP2 = false
	fetcher, err := NewStatusFetcher(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	return fetcher
}

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestStatusFetcher_FetchLines(t *testing.T) {
	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[
			{"codigo": 1, "situacao": "Operação Normal", "descricao": null},
			{"codigo": "15", "situacao": "Velocidade Reduzida", "descricao": "Falha de trem"}
		]`))
	}))
	defer server.Close()

	records, err := newTestFetcher(t, server.URL).FetchLines(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0].Code.Value)
	assert.False(t, records[0].Description.Valid)
	assert.Equal(t, "15", records[1].Code.Value)
	assert.Equal(t, 1, records[1].Index)
	assert.Equal(t, config.DefaultFetchUserAgent, gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestStatusFetcher_NonSuccessStatus(t *testing.T) {
	server := serveBody(t, http.StatusForbidden, "<html>blocked</html>")

	_, err := newTestFetcher(t, server.URL).FetchLines(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTransportFailure)

	var httpErr *common.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}

func TestStatusFetcher_UndecodableBody(t *testing.T) {
	for _, body := range []string{"<html></html>", `{"status": "ok"}`, ""} {
		server := serveBody(t, http.StatusOK, body)

		_, err := newTestFetcher(t, server.URL).FetchLines(context.Background())
		assert.ErrorIs(t, err, models.ErrTransportFailure, "body %q", body)
	}
}

func TestStatusFetcher_EmptyFeed(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		server := serveBody(t, http.StatusOK, body)

		_, err := newTestFetcher(t, server.URL).FetchLines(context.Background())
		assert.ErrorIs(t, err, models.ErrEmptyFeed, "body %q", body)
		assert.NotErrorIs(t, err, models.ErrTransportFailure)
	}
}

func TestStatusFetcher_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer server.Close()

	cfg := config.NewDefaultFetchConfig()
	cfg.APIURL = server.URL
	cfg.TimeoutSeconds = 1
	fetcher, err := NewStatusFetcher(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = fetcher.FetchLines(context.Background())
	assert.ErrorIs(t, err, models.ErrTransportFailure)
}

func TestStatusFetcher_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestFetcher(t, url).FetchLines(context.Background())
	assert.ErrorIs(t, err, models.ErrTransportFailure)
}
