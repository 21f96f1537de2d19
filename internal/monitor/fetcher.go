package monitor

import (
	"context"
	"fmt"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/httpclient"
	"github.com/aleister1102/metrowatch/internal/models"

	"github.com/rs/zerolog"
)

// StatusFetcher retrieves the raw line status feed from the upstream API.
type StatusFetcher struct {
	httpClient *httpclient.HTTPClient
	cfg        config.FetchConfig
	logger     zerolog.Logger
}

// NewStatusFetcher creates a StatusFetcher. When httpClient is nil one is built from cfg.
func NewStatusFetcher(cfg config.FetchConfig, httpClient *httpclient.HTTPClient, logger zerolog.Logger) (*StatusFetcher, error) {
	moduleLogger := logger.With().Str("component", "StatusFetcher").Logger()

	if httpClient == nil {
		var err error
		httpClient, err = httpclient.NewHTTPClientBuilder(moduleLogger).
			WithTimeout(cfg.Timeout()).
			WithUserAgent(cfg.UserAgent).
			WithCustomHeaders(cfg.Headers).
			WithMaxContentSize(cfg.MaxContentSize).
			WithHTTP2(cfg.EnableHTTP2).
			WithInsecureSkipVerify(cfg.InsecureSkipVerify).
			Build()
		if err != nil {
			return nil, common.WrapError(err, "failed to create fetch http client")
		}
	}

	return &StatusFetcher{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     moduleLogger,
	}, nil
}

// FetchLines performs one GET against the status API. Network errors, non-2xx
// responses and undecodable bodies wrap models.ErrTransportFailure; a decodable
// but empty feed returns models.ErrEmptyFeed. There is no retry.
func (f *StatusFetcher) FetchLines(ctx context.Context) ([]models.RawRecord, error) {
	resp, err := f.httpClient.Do(&httpclient.HTTPRequest{
		URL:     f.cfg.APIURL,
		Method:  "GET",
		Headers: map[string]string{"Accept": "application/json"},
		Context: ctx,
	})
	if err != nil {
		f.logger.Error().Err(err).Str("url", f.cfg.APIURL).Msg("Failed to execute HTTP request")
		return nil, fmt.Errorf("%w: %w", models.ErrTransportFailure, err)
	}

	if !resp.IsSuccess() {
		snippet := resp.BodySnippet(200)
		f.logger.Warn().Str("url", f.cfg.APIURL).Int("status_code", resp.StatusCode).Str("body", snippet).Msg("Received non-OK HTTP status")
		return nil, fmt.Errorf("%w: %w", models.ErrTransportFailure, common.NewHTTPErrorWithURL(resp.StatusCode, snippet, f.cfg.APIURL))
	}

	records, err := models.DecodeRawRecords(resp.Body)
	if err != nil {
		f.logger.Error().Err(err).Str("body", resp.BodySnippet(200)).Msg("Failed to decode status feed")
		return nil, fmt.Errorf("%w: undecodable status feed: %w", models.ErrTransportFailure, err)
	}
	if len(records) == 0 {
		f.logger.Warn().Str("url", f.cfg.APIURL).Msg("Status feed is empty")
		return nil, models.ErrEmptyFeed
	}

	f.logger.Debug().Int("records", len(records)).Int("size", len(resp.Body)).Msg("Status feed fetched successfully")
	return records, nil
}
