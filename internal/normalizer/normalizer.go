package normalizer

import (
	"fmt"

	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
)

// LineNormalizer turns upstream records into canonical LineStatus values.
type LineNormalizer struct {
	colors map[string]string
	logger zerolog.Logger
}

// NewLineNormalizer builds a normalizer from the built-in color table plus overrides.
// An override with an empty color removes the built-in entry.
func NewLineNormalizer(overrides map[string]string, logger zerolog.Logger) *LineNormalizer {
	colors := make(map[string]string, len(DefaultLineColors)+len(overrides))
	for code, color := range DefaultLineColors {
		colors[code] = color
	}
	for code, color := range overrides {
		code = NormalizeCode(code)
		color = NormalizeText(color)
		if color == "" {
			delete(colors, code)
			continue
		}
		colors[code] = color
	}

	return &LineNormalizer{
		colors: colors,
		logger: logger.With().Str("component", "LineNormalizer").Logger(),
	}
}

// DisplayName renders "Line {code} - {color}", or "Line {code}" when the color is unknown.
func (n *LineNormalizer) DisplayName(code string) string {
	if color, ok := n.colors[code]; ok {
		return fmt.Sprintf("Line %s - %s", code, color)
	}
	return fmt.Sprintf("Line %s", code)
}

// Normalize converts one raw record. A missing or blank codigo or situacao
// yields a *models.MalformedRecordError.
func (n *LineNormalizer) Normalize(raw models.RawRecord) (models.LineStatus, error) {
	code := ""
	if raw.Code.Valid {
		code = NormalizeCode(raw.Code.Value)
	}
	if code == "" {
		return models.LineStatus{}, &models.MalformedRecordError{Index: raw.Index, Field: "codigo"}
	}

	status := ""
	if raw.Status.Valid {
		status = NormalizeText(raw.Status.Value)
	}
	if status == "" {
		return models.LineStatus{}, &models.MalformedRecordError{Index: raw.Index, Field: "situacao", Code: code}
	}

	description := ""
	if raw.Description.Valid {
		description = NormalizeText(raw.Description.Value)
	}

	return models.LineStatus{
		Code:        code,
		DisplayName: n.DisplayName(code),
		Status:      status,
		Description: description,
	}, nil
}

// NormalizeAll converts records in payload order, skipping and collecting malformed ones.
func (n *LineNormalizer) NormalizeAll(raws []models.RawRecord) ([]models.LineStatus, []error) {
	lines := make([]models.LineStatus, 0, len(raws))
	var malformed []error

	for _, raw := range raws {
		line, err := n.Normalize(raw)
		if err != nil {
			n.logger.Warn().Err(err).Int("index", raw.Index).Msg("Skipping malformed line record")
			malformed = append(malformed, err)
			continue
		}
		lines = append(lines, line)
	}

	return lines, malformed
}
