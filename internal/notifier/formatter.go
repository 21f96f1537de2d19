package notifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/metrowatch/internal/models"
)

// MessageFormatter renders transition events as chat messages.
type MessageFormatter struct {
	healthyMarker string
	markup        markup
}

// NewMessageFormatter creates a formatter. A status is healthy when it contains healthyMarker.
// Upstream text is escaped for parseMode; an empty or unknown mode renders plain text.
func NewMessageFormatter(healthyMarker, parseMode string) *MessageFormatter {
	return &MessageFormatter{healthyMarker: healthyMarker, markup: markupFor(parseMode)}
}

// IsHealthy classifies a status by substring match on the healthy marker,
// so both "Normal" and "Operação Normal" count as healthy.
func (f *MessageFormatter) IsHealthy(status string) bool {
	return f.healthyMarker != "" && strings.Contains(status, f.healthyMarker)
}

// Glyph returns the leading severity glyph for a new status.
func (f *MessageFormatter) Glyph(status string) string {
	if f.IsHealthy(status) {
		return GlyphHealthy
	}
	return GlyphDegraded
}

// Render produces the message text for one transition. Messages over the
// Telegram limit lose the tail of the description first so markup stays balanced.
func (f *MessageFormatter) Render(event models.TransitionEvent) string {
	description := strings.TrimSpace(event.Line.Description)
	msg := f.render(event, description)

	for description != "" {
		over := utf8.RuneCountInString(msg) - TelegramMaxMessageLength
		if over <= 0 {
			break
		}
		runes := []rune(description)
		keep := len(runes) - over - 2*len(truncationSuffix)
		if keep <= 0 {
			description = ""
		} else {
			description = string(runes[:keep]) + truncationSuffix
		}
		msg = f.render(event, description)
	}

	return truncateString(msg, TelegramMaxMessageLength)
}

func (f *MessageFormatter) render(event models.TransitionEvent, description string) string {
	m := f.markup
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", f.Glyph(event.NewStatus), m.bold(event.Line.DisplayName))
	fmt.Fprintf(&b, "%s %s %s\n", GlyphFrom, m.text("From:"), m.text(event.PreviousStatus))
	fmt.Fprintf(&b, "%s %s %s", GlyphTo, m.text("To:"), m.bold(event.NewStatus))

	if description != "" {
		fmt.Fprintf(&b, "\n\n%s %s\n%s", GlyphDetails, m.bold("Details:"), m.italic(description))
	}
	return b.String()
}

func truncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength-len(truncationSuffix)]) + truncationSuffix
}
