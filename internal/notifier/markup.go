package notifier

import (
	"html"
	"strings"
)

// Telegram parse modes
const (
	ParseModeMarkdown   = "Markdown"
	ParseModeMarkdownV2 = "MarkdownV2"
	ParseModeHTML       = "HTML"
)

// markup places upstream text into a message for one Telegram parse mode.
type markup interface {
	text(s string) string
	bold(s string) string
	italic(s string) string
}

func markupFor(parseMode string) markup {
	switch parseMode {
	case ParseModeMarkdown:
		return legacyMarkdown{}
	case ParseModeMarkdownV2:
		return markdownV2{}
	case ParseModeHTML:
		return htmlMarkup{}
	default:
		return plainText{}
	}
}

type plainText struct{}

func (plainText) text(s string) string   { return s }
func (plainText) bold(s string) string   { return s }
func (plainText) italic(s string) string { return s }

// legacyMarkdown honours backslash escapes only outside entities, and an
// entity runs until the next delimiter. A delimiter inside entity text closes
// the entity, is emitted escaped, and a new entity opens after it.
type legacyMarkdown struct{}

var legacyMarkdownEscaper = strings.NewReplacer(`_`, `\_`, `*`, `\*`, "`", "\\`", `[`, `\[`)

func (legacyMarkdown) text(s string) string   { return legacyMarkdownEscaper.Replace(s) }
func (legacyMarkdown) bold(s string) string   { return legacyEntity(s, "*") }
func (legacyMarkdown) italic(s string) string { return legacyEntity(s, "_") }

func legacyEntity(s, delim string) string {
	parts := strings.Split(s, delim)
	for i, part := range parts {
		if part != "" {
			parts[i] = delim + part + delim
		}
	}
	return strings.Join(parts, `\`+delim)
}

type markdownV2 struct{}

var markdownV2Escaper = func() *strings.Replacer {
	var pairs []string
	for _, c := range "\\_*[]()~`>#+-=|{}.!" {
		pairs = append(pairs, string(c), `\`+string(c))
	}
	return strings.NewReplacer(pairs...)
}()

func (markdownV2) text(s string) string   { return markdownV2Escaper.Replace(s) }
func (markdownV2) bold(s string) string   { return "*" + markdownV2Escaper.Replace(s) + "*" }
func (markdownV2) italic(s string) string { return "_" + markdownV2Escaper.Replace(s) + "_" }

type htmlMarkup struct{}

func (htmlMarkup) text(s string) string   { return html.EscapeString(s) }
func (htmlMarkup) bold(s string) string   { return "<b>" + html.EscapeString(s) + "</b>" }
func (htmlMarkup) italic(s string) string { return "<i>" + html.EscapeString(s) + "</i>" }
