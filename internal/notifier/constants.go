package notifier

// Message glyphs
const (
	GlyphHealthy  = "✅"
	GlyphDegraded = "⚠️"
	GlyphFrom     = "🔄"
	GlyphTo       = "➡️"
	GlyphDetails  = "📢"
)

// TelegramMaxMessageLength is the Bot API limit on message text, in characters.
const TelegramMaxMessageLength = 4096

const truncationSuffix = "..."
