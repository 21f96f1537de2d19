package normalizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and converts to Unicode NFC, so that
// "Operação" sent precomposed or decomposed compares equal across cycles.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCode canonicalizes a line code. Numeric codes lose leading zeros
// ("01" and "1" are the same line); anything else is only trimmed.
func NormalizeCode(code string) string {
	code = NormalizeText(code)
	if code == "" || strings.Trim(code, "0123456789") != "" {
		return code
	}
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
