package expr

import (
	"regexp"
	"strings"
)

var (
	legacyProperty = regexp.MustCompile(`\$\{property\.([\w.]+)\}`)
	legacyHeader   = regexp.MustCompile(`\$\{header\.([\w.]+)\}`)
	placeholder    = regexp.MustCompile(`\$\{([\w.]+)\}`)
)

// Sanitize rewrites legacy simple-language syntax and flattens the text into
// a single line that is safe inside a double-quoted attribute.
//
// Rules, in order:
//  1. ${property.NAME} becomes ${exchangeProperty.NAME}
//  2. ${header.NAME} becomes ${headers.NAME}
//  3. double quotes become single quotes
//  4. newlines are removed
//  5. any other ${NAME} placeholder becomes {NAME}
//
// Sanitize is idempotent.
func Sanitize(text string) string {
	if text == "" {
		return text
	}

	text = legacyProperty.ReplaceAllString(text, `$${exchangeProperty.$1}`)
	text = legacyHeader.ReplaceAllString(text, `$${headers.$1}`)
	text = strings.ReplaceAll(text, `"`, `'`)
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")

	// Dropping a '$' can expose a new placeholder ("$${a}"), so run to a fixpoint.
	for {
		next := placeholder.ReplaceAllStringFunc(text, bracePlaceholder)
		if next == text {
			return text
		}
		text = next
	}
}

func bracePlaceholder(match string) string {
	inner := match[2 : len(match)-1]
	if isExchangeReference(inner) {
		return match
	}
	return "{" + inner + "}"
}

// isExchangeReference reports whether a placeholder body is one of the
// forms kept verbatim by the simple language.
func isExchangeReference(inner string) bool {
	return strings.HasPrefix(inner, "exchangeProperty.") || strings.HasPrefix(inner, "headers.")
}
