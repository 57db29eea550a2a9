package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy matching: CamelCase is split
// into tokens, everything is lowercased and separators are dropped, so
// list_head, ListHead and LIST-HEAD all become "listhead".
func NormalizeIdent(s string) string {
	return stripSeparators(strings.ToLower(strings.Join(tokenizeCamelCase(s), "")))
}

// typeSuffixes are naming conventions for C type names, longest first.
var typeSuffixes = []string{"_struct", "_type", "_t", "_s", "_u", "_e"}

// NormalizeIdentWithSuffixStrip removes one conventional C type suffix
// (_t, _s, _struct, ...) and a leading run of underscores before
// normalizing, so __u32 and u32_t both become "u32".
func NormalizeIdentWithSuffixStrip(s string) string {
	trimmed := strings.TrimLeft(s, "_")
	if trimmed == "" {
		trimmed = s
	}

	lower := strings.ToLower(trimmed)
	for _, suffix := range typeSuffixes {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			trimmed = trimmed[:len(trimmed)-len(suffix)]

			break
		}
	}

	return NormalizeIdent(trimmed)
}

// tokenizeCamelCase splits an identifier into tokens at separators and at
// case transitions.
// Examples:
//   - "ListHead" -> ["List", "Head"]
//   - "list_head" -> ["list", "head"]
//   - "HTTPRequest" -> ["HTTP", "Request"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator returns true if the rune separates words in an identifier.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "listHead": split before 'H'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTTPRequest": split before 'R', the end of the acronym.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// stripSeparators removes separators from a string.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return r
	}, s)
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
