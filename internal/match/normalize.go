package match

import (
	"slices"
	"strings"
	"unicode"
)

// accessor affix tokens dropped by NormalizeAccessor
var (
	accessorPrefixes = []string{"get", "set", "is", "has"}
	accessorSuffixes = []string{"ids", "id"}
)

// NormalizeIdent normalizes an identifier for fuzzy matching:
// CamelCase and separator-delimited words are joined and lowercased,
// so "orderId", "order_id" and "OrderID" all become "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeAccessor normalizes like NormalizeIdent and also drops a leading
// accessor token and a trailing identifier token, so "GetUserID" and "user"
// compare equal. A name made of a single token is never emptied.
func NormalizeAccessor(s string) string {
	tokens := TokenizeIdent(s)

	if len(tokens) > 1 && slices.Contains(accessorPrefixes, tokens[0]) {
		tokens = tokens[1:]
	}

	if len(tokens) > 1 && slices.Contains(accessorSuffixes, tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(tokens, "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
//   - "OrderID" -> ["order", "id"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "user_first-name" -> ["user", "first", "name"]
func TokenizeIdent(s string) []string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenize(s string) []string {
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

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower-to-upper transition ("orderID" splits before 'I')
// or the end of an acronym ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
