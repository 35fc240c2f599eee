package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// affixes carry no meaning of their own and are dropped by StripAffixes.
var (
	suffixTokens = map[string]bool{"id": true, "ids": true, "at": true, "utc": true, "timestamp": true}
	prefixTokens = map[string]bool{"is": true, "has": true}
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and separators (_, -, spaces, dots).
// 2. Case-fold every token.
// 3. Join the tokens.
func NormalizeIdent(s string) string {
	return strings.Join(Tokenize(s), "")
}

// StripAffixes normalizes s and drops a trailing id/ids/at/utc/timestamp token
// and a leading is/has token, unless nothing would be left.
//
//	StripAffixes("CustomerID") == "customer"
//	StripAffixes("IsActive")   == "active"
func StripAffixes(s string) string {
	tokens := Tokenize(s)

	if len(tokens) > 1 && suffixTokens[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) > 1 && prefixTokens[tokens[0]] {
		tokens = tokens[1:]
	}

	return strings.Join(tokens, "")
}

// Tokenize splits an identifier into case-folded tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "ProductIDs" -> ["product", "ids"]
func Tokenize(s string) []string {
	tokens := tokenizeCamelCase(s)
	// A Caser keeps state and is not safe for concurrent use.
	fold := cases.Fold()
	for i, t := range tokens {
		tokens[i] = fold.String(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

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

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if isSeparator(prev) {
		return false
	}

	// "orderID" splits before 'I', "order2" does not split.
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// End of acronym: "XMLParser" -> "XML" + "Parser".
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if !unicode.IsUpper(r) || !unicode.IsUpper(prev) || !hasNextLower {
		return false
	}

	// A plural acronym keeps its last capital: "ProductIDs" -> "Product" + "IDs".
	return !endsWithPluralS(runes, i+1)
}

// endsWithPluralS reports whether runes[i] is an 's' that ends its token.
func endsWithPluralS(runes []rune, i int) bool {
	if runes[i] != 's' {
		return false
	}
	if i+1 == len(runes) {
		return true
	}
	next := runes[i+1]

	return isSeparator(next) || unicode.IsUpper(next) || unicode.IsDigit(next)
}
