package naru

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenize splits an identifier into words.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "HTTPServerError" -> ["HTTP", "Server", "Error"]
//   - "api_v2-beta" -> ["api", "v2", "beta"]
//   - "Page10Count" -> ["Page10", "Count"]
func tokenize(s string) []string {
	var tokens []string
	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			continue
		}
		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether a new token starts at runes[i]. Digits never
// start a token.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}
	if !unicode.IsUpper(prev) {
		return true
	}
	// Last upper of an acronym run: "XMLParser" splits before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// underscores returns the leading and trailing runs of '_' in s.
func underscores(s string) (lead, trail string) {
	trimmed := strings.TrimLeft(s, "_")
	lead = s[:len(s)-len(trimmed)]
	if trimmed == "" {
		return lead, ""
	}
	rest := strings.TrimRight(trimmed, "_")
	return lead, trimmed[len(rest):]
}

func snakifyString(s string) string {
	lead, trail := underscores(s)
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return lead
	}
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return lead + strings.Join(tokens, "_") + trail
}

// capitalifyString joins the words of s, each capitalized. A word following
// a lone capital is written in lower case unless its second rune is a lower
// case letter, since tokenize would read "XY" or "AV2" as one word.
func capitalifyString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lone := false
	for _, t := range tokenize(s) {
		t = strings.ToLower(t)
		r, size := utf8.DecodeRuneInString(t)
		rest := t[size:]
		if next, _ := utf8.DecodeRuneInString(rest); lone && !unicode.IsLower(next) {
			b.WriteString(t)
			lone = false
			continue
		}
		r = unicode.ToUpper(r)
		b.WriteRune(r)
		b.WriteString(rest)
		lone = rest == "" && unicode.IsUpper(r)
	}
	return b.String()
}
