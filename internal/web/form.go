package web

import (
	"net/url"
	"strings"
)

// parseForm decodes a urlencoded body without rejecting malformed input.
// Pairs are split on '&' only, '+' becomes a space, and a '%' that does not
// start a valid escape is kept as a literal. Pairs without '=' or with an
// empty value are dropped.
func parseForm(body string) url.Values {
	form := url.Values{}
	for _, pair := range strings.Split(body, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		form.Add(unescapeLoose(key), unescapeLoose(value))
	}
	return form
}

// unescapeLoose decodes %XX escapes and '+' in s, leaving invalid escapes as-is.
func unescapeLoose(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
