package source

import (
	"sort"
	"strings"
	"unicode"
)

// SortNatural orders names the way a person reading chapter files expects:
// digit runs compare by numeric value, everything else case-insensitively.
// "c2.md" therefore sorts before "c10.md".
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

// NaturalLess reports whether a orders before b under natural comparison.
func NaturalLess(a, b string) bool {
	return compareNatural(a, b) < 0
}

func compareNatural(a, b string) int {
	ta, tb := splitTokens(a), splitTokens(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		var c int
		if ta[i].digits && tb[i].digits {
			c = compareDigits(ta[i].text, tb[i].text)
		} else {
			c = strings.Compare(strings.ToLower(ta[i].text), strings.ToLower(tb[i].text))
		}
		if c != 0 {
			return c
		}
	}
	if c := len(ta) - len(tb); c != 0 {
		return c
	}
	// identical token streams, e.g. "c01" vs "c1": fall back to bytes
	return strings.Compare(a, b)
}

type token struct {
	text   string
	digits bool
}

// splitTokens cuts a name into maximal runs of digits and non-digits.
func splitTokens(s string) []token {
	var tokens []token
	start := 0
	digits := false
	for i, r := range s {
		d := unicode.IsDigit(r)
		if i == 0 {
			digits = d
			continue
		}
		if d != digits {
			tokens = append(tokens, token{text: s[start:i], digits: digits})
			start, digits = i, d
		}
	}
	if start < len(s) {
		tokens = append(tokens, token{text: s[start:], digits: digits})
	}
	return tokens
}

// compareDigits compares two digit runs by numeric value without parsing,
// so arbitrarily long runs cannot overflow. Leading zeros are ignored.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
