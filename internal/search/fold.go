package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold приводит строку к нижнему регистру и убирает диакритические знаки.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Contains сообщает, содержит ли s подстроку sub без учёта регистра и диакритики.
func Contains(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}
