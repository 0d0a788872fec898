package translit

import "strings"

// suffixRule rewrites a word-final Urdu cluster as a fixed Roman ending.
type suffixRule struct {
	urdu  string
	roman string
}

// Scanned front to back, first valid match wins. A longer suffix must
// come before any suffix it ends with, so یوں wins over وں.
var suffixRules = []suffixRule{
	{"یوں", "iyon"}, // larkiyon
	{"وں", "on"},    // larkon
	{"یاں", "iyan"}, // larkiyan
	{"یں", "ein"},   // kitabein
	{"ات", "at"},    // maloomat
	{"گا", "ga"},
	{"گی", "gi"},
	{"گے", "ge"},
	{"کر", "kar"},
}

// splitSuffix splits word on the first rule whose suffix matches and
// leaves a non-empty stem. A word that IS a suffix stays whole, so the
// stem is never empty.
func splitSuffix(word string) (stem, roman string) {
	for _, rule := range suffixRules {
		if strings.HasSuffix(word, rule.urdu) && len(word) > len(rule.urdu) {
			return word[:len(word)-len(rule.urdu)], rule.roman
		}
	}
	return word, ""
}
