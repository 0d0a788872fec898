package translit

import "strings"

// formulaSymbols marks a token as mathematical notation. The whole token
// is kept verbatim even when Urdu characters are mixed in.
const formulaSymbols = "=+-*/^"

// protectedVariables is the closed set of single-letter names used on
// the lecture slides this engine was built for. Not a general
// identifier rule.
var protectedVariables = map[string]bool{
	"A": true, "B": true, "C": true,
	"F": true, "L": true, "M": true,
	"X": true, "Y": true, "Z": true,
}

// isPreserved reports whether a token bypasses transliteration. Checks
// run in priority order: pure non-Urdu text, then formula tokens, then
// protected variable names.
func isPreserved(token string) bool {
	if !containsUrdu(token) {
		return true
	}
	if strings.ContainsAny(token, formulaSymbols) {
		return true
	}
	return protectedVariables[strings.TrimSpace(token)]
}
