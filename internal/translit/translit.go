// Package translit converts Urdu-script text to Roman Urdu.
//
// The engine is rule-based and deterministic. An exact-match override
// table resolves common words to their conventional spellings, an
// ordered suffix table splits regular morphological endings, and the
// remaining runes map one at a time with a single rune of lookahead for
// the contextual vowels. Latin words, mathematical expressions, and a
// closed set of single-letter variable names pass through untouched, so
// mixed lecture text keeps its embedded English and formulas intact.
//
// All functions are pure and safe for concurrent use.
//
// Known limitations:
//   - Urdu-range runes without a mapping are dropped from the output.
//   - Short vowels absent from the script are not reconstructed, so
//     uncommon words romanize to their bare consonant skeleton.
//   - و is rendered positionally (w word-initially, o elsewhere), not
//     phonologically.
package translit

import (
	"strings"
	"unicode"
)

// Token is a contiguous run of whitespace or of non-whitespace
// characters. Concatenating the Text of all tokens in order
// reconstructs the input exactly.
type Token struct {
	Text  string
	Start int // byte offset of the first byte
	End   int // byte offset one past the last byte
	Space bool
}

// Tokenize splits text into alternating whitespace and non-whitespace
// runs. It performs no normalization and drops nothing.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	var tokens []Token
	start := 0
	space := false
	for i, r := range text {
		s := unicode.IsSpace(r)
		if i == 0 {
			space = s
			continue
		}
		if s != space {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i, Space: space})
			start, space = i, s
		}
	}
	return append(tokens, Token{Text: text[start:], Start: start, End: len(text), Space: space})
}

// Romanize converts Urdu-script text to Roman Urdu. It is total: any
// input yields a deterministic output and empty input yields "". Runs
// of whitespace collapse to a single ASCII space and the ends are
// trimmed.
func Romanize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range Tokenize(text) {
		if tok.Space || isPreserved(tok.Text) {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(romanizeWord(tok.Text))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
