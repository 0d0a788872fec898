package translit

import "strings"

// romanizeWord renders a single non-preserved token. Override hits
// return immediately; otherwise the word is split into stem and known
// suffix, the stem is mapped rune by rune, and the Roman suffix is
// appended.
func romanizeWord(word string) string {
	if roman, ok := wordOverrides[word]; ok {
		return roman
	}

	stem, suffix := splitSuffix(word)
	runes := []rune(stem)

	var b strings.Builder
	b.Grow(len(stem))
	for i, r := range runes {
		switch r {
		case alif:
			b.WriteByte('a')
		case waw:
			// w word-initially, o elsewhere
			if i == 0 {
				b.WriteByte('w')
			} else {
				b.WriteByte('o')
			}
		case chotiYe:
			// Consonantal before alif (kya, pyara), vowel otherwise.
			if i+1 < len(runes) && runes[i+1] == alif {
				b.WriteByte('y')
			} else {
				b.WriteByte('i')
			}
		case bariYe:
			b.WriteByte('e')
		default:
			if isUrduRune(r) {
				b.WriteString(charMap[r]) // unmapped runes drop out
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteString(suffix)
	return b.String()
}
