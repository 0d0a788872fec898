package translit

// Urdu is written in the Arabic Unicode block.
const (
	urduBlockStart = 0x0600
	urduBlockEnd   = 0x06FF
)

// Digit rows. Spoken-lecture transcripts mix both.
const (
	extArabicIndicZero = 0x06F0 // ۰..۹, the row Urdu keyboards produce
	arabicIndicZero    = 0x0660 // ٠..٩, the Arabic row
)

// Contextual letters rendered positionally in romanizeWord. They are
// excluded from charMap so a table lookup can never shadow the
// positional rule.
const (
	alif    = 'ا' // U+0627
	waw     = 'و' // U+0648
	chotiYe = 'ی' // U+06CC
	bariYe  = 'ے' // U+06D2
)

var charMap = buildCharMap()

func buildCharMap() map[rune]string {
	m := map[rune]string{
		'آ': "aa",
		'ب': "b",
		'پ': "p",
		'ت': "t",
		'ٹ': "t",
		'ث': "s",
		'ج': "j",
		'چ': "ch",
		'ح': "h", // U+062D, bari he
		'خ': "kh",
		'د': "d",
		'ڈ': "d",
		'ذ': "z",
		'ر': "r",
		'ڑ': "r",
		'ز': "z",
		'ژ': "zh",
		'س': "s",
		'ش': "sh",
		'ص': "s",
		'ض': "z",
		'ط': "t",
		'ظ': "z",
		'ع': "a",
		'غ': "gh",
		'ف': "f",
		'ق': "q",
		'ک': "k",
		'گ': "g",
		'ل': "l",
		'م': "m",
		'ن': "n",
		'ں': "n", // noon ghunna
		'ہ': "h", // U+06C1, gol he
		'ھ': "h", // U+06BE, do-chashmi he
		'ئ': "e",
		'ۃ': "h",
		'ة': "h",

		// Punctuation
		'۔': ".",
		'،': ",",
		'؟': "?",
	}

	for i := range 10 {
		m[rune(extArabicIndicZero+i)] = string(rune('0' + i))
		m[rune(arabicIndicZero+i)] = string(rune('0' + i))
	}
	return m
}

func isUrduRune(r rune) bool {
	return r >= urduBlockStart && r <= urduBlockEnd
}

func containsUrdu(s string) bool {
	for _, r := range s {
		if isUrduRune(r) {
			return true
		}
	}
	return false
}
