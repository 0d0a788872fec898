package translit

import "testing"

func TestRomanizeWordCharMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"اسلام", "aslam"},
		{"بول", "bol"},
		{"لوگ", "log"},    // waw after the first rune reads o
		{"وں", "wn"},      // waw word-initially reads w
		{"پیار", "pyar"},  // ye before alif is consonantal
		{"دین", "din"},    // ye elsewhere is a vowel
		{"ہے۔", "he."},    // attached punctuation defeats the override
		{"(سوال)", "(soal)"}, // non-Urdu runes copy through
		{"جاؤ", "ja"},     // ؤ has no mapping and drops out
		{"۱۲۳", "123"},
		{"١٢٣", "123"},
	}
	for _, tt := range tests {
		got := romanizeWord(tt.input)
		if got != tt.want {
			t.Errorf("romanizeWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRomanizeWordOverrides(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ہے", "hai"},
		{"نظریہ", "nazriya"},
		{"لڑکوں", "larkon"},  // override wins over the وں suffix rule
		{"کیوں", "kyun"},     // override wins over the یوں suffix rule
		{"سکتا", "sakta"},
	}
	for _, tt := range tests {
		got := romanizeWord(tt.input)
		if got != tt.want {
			t.Errorf("romanizeWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRomanizeWordSuffixes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"باتیں", "batein"},
		{"معلومات", "malomat"},
		{"جاکر", "jakar"},
		{"گا", "ga"}, // a bare suffix stays whole
	}
	for _, tt := range tests {
		got := romanizeWord(tt.input)
		if got != tt.want {
			t.Errorf("romanizeWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitSuffix(t *testing.T) {
	tests := []struct {
		input     string
		wantStem  string
		wantRoman string
	}{
		{"لڑکیوں", "لڑک", "iyon"}, // یوں must win over وں
		{"باتیں", "بات", "ein"},
		{"معلومات", "معلوم", "at"},
		{"گا", "گا", ""}, // the word IS the suffix
		{"کر", "کر", ""},
		{"bat", "bat", ""},
	}
	for _, tt := range tests {
		stem, roman := splitSuffix(tt.input)
		if stem != tt.wantStem || roman != tt.wantRoman {
			t.Errorf("splitSuffix(%q) = (%q, %q), want (%q, %q)",
				tt.input, stem, roman, tt.wantStem, tt.wantRoman)
		}
	}
}
