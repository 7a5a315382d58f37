package engine

import "unicode"

// Precomputed composition tables for every (base, mark, tone) combination.
// All tables are lowercase; uppercase forms go through unicode case mapping,
// which covers the full Vietnamese range.

// toneTable maps an (optionally marked) vowel to its five toned forms,
// indexed by Tone.
var toneTable = map[rune][6]rune{
	'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// markTable maps an ASCII base letter to its marked forms.
var markTable = map[rune]map[VowelMark]rune{
	'a': {VowelHat: 'â', VowelBreve: 'ă'},
	'e': {VowelHat: 'ê'},
	'o': {VowelHat: 'ô', VowelHorn: 'ơ'},
	'u': {VowelHorn: 'ư'},
	'd': {VowelDBar: 'đ'},
}

// markedBase is the inverse of markTable.
var markedBase = map[rune]struct {
	base rune
	mark VowelMark
}{
	'ă': {'a', VowelBreve},
	'â': {'a', VowelHat},
	'ê': {'e', VowelHat},
	'ô': {'o', VowelHat},
	'ơ': {'o', VowelHorn},
	'ư': {'u', VowelHorn},
	'đ': {'d', VowelDBar},
}

// toneOf is built from toneTable in init: toned rune -> (un-toned rune, tone).
var toneOf = map[rune]struct {
	plain rune
	tone  Tone
}{}

func init() {
	for plain, forms := range toneTable {
		for t, r := range forms {
			if Tone(t) != ToneNone {
				toneOf[r] = struct {
					plain rune
					tone  Tone
				}{plain, Tone(t)}
			}
		}
	}
}

// composeMark applies a vowel mark to an ASCII base letter.
func composeMark(base rune, mark VowelMark) rune {
	if mark == VowelNone {
		return base
	}
	if marks, ok := markTable[base]; ok {
		if r, ok := marks[mark]; ok {
			return r
		}
	}
	return base
}

// composeTone applies a tone to an (optionally marked) lowercase vowel.
func composeTone(r rune, tone Tone) rune {
	if forms, ok := toneTable[r]; ok {
		return forms[tone]
	}
	return r
}

// Decompose splits a Vietnamese rune into its ASCII base letter, vowel mark,
// tone and case. Runes outside the Vietnamese inventory come back as their
// lowercase form with no mark and no tone.
func Decompose(r rune) (base rune, mark VowelMark, tone Tone, upper bool) {
	lower := unicode.ToLower(r)
	upper = lower != r
	if t, ok := toneOf[lower]; ok {
		lower, tone = t.plain, t.tone
	}
	if m, ok := markedBase[lower]; ok {
		return m.base, m.mark, tone, upper
	}
	return lower, VowelNone, tone, upper
}

func toUpper(r rune) rune {
	return unicode.ToUpper(r)
}

// isVowelBase reports whether an ASCII base letter is a Vietnamese vowel.
func isVowelBase(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// isConsonantBase reports whether an ASCII base letter is a Vietnamese
// consonant. đ is represented as base 'd' with VowelDBar.
func isConsonantBase(r rune) bool {
	switch r {
	case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}

// IsVietnameseVowel reports whether a rune renders a Vietnamese vowel,
// with or without diacritics.
func IsVietnameseVowel(r rune) bool {
	base, _, _, _ := Decompose(r)
	return isVowelBase(base)
}
