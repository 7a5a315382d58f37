package engine

// Vietnamese orthographic rules: which syllable shapes are legal, and where
// a tone mark lands on the nucleus.

// validInitials are the legal Vietnamese initial consonant clusters.
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"ngh": true,
}

// validFinals are the legal Vietnamese final consonant clusters.
var validFinals = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// spellingRules lists onset+vowel combinations the orthography forbids
// (the correct spelling uses a different onset: ce -> ke, ka -> ca, ...).
var spellingRules = map[string]bool{
	"ce": true, "ci": true, "cy": true,
	"ka": true, "ko": true, "ku": true,
	"ge": true,
	"nge": true, "ngi": true,
	"gha": true, "gho": true, "ghu": true,
	"ngha": true, "ngho": true, "nghu": true,
}

// validShape checks a fully-consumed parse against the onset/coda
// inventories and the spelling rules. Shapes still missing a nucleus are
// legal while the word is in progress, as long as no coda follows.
func validShape(gs []Grapheme, p syllableParts) bool {
	if len(p.nucleus) == 0 {
		return len(p.coda) == 0 && validInitial(partString(gs, p.onset))
	}
	if len(p.nucleus) > 3 {
		return false
	}
	if !validInitial(partString(gs, p.onset)) {
		return false
	}
	if len(p.coda) > 0 && !validFinals[partString(gs, p.coda)] {
		return false
	}
	onset := partString(gs, p.onset)
	if onset != "" {
		first := gs[p.nucleus[0]].Base
		if spellingRules[onset+string(first)] {
			return false
		}
	}
	return true
}

func validInitial(s string) bool {
	return s == "" || validInitials[s]
}

// tonePosition determines which grapheme receives the tone mark.
// Rules, in priority order:
//  1. A vowel already bearing a diacritic mark takes the tone; with two
//     marked vowels (ươ) the second one does.
//  2. A single-vowel nucleus takes it trivially.
//  3. With a coda, the tone goes on the second vowel (toán, hoạch).
//  4. Without a coda, a triphthong takes it on the middle vowel (ngoài)
//     and a diphthong on the first (chào, mùa) — except oa, oe, uy, where
//     the style decides: traditional on the second (hoà), modern on the
//     first (hòa).
//
// Returns -1 when the word has no nucleus; the tone is then dropped.
func tonePosition(gs []Grapheme, style ToneStyle) int {
	p := parseGraphemes(gs)
	n := len(p.nucleus)
	if n == 0 {
		return -1
	}
	for i := n - 1; i >= 0; i-- {
		idx := p.nucleus[i]
		if gs[idx].Mark != VowelNone {
			return idx
		}
	}
	if n == 1 {
		return p.nucleus[0]
	}
	if len(p.coda) > 0 {
		return p.nucleus[1]
	}
	if n >= 3 {
		return p.nucleus[1]
	}
	first := gs[p.nucleus[0]].Base
	second := gs[p.nucleus[1]].Base
	openSpecial := (first == 'o' && (second == 'a' || second == 'e')) ||
		(first == 'u' && second == 'y')
	if openSpecial && style == StyleTraditional {
		return p.nucleus[1]
	}
	return p.nucleus[0]
}

// canTakeTone reports whether a tone may legally be applied to the word.
// With free_tone set, only a nucleus is required; otherwise the whole
// syllable shape must be valid.
func canTakeTone(gs []Grapheme, freeTone bool) bool {
	p := parseGraphemes(gs)
	if len(p.nucleus) == 0 {
		return false
	}
	if freeTone {
		return true
	}
	return p.valid
}
