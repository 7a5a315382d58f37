package engine

import "unicode"

// TelexMethod implements the Telex input method.
type TelexMethod struct{}

// NewTelexMethod creates a new Telex input method.
func NewTelexMethod() *TelexMethod {
	return &TelexMethod{}
}

// Name returns the method name.
func (t *TelexMethod) Name() string {
	return "Telex"
}

// telexToneKeys maps Telex trigger letters to tones. z removes the tone.
var telexToneKeys = map[rune]Tone{
	's': ToneSac,
	'f': ToneHuyen,
	'r': ToneHoi,
	'x': ToneNga,
	'j': ToneNang,
	'z': ToneNone,
}

// IsToneKey reports whether the character is a Telex tone trigger.
func (t *TelexMethod) IsToneKey(r rune) bool {
	_, ok := telexToneKeys[unicode.ToLower(r)]
	return ok
}

// Decode maps a typed rune to an intent under Telex rules. Context matters:
// the same letter is a tone trigger after a vowel and a plain letter before.
func (t *TelexMethod) Decode(r rune, w *word, cfg *Config) intent {
	lower := unicode.ToLower(r)
	p := parseGraphemes(w.graphemes)

	if tone, ok := telexToneKeys[lower]; ok {
		if tone == ToneNone {
			if w.tone != ToneNone {
				return intent{op: opTone, r: r, tone: ToneNone, trigger: lower}
			}
		} else if len(p.nucleus) > 0 {
			return intent{op: opTone, r: r, tone: tone, trigger: lower}
		}
	}

	switch lower {
	case 'a', 'e', 'o':
		// Doubled-vowel circumflex: the previous vowel must be the same
		// bare base letter (aaa therefore does not re-trigger on â).
		if g, ok := w.lastGrapheme(); ok && isVowelGrapheme(g) && g.Base == lower && g.Mark == VowelNone {
			return intent{
				op: opMark, r: r, mark: VowelHat,
				targets: []int{len(w.graphemes) - 1}, trigger: lower,
			}
		}
	case 'w':
		// Like a tone key, w only transforms a legal syllable shape
		// unless free_tone lifts the check.
		if p.valid || cfg.FreeTone {
			if in, ok := t.decodeW(r, w, p); ok {
				return in
			}
		}
		if len(p.nucleus) == 0 && !cfg.SkipWShortcut {
			return intent{op: opHornU, r: r, mark: VowelHorn, trigger: 'w'}
		}
	case 'd':
		if g, ok := w.lastGrapheme(); ok && g.Base == 'd' && g.Mark == VowelNone {
			return intent{
				op: opDBar, r: r,
				targets: []int{len(w.graphemes) - 1}, trigger: 'd',
			}
		}
	}

	return letterIntent(r)
}

// decodeW resolves the w key against the current nucleus: horn on o/u,
// breve on a, the uo -> ươ compound, or undo when already applied.
func (t *TelexMethod) decodeW(r rune, w *word, p syllableParts) (intent, bool) {
	n := len(p.nucleus)
	if n == 0 {
		return intent{}, false
	}

	// uo (or uô) at the end of the nucleus horns both vowels: ươ.
	if n >= 2 {
		ui := p.nucleus[n-2]
		oi := p.nucleus[n-1]
		u := w.graphemes[ui]
		o := w.graphemes[oi]
		if u.Base == 'u' && o.Base == 'o' {
			if u.Mark == VowelHorn && o.Mark == VowelHorn {
				return intent{op: opMark, r: r, mark: VowelHorn, targets: []int{ui, oi}, undo: true, trigger: 'w'}, true
			}
			if u.Mark == VowelNone && (o.Mark == VowelNone || o.Mark == VowelHat) {
				return intent{op: opMark, r: r, mark: VowelHorn, targets: []int{ui, oi}, trigger: 'w'}, true
			}
		}
	}

	idx := p.nucleus[n-1]
	g := w.graphemes[idx]
	var mark VowelMark
	switch g.Base {
	case 'a':
		mark = VowelBreve
	case 'o', 'u':
		mark = VowelHorn
	default:
		return intent{}, false
	}
	if g.Mark == mark {
		return intent{op: opMark, r: r, mark: mark, targets: []int{idx}, undo: true, trigger: 'w'}, true
	}
	if g.Mark != VowelNone {
		return intent{}, false
	}
	return intent{op: opMark, r: r, mark: mark, targets: []int{idx}, trigger: 'w'}, true
}
