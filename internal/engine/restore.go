package engine

import "unicode"

// RestoreWord seeds the buffer with an already-composed word so that
// subsequent backspaces and transformations operate on it coherently.
// The grapheme sequence is rebuilt directly from the composed form; the
// raw-key history is reverse-derived in the active input method, with the
// canonical Telex spelling preferred where the composition is ambiguous.
func (e *Engine) RestoreWord(s string) {
	e.word.clear()
	tone := ToneNone
	for _, r := range s {
		base, mark, t, upper := Decompose(r)
		e.word.graphemes = append(e.word.graphemes, Grapheme{Base: base, Upper: upper, Mark: mark})
		if t != ToneNone {
			tone = t
		}
		e.word.keys = append(e.word.keys, graphemeKeys(base, mark, upper, e.cfg.Method)...)
	}
	e.word.tone = tone
	if tone != ToneNone {
		e.word.keys = append(e.word.keys, toneKeyFor(tone, e.cfg.Method))
	}
}

// graphemeKeys derives the key sequence that types one grapheme.
func graphemeKeys(base rune, mark VowelMark, upper bool, m Method) []rune {
	c := base
	if upper {
		c = unicode.ToUpper(base)
	}
	keys := []rune{c}
	if mark == VowelNone {
		return keys
	}
	if m == MethodVNI {
		switch mark {
		case VowelHat:
			keys = append(keys, '6')
		case VowelHorn:
			keys = append(keys, '7')
		case VowelBreve:
			keys = append(keys, '8')
		case VowelDBar:
			keys = append(keys, '9')
		}
		return keys
	}
	switch mark {
	case VowelHat:
		keys = append(keys, base) // doubled letter: aa, ee, oo
	case VowelHorn, VowelBreve:
		keys = append(keys, 'w')
	case VowelDBar:
		keys = append(keys, 'd')
	}
	return keys
}

// toneKeyFor derives the trigger key for a tone.
func toneKeyFor(t Tone, m Method) rune {
	if m == MethodVNI {
		switch t {
		case ToneSac:
			return '1'
		case ToneHuyen:
			return '2'
		case ToneHoi:
			return '3'
		case ToneNga:
			return '4'
		case ToneNang:
			return '5'
		}
		return '0'
	}
	switch t {
	case ToneSac:
		return 's'
	case ToneHuyen:
		return 'f'
	case ToneHoi:
		return 'r'
	case ToneNga:
		return 'x'
	case ToneNang:
		return 'j'
	}
	return 'z'
}
