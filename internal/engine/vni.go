package engine

// VNIMethod implements the VNI input method. VNI is digit-based and fully
// unambiguous: 1-5 tones, 0 removes the tone, 6 circumflex, 7 horn,
// 8 breve, 9 đ.
type VNIMethod struct{}

// NewVNIMethod creates a new VNI input method.
func NewVNIMethod() *VNIMethod {
	return &VNIMethod{}
}

// Name returns the method name.
func (v *VNIMethod) Name() string {
	return "VNI"
}

var vniToneKeys = map[rune]Tone{
	'1': ToneSac,
	'2': ToneHuyen,
	'3': ToneHoi,
	'4': ToneNga,
	'5': ToneNang,
	'0': ToneNone,
}

var vniMarkKeys = map[rune]VowelMark{
	'6': VowelHat,
	'7': VowelHorn,
	'8': VowelBreve,
	'9': VowelDBar,
}

// vniMarkBases lists which base letters accept each mark.
var vniMarkBases = map[VowelMark]map[rune]bool{
	VowelHat:   {'a': true, 'e': true, 'o': true},
	VowelHorn:  {'o': true, 'u': true},
	VowelBreve: {'a': true},
	VowelDBar:  {'d': true},
}

// Decode maps a typed rune to an intent under VNI rules. Digits with no
// applicable target decay to literals.
func (v *VNIMethod) Decode(r rune, w *word, cfg *Config) intent {
	if tone, ok := vniToneKeys[r]; ok {
		if tone == ToneNone {
			if w.tone != ToneNone {
				return intent{op: opTone, r: r, tone: ToneNone, trigger: r}
			}
			return letterIntent(r)
		}
		p := parseGraphemes(w.graphemes)
		if len(p.nucleus) > 0 {
			return intent{op: opTone, r: r, tone: tone, trigger: r}
		}
		return letterIntent(r)
	}

	mark, ok := vniMarkKeys[r]
	if !ok {
		return letterIntent(r)
	}

	if mark == VowelDBar {
		for i := len(w.graphemes) - 1; i >= 0; i-- {
			g := w.graphemes[i]
			if g.Base != 'd' {
				continue
			}
			in := intent{op: opDBar, r: r, targets: []int{i}, trigger: r}
			in.undo = g.Mark == VowelDBar
			return in
		}
		return letterIntent(r)
	}

	p := parseGraphemes(w.graphemes)
	n := len(p.nucleus)

	// Key 7 on a trailing uo (or uô) pair horns both vowels: ươ.
	if mark == VowelHorn && n >= 2 {
		ui := p.nucleus[n-2]
		oi := p.nucleus[n-1]
		u := w.graphemes[ui]
		o := w.graphemes[oi]
		if u.Base == 'u' && o.Base == 'o' {
			if u.Mark == VowelHorn && o.Mark == VowelHorn {
				return intent{op: opMark, r: r, mark: mark, targets: []int{ui, oi}, undo: true, trigger: r}
			}
			if u.Mark == VowelNone && (o.Mark == VowelNone || o.Mark == VowelHat) {
				return intent{op: opMark, r: r, mark: mark, targets: []int{ui, oi}, trigger: r}
			}
		}
	}

	// Scan the nucleus from the end for a vowel that accepts the mark.
	// A vowel already carrying it makes this press an undo (vie6t6 -> viet).
	for i := n - 1; i >= 0; i-- {
		idx := p.nucleus[i]
		g := w.graphemes[idx]
		if !vniMarkBases[mark][g.Base] {
			continue
		}
		if g.Mark == mark {
			return intent{op: opMark, r: r, mark: mark, targets: []int{idx}, undo: true, trigger: r}
		}
		if g.Mark == VowelNone {
			return intent{op: opMark, r: r, mark: mark, targets: []int{idx}, trigger: r}
		}
	}
	return letterIntent(r)
}
