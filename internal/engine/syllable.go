package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// transformKind labels the one-slot "last transformation" memo.
type transformKind int

const (
	kindTone transformKind = iota
	kindMark
	kindDBar
)

// lastTransform remembers the most recent transformation applied to the
// current word so that a second press of the same trigger can undo it.
// Cleared by any letter, backspace or commit.
type lastTransform struct {
	kind    transformKind
	trigger rune
}

// word is the in-progress syllable buffer: the grapheme sequence, the raw
// keys that produced it, the word tone and the undo memo.
type word struct {
	graphemes []Grapheme
	tone      Tone
	keys      []rune // raw typed runes, case preserved
	last      *lastTransform
	foreign   bool // proven non-Vietnamese; transformations bypassed
}

func (w *word) empty() bool {
	return len(w.keys) == 0 && len(w.graphemes) == 0
}

func (w *word) clear() {
	*w = word{}
}

// visibleLen is the number of user-visible characters of the word.
func (w *word) visibleLen() int {
	return len(w.graphemes)
}

func (w *word) appendRune(r rune) {
	lower := unicode.ToLower(r)
	w.graphemes = append(w.graphemes, Grapheme{Base: lower, Upper: lower != r})
	w.last = nil
}

func (w *word) lastGrapheme() (Grapheme, bool) {
	if len(w.graphemes) == 0 {
		return Grapheme{}, false
	}
	return w.graphemes[len(w.graphemes)-1], true
}

// rawString returns the raw ASCII keys typed for this word, original case.
func (w *word) rawString() string {
	return string(w.keys)
}

// render produces the NFC-normalized visible form of the word, with the
// tone placed per the active style.
func (w *word) render(style ToneStyle) string {
	if len(w.graphemes) == 0 {
		return ""
	}
	pos := -1
	if w.tone != ToneNone {
		pos = tonePosition(w.graphemes, style)
	}
	var b strings.Builder
	for i, g := range w.graphemes {
		r := composeMark(g.Base, g.Mark)
		if i == pos {
			r = composeTone(r, w.tone)
		}
		if g.Upper {
			r = toUpper(r)
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// syllableParts is the parsed view of the grapheme sequence. Index slices
// refer into the grapheme sequence. valid reports whether the sequence
// matches a legal Vietnamese syllable shape.
type syllableParts struct {
	onset   []int
	nucleus []int
	coda    []int
	valid   bool
}

func isVowelGrapheme(g Grapheme) bool {
	return g.Mark != VowelDBar && isVowelBase(g.Base)
}

func isConsonantGrapheme(g Grapheme) bool {
	return !isVowelGrapheme(g) && isConsonantBase(g.Base)
}

// parseGraphemes decomposes the grapheme sequence into onset, nucleus and
// coda. qu and gi join the onset when a vowel follows.
func parseGraphemes(gs []Grapheme) syllableParts {
	var p syllableParts
	n := len(gs)
	i := 0
	for i < n && isConsonantGrapheme(gs[i]) {
		p.onset = append(p.onset, i)
		i++
	}
	if i > 0 && i+1 < n {
		prev := gs[i-1]
		cur := gs[i]
		if cur.Mark == VowelNone && isVowelGrapheme(gs[i+1]) {
			if prev.Base == 'q' && prev.Mark == VowelNone && cur.Base == 'u' {
				p.onset = append(p.onset, i)
				i++
			} else if prev.Base == 'g' && prev.Mark == VowelNone && cur.Base == 'i' {
				p.onset = append(p.onset, i)
				i++
			}
		}
	}
	for i < n && isVowelGrapheme(gs[i]) {
		p.nucleus = append(p.nucleus, i)
		i++
	}
	for i < n && isConsonantGrapheme(gs[i]) {
		p.coda = append(p.coda, i)
		i++
	}
	p.valid = i == n && validShape(gs, p)
	return p
}

func partString(gs []Grapheme, idx []int) string {
	var b strings.Builder
	for _, i := range idx {
		b.WriteRune(composeMark(gs[i].Base, gs[i].Mark))
	}
	return b.String()
}

// autoMarkCoda applies the iê/uô auto-transformation on toned syllables
// with a coda: t-i-e-n-s becomes tiến, m-u-o-n-f becomes muồn.
func (w *word) autoMarkCoda() {
	p := parseGraphemes(w.graphemes)
	if len(p.coda) == 0 || len(p.nucleus) < 2 {
		return
	}
	first := w.graphemes[p.nucleus[0]]
	secondIdx := p.nucleus[1]
	second := w.graphemes[secondIdx]
	if first.Mark != VowelNone || second.Mark != VowelNone {
		return
	}
	if first.Base == 'i' && second.Base == 'e' {
		w.graphemes[secondIdx].Mark = VowelHat
	}
	if first.Base == 'u' && second.Base == 'o' {
		w.graphemes[secondIdx].Mark = VowelHat
	}
}

// restoreRaw rewrites the word as the literal spelling of its raw keys,
// dropping every transformation. Used by smart auto-restore.
func (w *word) restoreRaw() {
	keys := w.keys
	w.graphemes = w.graphemes[:0]
	for _, r := range keys {
		lower := unicode.ToLower(r)
		w.graphemes = append(w.graphemes, Grapheme{Base: lower, Upper: lower != r})
	}
	w.tone = ToneNone
	w.last = nil
}
