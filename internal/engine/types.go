// Package engine implements the core Vietnamese input method engine:
// per-keystroke decoding of Telex/VNI input into accented Unicode output,
// with precise edit commands that keep the host text field in sync.
package engine

// KeyEvent represents a single keyboard event from the host.
type KeyEvent struct {
	Code     uint16 // Virtual key code (macOS keycode table)
	CapsLock bool
	Ctrl     bool
	Shift    bool
}

// Action tells the host what to do with an edit command.
type Action uint8

const (
	// ActionNone passes the raw key through to the host unchanged.
	ActionNone Action = 0
	// ActionSend applies backspaces then inserts Chars into the focused field.
	ActionSend Action = 1
	// ActionRestore reinstalls the raw ASCII spelling of the current word.
	ActionRestore Action = 2
)

// EditCommand is the engine's per-key output. The host deletes Backspace
// trailing user-visible characters, then inserts Chars. Consumed reports
// whether the raw key event must be suppressed by the host.
type EditCommand struct {
	Action    Action
	Backspace int
	Chars     string
	Consumed  bool
}

// Tone represents the five Vietnamese tone marks plus thanh ngang.
type Tone int

const (
	ToneNone  Tone = iota // No tone (thanh ngang)
	ToneSac               // Sắc (á)
	ToneHuyen             // Huyền (à)
	ToneHoi               // Hỏi (ả)
	ToneNga               // Ngã (ã)
	ToneNang              // Nặng (ạ)
)

// VowelMark represents Vietnamese diacritic modifications of a base letter.
type VowelMark int

const (
	VowelNone  VowelMark = iota
	VowelHat             // Circumflex (â, ê, ô)
	VowelBreve           // Breve (ă)
	VowelHorn            // Horn (ơ, ư)
	VowelDBar            // D-bar (đ)
)

// Grapheme is one user-visible character of the word under composition:
// a base letter plus an optional diacritic. The tone is held on the word,
// not the grapheme, and placed at render time.
type Grapheme struct {
	Base  rune // lowercase base letter (or any passthrough rune)
	Upper bool
	Mark  VowelMark
}

// Rune returns the composed rune for the grapheme, without tone.
func (g Grapheme) Rune() rune {
	r := composeMark(g.Base, g.Mark)
	if g.Upper {
		return toUpper(r)
	}
	return r
}

// Method selects the typing convention.
type Method uint8

const (
	MethodTelex Method = 0
	MethodVNI   Method = 1
)

// ToneStyle selects where the tone lands on oa/oe/uy open syllables.
type ToneStyle uint8

const (
	// StyleTraditional places the tone on the second vowel (hoà, toá).
	StyleTraditional ToneStyle = 0
	// StyleModern places the tone on the first vowel (hòa, tóa).
	StyleModern ToneStyle = 1
)

// InputMethod decodes one raw key rune against the current word state.
type InputMethod interface {
	// Name returns the name of the input method (e.g., "Telex", "VNI").
	Name() string

	// Decode maps a typed rune to an intent, given the word so far.
	Decode(r rune, w *word, cfg *Config) intent
}

// intentOp enumerates what a decoded keystroke wants to do to the word.
type intentOp int

const (
	opLetter intentOp = iota // append the rune as a plain grapheme
	opTone                   // set, replace or cancel the word tone
	opMark                   // apply or cancel a vowel mark on target graphemes
	opDBar                   // turn a trailing d into đ
	opHornU                  // Telex lone-w shortcut: append ư
)

// intent is the decoder's verdict for one keystroke. The trigger key is
// retained so that a second identical press can undo the transformation.
type intent struct {
	op      intentOp
	r       rune // the typed rune, case preserved
	tone    Tone
	mark    VowelMark
	targets []int // grapheme indices for opMark/opDBar
	undo    bool  // the targets already carry mark; this press cancels it
	trigger rune  // lowercase trigger key
}

func letterIntent(r rune) intent {
	return intent{op: opLetter, r: r}
}
