package engine

import (
	"strings"
	"unicode"
)

// historySize bounds the committed-word ring.
const historySize = 32

// Engine owns one editing context: the word under composition, the active
// configuration, the shortcut table and a bounded history of committed
// words. One engine processes one key at a time to completion; hosts
// needing concurrency instantiate multiple engines.
type Engine struct {
	cfg       Config
	method    InputMethod
	word      word
	shortcuts map[string]string
	history   []string
}

// NewEngine creates an engine with the default configuration.
func NewEngine() *Engine {
	return NewEngineWith(DefaultConfig())
}

// NewEngineWith creates an engine with the given configuration.
func NewEngineWith(cfg Config) *Engine {
	return &Engine{
		cfg:       cfg,
		method:    methodFor(cfg.Method),
		shortcuts: make(map[string]string),
	}
}

// SetConfig replaces the configuration. The current word is dropped: its
// raw keys were typed under the old convention and cannot be replayed
// under the new one. Committed history is kept.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
	e.method = methodFor(cfg.Method)
	e.word.clear()
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetEnabled enables or disables the engine. Disabling drops the word.
func (e *Engine) SetEnabled(enabled bool) {
	e.cfg.Enabled = enabled
	if !enabled {
		e.word.clear()
	}
}

// Enabled reports whether the engine is processing keys.
func (e *Engine) Enabled() bool {
	return e.cfg.Enabled
}

// Clear resets the current-word buffer. Committed history is kept.
func (e *Engine) Clear() {
	e.word.clear()
}

// ClearAll resets the current word and drops the committed-word history.
func (e *Engine) ClearAll() {
	e.word.clear()
	e.history = nil
}

// Buffer returns the rendered form of the word under composition.
func (e *Engine) Buffer() string {
	return e.word.render(e.cfg.Style)
}

// RawBuffer returns the raw ASCII keys typed for the current word.
func (e *Engine) RawBuffer() string {
	return e.word.rawString()
}

// History returns a copy of the committed-word ring, oldest first.
func (e *Engine) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// LastCommitted returns the most recently committed word.
func (e *Engine) LastCommitted() (string, bool) {
	if len(e.history) == 0 {
		return "", false
	}
	return e.history[len(e.history)-1], true
}

// ProcessKey is the core entry: one key event in, one edit command out.
func (e *Engine) ProcessKey(ev KeyEvent) EditCommand {
	none := EditCommand{Action: ActionNone}
	if !e.cfg.Enabled {
		return none
	}
	if ev.Ctrl {
		// Control chords belong to the host; the word memo is no longer
		// trustworthy after whatever the chord did.
		e.word.clear()
		return none
	}
	switch ev.Code {
	case KeyBackspace:
		return e.backspaceCmd()
	case KeyEscape:
		return e.escapeCmd()
	case KeyReturn, KeyTab:
		return e.commitCmd()
	}
	r, ok := RuneForKey(ev)
	if !ok {
		// Navigation and other unmapped keys move the caret; the word no
		// longer tracks the text around it.
		e.word.clear()
		return none
	}
	switch {
	case unicode.IsLetter(r):
		return e.processRune(r)
	case unicode.IsDigit(r):
		if e.cfg.Method == MethodVNI {
			return e.processRune(r)
		}
		return e.commitCmd()
	default:
		// Space and punctuation end the word; the character itself
		// passes through to the host.
		return e.commitCmd()
	}
}

// processRune runs one printable rune through decode -> rules -> edit
// command, diffing the before/after renders.
func (e *Engine) processRune(r rune) EditCommand {
	prev := []rune(e.word.render(e.cfg.Style))
	if e.feed(&e.word, r) {
		return EditCommand{
			Action:    ActionRestore,
			Backspace: len(prev),
			Chars:     e.word.rawString(),
			Consumed:  true,
		}
	}
	next := []rune(e.word.render(e.cfg.Style))
	return diffCommand(prev, next)
}

// feed decodes and applies one rune to the given word. Reports whether a
// smart-mode instant restore fired. feed is a pure function of the key
// sequence and the configuration, which is what makes raw-key replay
// reproduce the buffer exactly.
func (e *Engine) feed(w *word, r rune) (restored bool) {
	if w.foreign {
		w.keys = append(w.keys, r)
		w.appendRune(r)
		return false
	}
	in := e.method.Decode(r, w, &e.cfg)
	w.keys = append(w.keys, r)
	transformed := e.applyIntent(w, in)

	if e.cfg.SmartMode && (transformed || w.tone != ToneNone || w.hasMark()) {
		if !parseGraphemes(w.graphemes).valid {
			w.foreign = true
			if e.cfg.InstantRestore {
				w.restoreRaw()
				return true
			}
		}
	}
	return false
}

// applyIntent mutates the word per the decoded intent. Reports whether a
// tone/mark transformation was applied or reversed.
func (e *Engine) applyIntent(w *word, in intent) bool {
	switch in.op {
	case opLetter:
		w.appendRune(in.r)
		if w.tone != ToneNone && isConsonantBase(unicode.ToLower(in.r)) {
			w.autoMarkCoda()
		}
		return false

	case opTone:
		return e.applyTone(w, in)

	case opMark:
		if in.undo {
			for _, idx := range in.targets {
				w.graphemes[idx].Mark = VowelNone
			}
			w.last = nil
			if e.cfg.Method == MethodTelex {
				// Cancel the transformation and keep the second key
				// as a literal.
				w.appendRune(in.r)
			}
			return true
		}
		for _, idx := range in.targets {
			w.graphemes[idx].Mark = in.mark
		}
		w.last = &lastTransform{kind: kindMark, trigger: in.trigger}
		return true

	case opDBar:
		if in.undo {
			for _, idx := range in.targets {
				w.graphemes[idx].Mark = VowelNone
			}
			w.last = nil
			return true
		}
		for _, idx := range in.targets {
			w.graphemes[idx].Mark = VowelDBar
		}
		w.last = &lastTransform{kind: kindDBar, trigger: in.trigger}
		return true

	case opHornU:
		lower := unicode.ToLower(in.r)
		w.graphemes = append(w.graphemes, Grapheme{Base: 'u', Upper: lower != in.r, Mark: VowelHorn})
		w.last = &lastTransform{kind: kindMark, trigger: 'w'}
		return true
	}
	return false
}

// applyTone sets, replaces or cancels the word tone.
func (e *Engine) applyTone(w *word, in intent) bool {
	if in.tone == ToneNone {
		w.tone = ToneNone
		w.last = nil
		return true
	}
	if w.tone == in.tone {
		if e.cfg.Method == MethodVNI {
			// VNI re-press toggles the tone off; no literal.
			w.tone = ToneNone
			w.last = nil
			return true
		}
		fresh := w.last != nil && w.last.kind == kindTone && w.last.trigger == in.trigger
		if fresh {
			// Double-press: cancel the tone and keep the trigger as a
			// literal letter.
			w.tone = ToneNone
			w.appendRune(in.r)
			return true
		}
		// Stale re-press after intervening keys: plain letter.
		w.appendRune(in.r)
		return false
	}
	if !canTakeTone(w.graphemes, e.cfg.FreeTone) {
		w.appendRune(in.r)
		return false
	}
	w.tone = in.tone
	w.last = &lastTransform{kind: kindTone, trigger: in.trigger}
	w.autoMarkCoda()
	return true
}

// backspaceCmd deletes one user-visible grapheme by popping raw keys and
// replaying the remainder, then emits the whole edit as a diff against the
// previous render: the deletion itself plus any re-render of earlier
// graphemes. The backspace key is consumed.
func (e *Engine) backspaceCmd() EditCommand {
	if e.word.empty() {
		return EditCommand{Action: ActionNone}
	}
	prev := []rune(e.word.render(e.cfg.Style))
	if len(prev) == 0 {
		e.word.clear()
		return EditCommand{Action: ActionNone}
	}
	target := len(prev) - 1
	keys := e.word.keys
	for len(keys) > 0 {
		keys = keys[:len(keys)-1]
		rebuilt := e.replay(keys)
		if rebuilt.visibleLen() <= target {
			e.word = rebuilt
			break
		}
	}
	if len(keys) == 0 {
		e.word.clear()
	}
	next := []rune(e.word.render(e.cfg.Style))
	return diffCommand(prev, next)
}

// replay rebuilds a word from scratch out of raw keys.
func (e *Engine) replay(keys []rune) word {
	var w word
	for _, r := range keys {
		e.feed(&w, r)
	}
	return w
}

// escapeCmd restores the raw ASCII spelling of the word when configured.
func (e *Engine) escapeCmd() EditCommand {
	if e.word.empty() || !e.cfg.EscRestore {
		return EditCommand{Action: ActionNone}
	}
	raw := e.word.rawString()
	n := e.word.visibleLen()
	e.word.clear()
	return EditCommand{
		Action:    ActionRestore,
		Backspace: n,
		Chars:     raw,
		Consumed:  true,
	}
}

// commitCmd drains the word at a boundary, consulting the shortcut table.
// The boundary character itself always passes through to the host.
func (e *Engine) commitCmd() EditCommand {
	cmd := EditCommand{Action: ActionNone}
	if !e.word.empty() {
		committed := e.word.render(e.cfg.Style)
		if e.cfg.ShortcutsEnabled {
			raw := strings.ToLower(e.word.rawString())
			if rep, ok := e.shortcuts[raw]; ok {
				cmd = EditCommand{
					Action:    ActionSend,
					Backspace: e.word.visibleLen(),
					Chars:     rep,
				}
				committed = rep
			}
		}
		e.pushHistory(committed)
	}
	e.word.clear()
	return cmd
}

func (e *Engine) pushHistory(s string) {
	e.history = append(e.history, s)
	if len(e.history) > historySize {
		e.history = e.history[1:]
	}
}

func (w *word) hasMark() bool {
	for _, g := range w.graphemes {
		if g.Mark != VowelNone {
			return true
		}
	}
	return false
}

// diffCommand turns a before/after render pair into the minimal edit the
// host must apply: delete the non-shared suffix, insert the new one.
func diffCommand(prev, next []rune) EditCommand {
	p := 0
	for p < len(prev) && p < len(next) && prev[p] == next[p] {
		p++
	}
	bs := len(prev) - p
	chars := string(next[p:])
	if bs == 0 && chars == "" {
		return EditCommand{Action: ActionNone}
	}
	return EditCommand{
		Action:    ActionSend,
		Backspace: bs,
		Chars:     chars,
		Consumed:  true,
	}
}
