// Package bridge exposes the engine to host processes through a stable,
// handle-based surface: plain functions, integer status codes and
// out-parameter results, mirroring the C contract IME shells load.
// No panic crosses this boundary.
package bridge

import (
	"sync"
	"unicode/utf8"

	"github.com/hnmai/vikey/internal/engine"
)

// Status is the signed result code every boundary function returns.
type Status int32

const (
	StatusOK            Status = 0
	StatusNullPointer   Status = -1
	StatusInvalidHandle Status = -2
	StatusProcessing    Status = -3
	StatusInternal      Status = -99
)

// Handle identifies one engine instance across the boundary.
type Handle int64

// Result is the caller-allocated out-parameter for ProcessKey, mirroring
// the process-result wire shape.
type Result struct {
	Chars     string
	Backspace uint8
	Action    uint8
	Consumed  bool
}

// ConfigWire is the configuration wire shape. The remaining toggles have
// individual entry points.
type ConfigWire struct {
	InputMethod uint8 // 0 Telex, 1 VNI
	ToneStyle   uint8 // 0 traditional, 1 modern
	SmartMode   bool
}

var (
	mu      sync.Mutex
	engines = make(map[Handle]*engine.Engine)
	nextID  Handle
)

// New creates an engine with default configuration and returns its handle.
func New() Handle {
	mu.Lock()
	defer mu.Unlock()
	nextID++
	engines[nextID] = engine.NewEngine()
	return nextID
}

// NewWith creates an engine seeded from a config wire value. A nil config
// behaves like New.
func NewWith(cw *ConfigWire) Handle {
	h := New()
	if cw != nil {
		SetConfig(h, *cw)
	}
	return h
}

// Free destroys the engine behind the handle.
func Free(h Handle) Status {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := engines[h]; !ok {
		return StatusInvalidHandle
	}
	delete(engines, h)
	return StatusOK
}

// get must be called with mu held.
func get(h Handle) (*engine.Engine, Status) {
	eng, ok := engines[h]
	if !ok {
		return nil, StatusInvalidHandle
	}
	return eng, StatusOK
}

// guard converts any internal unwind into StatusInternal, resetting the
// engine's current-word buffer. Committed history is preserved.
func guard(eng *engine.Engine, status *Status) {
	if r := recover(); r != nil {
		eng.Clear()
		*status = StatusInternal
	}
}

// ProcessKey feeds one key event to the engine and fills the caller's
// result struct.
func ProcessKey(h Handle, ev engine.KeyEvent, out *Result) (status Status) {
	if out == nil {
		return StatusNullPointer
	}
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	defer guard(eng, &status)
	cmd := eng.ProcessKey(ev)
	if cmd.Backspace > 255 {
		return StatusProcessing
	}
	out.Chars = cmd.Chars
	out.Backspace = uint8(cmd.Backspace)
	out.Action = uint8(cmd.Action)
	out.Consumed = cmd.Consumed
	return StatusOK
}

// SetConfig applies the wire config, preserving the individually-toggled
// options.
func SetConfig(h Handle, cw ConfigWire) (status Status) {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	defer guard(eng, &status)
	cfg := eng.Config()
	cfg.Method = engine.Method(cw.InputMethod)
	cfg.Style = engine.ToneStyle(cw.ToneStyle)
	cfg.SmartMode = cw.SmartMode
	eng.SetConfig(cfg)
	return StatusOK
}

// GetConfig fills the caller's config struct.
func GetConfig(h Handle, out *ConfigWire) Status {
	if out == nil {
		return StatusNullPointer
	}
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	cfg := eng.Config()
	out.InputMethod = uint8(cfg.Method)
	out.ToneStyle = uint8(cfg.Style)
	out.SmartMode = cfg.SmartMode
	return StatusOK
}

func setOption(h Handle, f func(*engine.Config)) Status {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	cfg := eng.Config()
	f(&cfg)
	eng.SetConfig(cfg)
	return StatusOK
}

// SetEnabled gates the engine; disabled engines answer every key with
// action none.
func SetEnabled(h Handle, enabled bool) Status {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	eng.SetEnabled(enabled)
	return StatusOK
}

// SetSkipWShortcut toggles the Telex lone w -> ư shortcut off.
func SetSkipWShortcut(h Handle, v bool) Status {
	return setOption(h, func(c *engine.Config) { c.SkipWShortcut = v })
}

// SetEscRestore toggles ESC restoring the raw ASCII spelling.
func SetEscRestore(h Handle, v bool) Status {
	return setOption(h, func(c *engine.Config) { c.EscRestore = v })
}

// SetFreeTone toggles free tone placement (no syllable validation).
func SetFreeTone(h Handle, v bool) Status {
	return setOption(h, func(c *engine.Config) { c.FreeTone = v })
}

// SetInstantRestore toggles immediate raw-ASCII restore of words proven
// non-Vietnamese.
func SetInstantRestore(h Handle, v bool) Status {
	return setOption(h, func(c *engine.Config) { c.InstantRestore = v })
}

// SetShortcutsEnabled toggles the word-boundary shortcut expander.
func SetShortcutsEnabled(h Handle, v bool) Status {
	return setOption(h, func(c *engine.Config) { c.ShortcutsEnabled = v })
}

// Clear resets the current-word buffer.
func Clear(h Handle) Status {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	eng.Clear()
	return StatusOK
}

// ClearAll resets the buffer and drops the committed-word history.
func ClearAll(h Handle) Status {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	eng.ClearAll()
	return StatusOK
}

// RestoreWord seeds the buffer with an already-composed word.
func RestoreWord(h Handle, word string) (status Status) {
	if !utf8.ValidString(word) {
		return StatusProcessing
	}
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	defer guard(eng, &status)
	eng.RestoreWord(word)
	return StatusOK
}

// Buffer fills the caller's string with the current preedit render.
func Buffer(h Handle, out *string) Status {
	if out == nil {
		return StatusNullPointer
	}
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	*out = eng.Buffer()
	return StatusOK
}

// AddShortcut installs a trigger -> replacement expansion.
func AddShortcut(h Handle, trigger, replacement string) Status {
	if !utf8.ValidString(trigger) || !utf8.ValidString(replacement) {
		return StatusProcessing
	}
	if trigger == "" {
		return StatusNullPointer
	}
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	eng.AddShortcut(trigger, replacement)
	return StatusOK
}

// RemoveShortcut deletes a shortcut.
func RemoveShortcut(h Handle, trigger string) Status {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	eng.RemoveShortcut(trigger)
	return StatusOK
}

// ClearShortcuts drops the whole shortcut table.
func ClearShortcuts(h Handle) Status {
	mu.Lock()
	defer mu.Unlock()
	eng, st := get(h)
	if st != StatusOK {
		return st
	}
	eng.ClearShortcuts()
	return StatusOK
}

// FreeString releases a string returned by the engine. Result payloads are
// owned by the caller on the C surface; under Go the collector owns them,
// so this is a no-op retained for contract parity.
func FreeString(_ *string) {}
