package engine

import "strings"

// Shortcuts are a flat trigger -> replacement dictionary consulted only at
// word boundaries: when the raw ASCII of the committed word (lower-cased)
// exactly equals a trigger, the rendered word is replaced before the
// boundary character goes through. They never fire mid-word.

// AddShortcut installs or replaces a shortcut.
func (e *Engine) AddShortcut(trigger, replacement string) {
	if trigger == "" {
		return
	}
	e.shortcuts[strings.ToLower(trigger)] = replacement
}

// RemoveShortcut deletes a shortcut.
func (e *Engine) RemoveShortcut(trigger string) {
	delete(e.shortcuts, strings.ToLower(trigger))
}

// ClearShortcuts drops the whole table.
func (e *Engine) ClearShortcuts() {
	e.shortcuts = make(map[string]string)
}

// Shortcuts returns a copy of the table.
func (e *Engine) Shortcuts() map[string]string {
	out := make(map[string]string, len(e.shortcuts))
	for k, v := range e.shortcuts {
		out[k] = v
	}
	return out
}
