package engine

import (
	"testing"
)

// typeRunes feeds a string of printable characters through the engine and
// returns the last edit command.
func typeRunes(t *testing.T, e *Engine, s string) EditCommand {
	t.Helper()
	var cmd EditCommand
	for _, r := range s {
		ev, ok := EventForRune(r)
		if !ok {
			t.Fatalf("no key event for %q", r)
		}
		cmd = e.ProcessKey(ev)
	}
	return cmd
}

func press(e *Engine, code uint16) EditCommand {
	return e.ProcessKey(KeyEvent{Code: code})
}

func TestTelex_Words(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"toas -> toá", "toas", "toá"},
		{"toans -> toán", "toans", "toán"},
		{"toos -> tố", "toos", "tố"},
		{"dda -> đa", "dda", "đa"},
		{"vietj -> việt", "vietj", "việt"},
		{"aaa -> âa", "aaa", "âa"},
		{"chaof -> chào", "chaof", "chào"},
		{"hoaf -> hoà", "hoaf", "hoà"},
		{"xoas -> xoá", "xoas", "xoá"},
		{"nghiax -> nghĩa", "nghiax", "nghĩa"},
		{"thoar -> thoả", "thoar", "thoả"},
		{"tooi -> tôi", "tooi", "tôi"},
		{"muwa -> mưa", "muwa", "mưa"},
		{"bowi -> bơi", "bowi", "bơi"},
		{"tieengs -> tiếng", "tieengs", "tiếng"},
		{"tiengs -> tiếng (auto iê)", "tiengs", "tiếng"},
		{"cacs -> các", "cacs", "các"},
		{"banj -> bạn", "banj", "bạn"},
		{"mats -> mát", "mats", "mát"},
		{"khoong -> không", "khoong", "không"},
		{"dduowcj -> được", "dduowcj", "được"},
		{"nguowif -> người", "nguowif", "người"},
		{"truowngf -> trường", "truowngf", "trường"},
		{"quyeenr -> quyển", "quyeenr", "quyển"},
		{"quys -> quý", "quys", "quý"},
		{"huys -> huý", "huys", "huý"},
		{"giaf -> già", "giaf", "già"},
		{"gif -> gì", "gif", "gì"},
		{"buonf -> buồn (auto uô)", "buonf", "buồn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			typeRunes(t, e, tt.input)
			if got := e.Buffer(); got != tt.expected {
				t.Errorf("Buffer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTelex_DoubleTriggerCancels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Cancel the transformation and keep the second key as a literal.
		{"toss -> tos", "toss", "tos"},
		{"tooss -> tôs", "tooss", "tôs"},
		{"aff -> af", "aff", "af"},
		{"uww -> uw", "uww", "uw"},
		{"axx -> ax", "axx", "ax"},
		{"ajj -> aj", "ajj", "aj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			typeRunes(t, e, tt.input)
			if got := e.Buffer(); got != tt.expected {
				t.Errorf("Buffer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTelex_StaleTriggerIsLiteral(t *testing.T) {
	// An intervening letter clears the undo memo: the repeated trigger is
	// then a plain letter and the tone stays.
	e := NewEngine()
	typeRunes(t, e, "tosts")
	if got := e.Buffer(); got != "tóts" {
		t.Errorf("Buffer() = %q, want %q", got, "tóts")
	}
}

func TestTelex_ToneRemoveWithZ(t *testing.T) {
	e := NewEngine()
	typeRunes(t, e, "asz")
	if got := e.Buffer(); got != "a" {
		t.Errorf("Buffer() = %q, want %q", got, "a")
	}

	// z with no tone present is a plain letter.
	e = NewEngine()
	typeRunes(t, e, "az")
	if got := e.Buffer(); got != "az" {
		t.Errorf("Buffer() = %q, want %q", got, "az")
	}
}

func TestTelex_WShortcut(t *testing.T) {
	e := NewEngine()
	typeRunes(t, e, "tw")
	if got := e.Buffer(); got != "tư" {
		t.Errorf("Buffer() = %q, want %q", got, "tư")
	}

	cfg := DefaultConfig()
	cfg.SkipWShortcut = true
	e = NewEngineWith(cfg)
	typeRunes(t, e, "tw")
	if got := e.Buffer(); got != "tw" {
		t.Errorf("with skip_w_shortcut: Buffer() = %q, want %q", got, "tw")
	}
}

func TestTelex_InvalidSyllableRejectsTone(t *testing.T) {
	// tl is not a legal onset; the tone key lands as a literal letter.
	e := NewEngine()
	typeRunes(t, e, "tlas")
	if got := e.Buffer(); got != "tlas" {
		t.Errorf("Buffer() = %q, want %q", got, "tlas")
	}

	cfg := DefaultConfig()
	cfg.FreeTone = true
	e = NewEngineWith(cfg)
	typeRunes(t, e, "tlas")
	if got := e.Buffer(); got != "tlá" {
		t.Errorf("with free_tone: Buffer() = %q, want %q", got, "tlá")
	}
}

func TestTelex_Uppercase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"DDa -> Đa", "DDa", "Đa"},
		{"Vieetj -> Việt", "Vieetj", "Việt"},
		{"TOAS -> TOÁ", "TOAS", "TOÁ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			typeRunes(t, e, tt.input)
			if got := e.Buffer(); got != tt.expected {
				t.Errorf("Buffer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTelex_ModernStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = StyleModern
	tests := []struct {
		input    string
		expected string
	}{
		{"toas", "tóa"},
		{"hoaf", "hòa"},
		{"huys", "húy"},
		// Placement with a coda, or on open diphthongs other than
		// oa/oe/uy, does not depend on the style.
		{"toans", "toán"},
		{"chaof", "chào"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := NewEngineWith(cfg)
			typeRunes(t, e, tt.input)
			if got := e.Buffer(); got != tt.expected {
				t.Errorf("Buffer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTelex_EditCommands(t *testing.T) {
	e := NewEngine()

	cmd := typeRunes(t, e, "t")
	if cmd.Action != ActionSend || cmd.Backspace != 0 || cmd.Chars != "t" {
		t.Errorf("letter: got %+v", cmd)
	}

	typeRunes(t, e, "oa")
	cmd = typeRunes(t, e, "s")
	if cmd.Action != ActionSend || cmd.Backspace != 1 || cmd.Chars != "á" {
		t.Errorf("tone: got %+v, want backspace 1 chars á", cmd)
	}

	// dd replaces the trailing d with a one-backspace edit.
	e = NewEngine()
	typeRunes(t, e, "d")
	cmd = typeRunes(t, e, "d")
	if cmd.Action != ActionSend || cmd.Backspace != 1 || cmd.Chars != "đ" {
		t.Errorf("dd: got %+v, want backspace 1 chars đ", cmd)
	}
}
