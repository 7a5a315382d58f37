package engine

import "testing"

func newVNIEngine() *Engine {
	cfg := DefaultConfig()
	cfg.Method = MethodVNI
	return NewEngineWith(cfg)
}

func TestVNI_Words(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"a1 -> á", "a1", "á"},
		{"a2 -> à", "a2", "à"},
		{"a3 -> ả", "a3", "ả"},
		{"a4 -> ã", "a4", "ã"},
		{"a5 -> ạ", "a5", "ạ"},
		{"a6 -> â", "a6", "â"},
		{"a8 -> ă", "a8", "ă"},
		{"o7 -> ơ", "o7", "ơ"},
		{"u7 -> ư", "u7", "ư"},
		{"d9 -> đ", "d9", "đ"},
		{"vie6t5 -> việt", "vie6t5", "việt"},
		{"tie6ng1 -> tiếng", "tie6ng1", "tiếng"},
		{"uo7 -> ươ", "uo7", "ươ"},
		{"d9uo7c5 -> được", "d9uo7c5", "được"},
		{"toan1 -> toán", "toan1", "toán"},
		{"hoa2 -> hoà", "hoa2", "hoà"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newVNIEngine()
			typeRunes(t, e, tt.input)
			if got := e.Buffer(); got != tt.expected {
				t.Errorf("Buffer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestVNI_ToneRemoval(t *testing.T) {
	e := newVNIEngine()
	typeRunes(t, e, "a10")
	if got := e.Buffer(); got != "a" {
		t.Errorf("Buffer() = %q, want %q", got, "a")
	}
}

func TestVNI_RepeatedMarkUndoes(t *testing.T) {
	// The second 6 undoes the circumflex even after an intervening letter;
	// no literal is emitted.
	e := newVNIEngine()
	typeRunes(t, e, "vie6t6")
	if got := e.Buffer(); got != "viet" {
		t.Errorf("Buffer() = %q, want %q", got, "viet")
	}
}

func TestVNI_RepeatedToneTogglesOff(t *testing.T) {
	e := newVNIEngine()
	typeRunes(t, e, "a11")
	if got := e.Buffer(); got != "a" {
		t.Errorf("Buffer() = %q, want %q", got, "a")
	}
}

func TestVNI_DigitWithNoTargetIsLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"9", "9"},       // no d to modify
		{"1", "1"},       // no nucleus
		{"b6", "b6"},     // no vowel for circumflex
		{"a7", "a7"},     // a does not take a horn
		{"xy60", "xy60"}, // y takes neither circumflex nor a removable tone
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := newVNIEngine()
			typeRunes(t, e, tt.input)
			if got := e.Buffer(); got != tt.expected {
				t.Errorf("Buffer() = %q, want %q", got, tt.expected)
			}
		})
	}
}
