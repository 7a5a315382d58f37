package engine

// Config holds the per-engine options.
type Config struct {
	// Method selects the typing convention (Telex or VNI).
	Method Method

	// Style selects tone placement on oa/oe/uy open syllables.
	Style ToneStyle

	// SkipWShortcut suppresses the Telex lone w -> ư shortcut.
	SkipWShortcut bool

	// EscRestore makes ESC reinstall the raw ASCII spelling of the word.
	EscRestore bool

	// FreeTone accepts any tone on any vowel, skipping syllable validation.
	FreeTone bool

	// SmartMode marks a word as non-Vietnamese when, after a transformation
	// or once the word carries a tone or mark, its grapheme sequence matches
	// no legal syllable shape; later keys in that word bypass transformation.
	SmartMode bool

	// InstantRestore additionally reverts such a word to its raw ASCII
	// spelling the moment it is proven non-Vietnamese.
	InstantRestore bool

	// ShortcutsEnabled turns the word-boundary shortcut expander on.
	ShortcutsEnabled bool

	// Enabled gates the whole engine; when false every key yields ActionNone.
	Enabled bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Method:           MethodTelex,
		Style:            StyleTraditional,
		SkipWShortcut:    false,
		EscRestore:       true,
		FreeTone:         false,
		SmartMode:        false,
		InstantRestore:   false,
		ShortcutsEnabled: true,
		Enabled:          true,
	}
}

func methodFor(m Method) InputMethod {
	if m == MethodVNI {
		return NewVNIMethod()
	}
	return NewTelexMethod()
}
