package engine

// Virtual key codes. The engine speaks the macOS keycode table; hosts on
// other platforms translate their native codes before calling in.
const (
	KeyA         uint16 = 0x00
	KeyS         uint16 = 0x01
	KeyD         uint16 = 0x02
	KeyF         uint16 = 0x03
	KeyH         uint16 = 0x04
	KeyG         uint16 = 0x05
	KeyZ         uint16 = 0x06
	KeyX         uint16 = 0x07
	KeyC         uint16 = 0x08
	KeyV         uint16 = 0x09
	KeyB         uint16 = 0x0B
	KeyQ         uint16 = 0x0C
	KeyW         uint16 = 0x0D
	KeyE         uint16 = 0x0E
	KeyR         uint16 = 0x0F
	KeyY         uint16 = 0x10
	KeyT         uint16 = 0x11
	KeyO         uint16 = 0x1F
	KeyU         uint16 = 0x20
	KeyI         uint16 = 0x22
	KeyP         uint16 = 0x23
	KeyL         uint16 = 0x25
	KeyJ         uint16 = 0x26
	KeyK         uint16 = 0x28
	KeyN         uint16 = 0x2D
	KeyM         uint16 = 0x2E
	Key1         uint16 = 0x12
	Key2         uint16 = 0x13
	Key3         uint16 = 0x14
	Key4         uint16 = 0x15
	Key5         uint16 = 0x17
	Key6         uint16 = 0x16
	Key7         uint16 = 0x1A
	Key8         uint16 = 0x1C
	Key9         uint16 = 0x19
	Key0         uint16 = 0x1D
	KeySpace     uint16 = 0x31
	KeyBackspace uint16 = 0x33
	KeyTab       uint16 = 0x30
	KeyReturn    uint16 = 0x24
	KeyEscape    uint16 = 0x35
	KeyLBracket  uint16 = 0x21
	KeyRBracket  uint16 = 0x1E
	KeyDot       uint16 = 0x2F
	KeyComma     uint16 = 0x2B
	KeySlash     uint16 = 0x2C
	KeySemicolon uint16 = 0x29
	KeyQuote     uint16 = 0x27
	KeyMinus     uint16 = 0x1B
	KeyEqual     uint16 = 0x18
)

// keyChars maps a key code to its unshifted and shifted characters.
var keyChars = map[uint16][2]rune{
	KeyA: {'a', 'A'}, KeyB: {'b', 'B'}, KeyC: {'c', 'C'}, KeyD: {'d', 'D'},
	KeyE: {'e', 'E'}, KeyF: {'f', 'F'}, KeyG: {'g', 'G'}, KeyH: {'h', 'H'},
	KeyI: {'i', 'I'}, KeyJ: {'j', 'J'}, KeyK: {'k', 'K'}, KeyL: {'l', 'L'},
	KeyM: {'m', 'M'}, KeyN: {'n', 'N'}, KeyO: {'o', 'O'}, KeyP: {'p', 'P'},
	KeyQ: {'q', 'Q'}, KeyR: {'r', 'R'}, KeyS: {'s', 'S'}, KeyT: {'t', 'T'},
	KeyU: {'u', 'U'}, KeyV: {'v', 'V'}, KeyW: {'w', 'W'}, KeyX: {'x', 'X'},
	KeyY: {'y', 'Y'}, KeyZ: {'z', 'Z'},
	Key1: {'1', '!'}, Key2: {'2', '@'}, Key3: {'3', '#'}, Key4: {'4', '$'},
	Key5: {'5', '%'}, Key6: {'6', '^'}, Key7: {'7', '&'}, Key8: {'8', '*'},
	Key9: {'9', '('}, Key0: {'0', ')'},
	KeySpace: {' ', ' '},
	KeyDot:   {'.', '>'}, KeyComma: {',', '<'}, KeySlash: {'/', '?'},
	KeySemicolon: {';', ':'}, KeyQuote: {'\'', '"'}, KeyMinus: {'-', '_'},
	KeyEqual: {'=', '+'}, KeyLBracket: {'[', '{'}, KeyRBracket: {']', '}'},
}

// eventForRune is the inverse of keyChars, built once at init.
var eventForRune = map[rune]KeyEvent{}

func init() {
	for code, pair := range keyChars {
		if _, ok := eventForRune[pair[0]]; !ok {
			eventForRune[pair[0]] = KeyEvent{Code: code}
		}
		if pair[1] != pair[0] {
			if _, ok := eventForRune[pair[1]]; !ok {
				eventForRune[pair[1]] = KeyEvent{Code: code, Shift: true}
			}
		}
	}
}

// RuneForKey translates a key event to the character it types. Letters
// honour Shift and Caps Lock; other keys honour Shift only.
func RuneForKey(ev KeyEvent) (rune, bool) {
	pair, ok := keyChars[ev.Code]
	if !ok {
		return 0, false
	}
	if pair[0] >= 'a' && pair[0] <= 'z' {
		if ev.Shift != ev.CapsLock {
			return pair[1], true
		}
		return pair[0], true
	}
	if ev.Shift {
		return pair[1], true
	}
	return pair[0], true
}

// EventForRune returns the key event that types the given character.
// Used by hosts replaying text and by tests.
func EventForRune(r rune) (KeyEvent, bool) {
	ev, ok := eventForRune[r]
	return ev, ok
}
