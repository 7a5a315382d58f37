package engine

import "testing"

// Benchmarks for the per-keystroke hot path. Target: well under a
// millisecond per key.

func BenchmarkProcessKeyLetter(b *testing.B) {
	e := NewEngine()
	ev := KeyEvent{Code: KeyT}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ProcessKey(ev)
		if i%10 == 0 {
			e.Clear()
		}
	}
}

func BenchmarkProcessKeyWord(b *testing.B) {
	e := NewEngine()
	var events []KeyEvent
	for _, r := range "dduowcj" {
		ev, _ := EventForRune(r)
		events = append(events, ev)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, ev := range events {
			e.ProcessKey(ev)
		}
		e.Clear()
	}
}

func BenchmarkBackspace(b *testing.B) {
	var events []KeyEvent
	for _, r := range "nghieng" {
		ev, _ := EventForRune(r)
		events = append(events, ev)
	}
	e := NewEngine()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, ev := range events {
			e.ProcessKey(ev)
		}
		for j := 0; j < len(events); j++ {
			e.ProcessKey(KeyEvent{Code: KeyBackspace})
		}
	}
}

func BenchmarkParse(b *testing.B) {
	gs := graphemesOf("nghiêng")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parseGraphemes(gs)
	}
}

func BenchmarkRender(b *testing.B) {
	e := NewEngine()
	for _, r := range "dduowcj" {
		ev, _ := EventForRune(r)
		e.ProcessKey(ev)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Buffer()
	}
}
