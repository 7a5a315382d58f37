package config

import (
	"path/filepath"
	"testing"

	"github.com/hnmai/vikey/internal/engine"
)

func TestDefault(t *testing.T) {
	s := Default()
	if !s.Enabled {
		t.Error("Enabled should be true by default")
	}
	if s.InputMethod != int(engine.MethodTelex) {
		t.Errorf("InputMethod = %d, want Telex", s.InputMethod)
	}
	if s.ToneStyle != int(engine.StyleTraditional) {
		t.Errorf("ToneStyle = %d, want traditional", s.ToneStyle)
	}
	if !s.EscRestore {
		t.Error("EscRestore should be true by default")
	}
	if s.FreeTone {
		t.Error("FreeTone should be false by default")
	}
	if s.SmartMode {
		t.Error("SmartMode should be false by default")
	}
	if !s.ShortcutsEnabled {
		t.Error("ShortcutsEnabled should be true by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	s := Default()
	s.InputMethod = int(engine.MethodVNI)
	s.ToneStyle = int(engine.StyleModern)
	s.SmartMode = true
	s.Shortcuts = map[string]string{"vn": "Việt Nam"}

	if err := Save(s, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.InputMethod != s.InputMethod || loaded.ToneStyle != s.ToneStyle || !loaded.SmartMode {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Shortcuts["vn"] != "Việt Nam" {
		t.Errorf("shortcuts not preserved: %v", loaded.Shortcuts)
	}
}

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Enabled {
		t.Errorf("default not returned: %+v", s)
	}
}

func TestEngineConfig(t *testing.T) {
	s := Default()
	s.InputMethod = int(engine.MethodVNI)
	s.FreeTone = true
	cfg := s.EngineConfig()
	if cfg.Method != engine.MethodVNI {
		t.Errorf("Method = %v", cfg.Method)
	}
	if !cfg.FreeTone {
		t.Error("FreeTone not carried over")
	}
	if !cfg.Enabled {
		t.Error("Enabled not carried over")
	}
}
