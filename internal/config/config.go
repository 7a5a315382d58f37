// Package config persists daemon settings as TOML under the XDG config
// directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hnmai/vikey/internal/engine"
)

// Settings holds the on-disk daemon configuration.
type Settings struct {
	Enabled          bool `toml:"enabled"`
	InputMethod      int  `toml:"input_method"` // 0=Telex, 1=VNI
	ToneStyle        int  `toml:"tone_style"`   // 0=traditional, 1=modern
	SkipWShortcut    bool `toml:"skip_w_shortcut"`
	EscRestore       bool `toml:"esc_restore"`
	FreeTone         bool `toml:"free_tone"`
	SmartMode        bool `toml:"smart_mode"`
	InstantRestore   bool `toml:"instant_restore"`
	ShortcutsEnabled bool `toml:"shortcuts_enabled"`

	// Shortcuts expand whole words at boundaries: trigger -> replacement.
	Shortcuts map[string]string `toml:"shortcuts"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Enabled:          true,
		InputMethod:      int(engine.MethodTelex),
		ToneStyle:        int(engine.StyleTraditional),
		SkipWShortcut:    false,
		EscRestore:       true,
		FreeTone:         false,
		SmartMode:        false,
		InstantRestore:   false,
		ShortcutsEnabled: true,
		Shortcuts:        map[string]string{},
	}
}

// EngineConfig converts the settings to an engine configuration.
func (s *Settings) EngineConfig() engine.Config {
	return engine.Config{
		Method:           engine.Method(s.InputMethod),
		Style:            engine.ToneStyle(s.ToneStyle),
		SkipWShortcut:    s.SkipWShortcut,
		EscRestore:       s.EscRestore,
		FreeTone:         s.FreeTone,
		SmartMode:        s.SmartMode,
		InstantRestore:   s.InstantRestore,
		ShortcutsEnabled: s.ShortcutsEnabled,
		Enabled:          s.Enabled,
	}
}

// Path returns the XDG-compliant config file path.
func Path() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "vikey", "config.toml")
}

// Load reads settings from path, creating the default file when absent.
// An empty path uses Path().
func Load(path string) (*Settings, error) {
	if path == "" {
		path = Path()
	}
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(s, path); err != nil {
			return s, err
		}
		return s, nil
	}
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(s *Settings, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}
