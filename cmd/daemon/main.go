// The daemon exposes one engine instance on the session bus so an IME
// frontend can feed it key events and apply the resulting edit commands.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/hnmai/vikey/internal/config"
	"github.com/hnmai/vikey/internal/engine"
)

const (
	serviceName = "com.github.vikey.Engine"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from the
// frontend.
type InputEngine struct {
	engine *engine.Engine
	logger *slog.Logger
}

// ProcessKey handles one key event. Returns the edit command fields the
// frontend applies to the focused text field.
func (e *InputEngine) ProcessKey(code uint32, capsLock, ctrl, shift bool) (uint8, uint32, string, bool, *dbus.Error) {
	cmd := e.engine.ProcessKey(engine.KeyEvent{
		Code:     uint16(code),
		CapsLock: capsLock,
		Ctrl:     ctrl,
		Shift:    shift,
	})
	e.logger.Debug("key",
		"code", fmt.Sprintf("0x%02x", code),
		"action", cmd.Action,
		"backspace", cmd.Backspace,
		"chars", cmd.Chars,
		"buffer", e.engine.Buffer(),
	)
	return uint8(cmd.Action), uint32(cmd.Backspace), cmd.Chars, cmd.Consumed, nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.logger.Info("engine enabled", "enabled", enabled)
	return nil
}

// Reset clears the current-word buffer.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Clear()
	return nil
}

// ResetAll clears the buffer and the committed-word history.
func (e *InputEngine) ResetAll() *dbus.Error {
	e.engine.ClearAll()
	return nil
}

// RestoreWord seeds the buffer with an already-composed word.
func (e *InputEngine) RestoreWord(word string) *dbus.Error {
	e.engine.RestoreWord(word)
	return nil
}

// AddShortcut installs a word-boundary expansion.
func (e *InputEngine) AddShortcut(trigger, replacement string) *dbus.Error {
	e.engine.AddShortcut(trigger, replacement)
	return nil
}

// RemoveShortcut deletes a word-boundary expansion.
func (e *InputEngine) RemoveShortcut(trigger string) *dbus.Error {
	e.engine.RemoveShortcut(trigger)
	return nil
}

// Buffer returns the current preedit string.
func (e *InputEngine) Buffer() (string, *dbus.Error) {
	return e.engine.Buffer(), nil
}

func run(configPath string, logLevel string) error {
	level := slog.LevelInfo
	if logLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	eng := engine.NewEngineWith(settings.EngineConfig())
	for trigger, replacement := range settings.Shortcuts {
		eng.AddShortcut(trigger, replacement)
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("name %s already taken - another instance may be running", serviceName)
	}

	obj := &InputEngine{engine: eng, logger: logger}
	if err := conn.Export(obj, dbus.ObjectPath(objectPath), serviceName); err != nil {
		return fmt.Errorf("export object: %w", err)
	}

	logger.Info("vikey daemon running",
		"service", serviceName,
		"path", objectPath,
		"method", methodName(settings.InputMethod),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("shutting down")
	return nil
}

func methodName(m int) string {
	if m == int(engine.MethodVNI) {
		return "VNI"
	}
	return "Telex"
}

func main() {
	var configPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "vikey-daemon",
		Short: "Vietnamese input method engine daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, logLevel)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "settings file (default: XDG config path)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (info, debug)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
