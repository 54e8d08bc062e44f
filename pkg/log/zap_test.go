package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitRereadsLogLevel(t *testing.T) {
	t.Cleanup(Init)

	t.Setenv("LOG_LEVEL", "error")
	Init()
	if With().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info enabled with LOG_LEVEL=error")
	}

	t.Setenv("LOG_LEVEL", "debug")
	Init()
	if !With().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug disabled after Init with LOG_LEVEL=debug")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"DEBUG":   zapcore.DebugLevel,
		" warn ":  zapcore.WarnLevel,
		"verbose": zapcore.InfoLevel,
	}
	for value, want := range tests {
		if got := parseLevel(value); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", value, got, want)
		}
	}
}
