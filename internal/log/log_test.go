package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetRoutesPackageLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	Infow("schedule built", "segments", 7)
	Warnf("lead length %d", 14)
	Errorw("command failed", "error", "boom")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "schedule built" {
		t.Errorf("message = %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["segments"]; got != int64(7) {
		t.Errorf("segments field = %v, want 7", got)
	}
	if entries[1].Message != "lead length 14" || entries[1].Level != zapcore.WarnLevel {
		t.Errorf("unexpected warn entry: %+v", entries[1])
	}
	if entries[2].Level != zapcore.ErrorLevel || entries[2].ContextMap()["error"] != "boom" {
		t.Errorf("unexpected error entry: %+v", entries[2])
	}
}

func TestUninitializedLoggerIsSafe(t *testing.T) {
	log = nil
	Debugw("nothing happens", "n", 1)
	if log == nil {
		t.Fatal("expected fallback logger")
	}
	Sync()
}

func TestInit(t *testing.T) {
	if err := Init(false); err != nil {
		t.Fatalf("Init(false) error = %v", err)
	}
	if err := Init(true); err != nil {
		t.Fatalf("Init(true) error = %v", err)
	}
	Set(zap.NewNop())
}
