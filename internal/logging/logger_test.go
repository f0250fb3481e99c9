package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel(""); err != nil || lvl != zapcore.InfoLevel {
		t.Fatalf("expected info default, got %v %v", lvl, err)
	}
	if lvl, err := ParseLevel("debug"); err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("expected debug, got %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWithWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zapcore.WarnLevel)
	logger.Info("hidden")
	logger.Warn("shown", zap.Int("score", 3))
	_ = logger.Sync()
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry written at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"score":3`) {
		t.Fatalf("missing warn entry: %s", out)
	}
}

func TestNewCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "speechdrill.log")
	logger, err := New(path, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log entry, got %s", data)
	}
}
