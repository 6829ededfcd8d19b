package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/burtbyproxy/gridtactics/internal/config"
)

func TestNewWithSinkFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithSink(zapcore.AddSync(&buf), zapcore.InfoLevel)
	log.Debugw("hidden")
	log.Infow("unit selected", "unit", 3)
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug line filtered, got %q", out)
	}
	if !strings.Contains(out, "INFO") || !strings.Contains(out, `"unit": 3`) {
		t.Fatalf("expected console-encoded info line, got %q", out)
	}
}

func TestNewWritesFile(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "scene.log")
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Infow("scene ready")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "scene ready") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "loud"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected bad level to fail")
	}
	cfg = config.Default().Log
	cfg.File = ""
	if _, err := New(cfg); err == nil {
		t.Fatal("expected empty path to fail")
	}
}
