package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("warn", &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if l.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want warn", l.GetLevel())
	}
	l.Info("hidden")
	l.WithField("score", 3).Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "score=3") {
		t.Fatalf("unexpected log output %q", out)
	}

	if _, err := NewLogger("loud", &buf); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "snake.log")
	var fallback bytes.Buffer
	l, closeFn, err := OpenLogger(cfg, &fallback)
	if err != nil {
		t.Fatalf("OpenLogger: %v", err)
	}
	l.Info("to file")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if fallback.Len() != 0 {
		t.Fatalf("fallback received %q", fallback.String())
	}
}
