package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLoggerWritesLevels(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir, false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Printf("session %s opened\n", "abc")
	l.Debugf("hidden detail")
	l.Warnf("pack %s skipped", "office")
	l.Zap().Info("structured", zap.Int("items", 20))
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	for _, want := range []string{"INFO", "session abc opened", "WARN", "pack office skipped", "items"} {
		if !strings.Contains(text, want) {
			t.Fatalf("log missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "hidden detail") {
		t.Fatalf("debug line written without verbose:\n%s", text)
	}
	if strings.Contains(text, "opened\n\n") {
		t.Fatalf("trailing newline not trimmed:\n%s", text)
	}
}

func TestVerboseLoggerKeepsDebug(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Debugf("board %dx%d", 80, 21)
	_ = l.Close()
	data, _ := os.ReadFile(filepath.Join(dir, FileName))
	if !strings.Contains(string(data), "board 80x21") {
		t.Fatalf("expected debug line, got:\n%s", data)
	}
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	var l *Logger
	l.Printf("ignored")
	if err := l.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	n := Nop()
	n.Errorf("ignored %d", 1)
	if err := n.Close(); err != nil {
		t.Fatalf("nop close: %v", err)
	}
}
