package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestHandleWritesToFile(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil, false)
	log := slog.New(h)
	log.Info("hello", "n", 42)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("output %q missing message", buf.String())
	}
	if !strings.Contains(buf.String(), "42") {
		t.Errorf("output %q missing attribute value", buf.String())
	}
}

func TestEnabledDelegatesToInnerHandler(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}, false)
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should not be enabled at Warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled at Warn level")
	}
}

func TestWithAttrsPreservesOutput(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil, false)
	h2 := h.WithAttrs([]slog.Attr{slog.String("k", "v")})
	log := slog.New(h2)
	log.Info("msg")
	if !strings.Contains(buf.String(), "msg") {
		t.Errorf("output %q missing message", buf.String())
	}
}

func TestOpenEmptyPathDoesNotError(t *testing.T) {
	log, closer, err := Open("", false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer.Close()
	if log == nil {
		t.Fatal("expected a non-nil logger")
	}
}

func TestOpenWritesToFile(t *testing.T) {
	path := t.TempDir() + "/run.log"
	log, closer, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	log.Info("started")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("log file %q missing message", data)
	}
}
