package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"":        logrus.InfoLevel,
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got %v", in, want, got)
		}
	}
	for _, bad := range []string{"trace", "panic", "loud"} {
		if _, err := ParseLevel(bad); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("expected ErrInvalidLevel for %q, got %v", bad, err)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Info("hidden")
	log.WithField("mode", "easy").Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "mode=easy") {
		t.Fatalf("expected warn line with field: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "colornova.log")
	log, closer, err := OpenFile("info", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log.Info("session saved")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "session saved") {
		t.Fatalf("unexpected log contents: %q", data)
	}
}
