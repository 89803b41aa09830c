package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLoggerBeforeInit(t *testing.T) {
	mu.Lock()
	logger = nil
	mu.Unlock()

	l := GetLogger()
	if l == nil {
		t.Fatal("GetLogger() returned nil")
	}
	if GetLogger() != l {
		t.Error("GetLogger() should return the same logger")
	}
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	l := InitLogger(logrus.WarnLevel, &buf)

	if GetLogger() != l {
		t.Fatal("GetLogger() should return the initialised logger")
	}

	l.Info("hidden")
	l.WithField("url", "http://example.test").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "url=\"http://example.test\"") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "porter.log")

	f, err := OpenLogFile(path, 0755, 0644)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	f.WriteString("first\n")
	f.Close()

	f, err = OpenLogFile(path, 0755, 0644)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	f.WriteString("second\n")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("log file should be appended to, got %q", data)
	}
}
