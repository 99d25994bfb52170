package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	closeFn, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	Log.WithField("component", "test").Debug("hello")

	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(content), `"component":"test"`) {
		t.Errorf("log file = %q, want JSON entry with component field", content)
	}
}

func TestInitDefaults(t *testing.T) {
	t.Setenv("LOG_FILE", "-")
	t.Setenv("LOG_LEVEL", "nonsense")
	t.Setenv("LOG_FORMAT", "")

	closeFn, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer closeFn()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info for unknown level", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.TextFormatter", Log.Formatter)
	}
}

func TestInitBadPath(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))

	closeFn, err := Init()
	if err == nil {
		t.Error("Init() with unwritable path should fail")
	}
	if closeFn == nil {
		t.Fatal("Init() should always return a close function")
	}
	_ = closeFn()
}
