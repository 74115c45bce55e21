package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_Level(t *testing.T) {
	tests := []struct {
		env  string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			Init()
			if got := Log.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_JSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "JSON")
	Init()
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", Log.Formatter)
	}
}

func TestToFile(t *testing.T) {
	Init()
	path := filepath.Join(t.TempDir(), "game.log")
	c, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile() error = %v", err)
	}
	Log.Info("quest started")
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	Init()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "quest started") {
		t.Errorf("log file = %q, want the message", data)
	}
}
