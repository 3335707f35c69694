package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	// 1MB is the smallest size lumberjack allows.
	log, err := New(Options{
		Level: "debug",
		File: FileConfig{
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 2,
			MaxAgeDays: 1,
			Compress:   false,
		},
	})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	longMessage := strings.Repeat("x", 200)
	sugar := log.Sugar()
	for i := 0; i < 15000; i++ {
		sugar.Infof("Log entry %d: %s", i, longMessage)
	}
	Sync(log)

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		name := f.Name()
		if name == "test.log" || !strings.HasPrefix(name, "test") {
			continue
		}
		rotated++
		// Rotated files look like test-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s doesn't have expected timestamp format", name)
		}
	}
	if rotated == 0 {
		t.Error("no rotated files found")
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), tt.level+".log")
			log, err := New(Options{Level: tt.level, File: FileConfig{Path: logFile, MaxSizeMB: 10}})
			if err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			log.Debug("debug message")
			log.Info("info message")
			log.Warn("warn message")
			log.Error("error message")
			Sync(log)

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	log.Info("resolved gradient", zap.String("palette", "viridis"))
	Sync(log)
	if !strings.Contains(buf.String(), "resolved gradient") || !strings.Contains(buf.String(), "viridis") {
		t.Errorf("console output = %q", buf.String())
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	log, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if log.Core().Enabled(zap.ErrorLevel) {
		t.Error("expected a no-op logger")
	}
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) returned nil")
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != zap.WarnLevel {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if lvl, _ := ParseLevel(""); lvl != zap.InfoLevel {
		t.Errorf("ParseLevel(\"\") = %v, want info", lvl)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 || !cfg.Compress {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
