package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN")
	if err != nil {
		t.Fatal(err)
	}

	logger.Info().Msg("hidden")
	logger.Warn().Str("category", "lunch").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["message"] != "shown" || rec["category"] != "lunch" || rec["level"] != "warn" {
		t.Errorf("unexpected record: %v", rec)
	}
	if _, ok := rec["time"]; !ok {
		t.Error("record has no timestamp")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestOpen_EmptyPathIsDisabled(t *testing.T) {
	logger, closer, err := Open("", "debug")
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("level = %v, want disabled", logger.GetLevel())
	}
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calburn.log")

	for i := 0; i < 2; i++ {
		logger, closer, err := Open(path, "")
		if err != nil {
			t.Fatal(err)
		}
		logger.Info().Int("run", i).Msg("form reset")
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "form reset"); n != 2 {
		t.Errorf("found %d records, want 2", n)
	}
}
