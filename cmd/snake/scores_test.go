package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestRunsTable(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	out := runsTable([]storage.Run{
		{Length: 17, CreatedAt: at},
		{Length: 9, CreatedAt: at},
	})

	for _, want := range []string{"Rank", "Length", "Date", "17", "9", "2026-03-01 12:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestBoardName(t *testing.T) {
	tests := map[string]string{
		"snake":       "classic",
		"snake_small": "small",
		"snake_wide":  "wide",
	}
	for id, want := range tests {
		if got := boardName(id); got != want {
			t.Errorf("boardName(%q) = %q, expected %q", id, got, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	flagLogLevel = "verbose"
	if _, _, err := newLogger(false); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	flagLogFile = t.TempDir() + "/snake.log"
	defer func() { flagLogLevel, flagLogFile = "warn", "" }()

	logger, closeLog, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello")
	closeLog()
}
