package main

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/chessprofile/chess-profile/internal/export"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level export.ProgressLevel
		want  logrus.Level
	}{
		{export.LevelInfo, logrus.InfoLevel},
		{export.LevelVerbose, logrus.DebugLevel},
		{export.LevelWarning, logrus.WarnLevel},
		{export.LevelError, logrus.ErrorLevel},
		{export.LevelSuccess, logrus.InfoLevel},
	}

	for _, tt := range tests {
		if got := logLevel(tt.level); got != tt.want {
			t.Errorf("logLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestRootCmd_RequiresUsername(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when username is missing")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"check", "tui"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			if err != nil {
				t.Fatalf("Find(%q): %v", name, err)
			}
			if sub.Name() != name {
				t.Errorf("Find(%q) = %q", name, sub.Name())
			}
		})
	}
}
