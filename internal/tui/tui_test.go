package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chessprofile/chess-profile/internal/config"
	"github.com/chessprofile/chess-profile/internal/export"
	"github.com/chessprofile/chess-profile/internal/model"
)

func TestModel_ToggleOptions(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)
	if !m.skipMalformed {
		t.Error("ctrl+s should enable skip malformed")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	m = updated.(Model)
	if !m.verbose {
		t.Error("ctrl+v should enable verbose output")
	}
}

func TestModel_ApplyEventFiltersVerbose(t *testing.T) {
	m := NewModel(nil)

	m = m.applyEvent(export.ProgressEvent{Message: "quiet", Level: export.LevelVerbose, Done: 1, Total: 4})
	if len(m.logs) != 0 {
		t.Errorf("verbose event should be hidden, logs = %v", m.logs)
	}
	if m.done != 1 || m.total != 4 {
		t.Errorf("progress = %d/%d, want 1/4", m.done, m.total)
	}

	for i := 0; i < maxLogs+5; i++ {
		m = m.applyEvent(export.ProgressEvent{Message: "line", Level: export.LevelInfo})
	}
	if len(m.logs) != maxLogs {
		t.Errorf("kept %d logs, want %d", len(m.logs), maxLogs)
	}
}

func TestModel_ExportDone(t *testing.T) {
	m := NewModel(nil)
	m.state = StateExporting

	summary := &export.Summary{Username: "alice", Path: "alice_games.csv", Games: 3,
		From: model.Month{Year: 2020, Month: 3}, To: model.Month{Year: 2020, Month: 6}}
	updated, _ := m.Update(ExportDoneMsg{Summary: summary})
	m = updated.(Model)
	if m.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", m.state)
	}
	if !strings.Contains(m.View(), "Games: 3") {
		t.Error("complete view should show the game count")
	}
}

func TestModel_ExportFailedShowsRecord(t *testing.T) {
	m := NewModel(nil)
	m.state = StateExporting

	recErr := &export.RecordError{Month: model.Month{Year: 2020, Month: 3}, Raw: `[Black "bob"]`, Err: errors.New("record has no White tag")}
	updated, _ := m.Update(ExportDoneMsg{Summary: &export.Summary{}, Err: recErr})
	m = updated.(Model)
	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), `[Black "bob"]`) {
		t.Error("error view should show the offending record")
	}
}
