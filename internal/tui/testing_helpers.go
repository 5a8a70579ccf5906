package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tcpjson/internal/config"
)

// CreateTestModel creates a sized Model for testing
func CreateTestModel(t *testing.T, cfg config.Config) *Model {
	t.Helper()

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	t.Cleanup(m.Cleanup)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return &m
}

// RunCmd executes cmd and feeds every resulting message back into m,
// expanding batches. Commands returned by Update are not followed.
func RunCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			RunCmd(t, m, c)
		}
		return
	}
	if msg != nil {
		m.Update(msg)
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
