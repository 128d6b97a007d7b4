package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/domino/pkg/cache"
	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/pipeline"
)

func newTestModel() LRModel {
	runner := pipeline.NewRunner(cache.NewMemoryCache(0, 0), nil, log.New(io.Discard))
	return NewLRModel(context.Background(), runner, pipeline.Options{})
}

func typeText(t *testing.T, m LRModel, text string) LRModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(LRModel)
}

func press(t *testing.T, m LRModel, key tea.KeyType) (LRModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(LRModel), cmd
}

func TestLRModelEditing(t *testing.T) {
	m := newTestModel()
	m = typeText(t, m, "2,1x")
	if m.Fields[0] != "2,1" {
		t.Errorf("first field = %q, want 2,1", m.Fields[0])
	}

	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "33")
	m, _ = press(t, m, tea.KeyBackspace)
	if m.Focus != 1 || m.Fields[1] != "3" {
		t.Errorf("focus %d, second field %q", m.Focus, m.Fields[1])
	}

	if _, cmd := press(t, m, tea.KeyEsc); cmd == nil {
		t.Error("esc returned no command")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
}

func TestLRModelCompute(t *testing.T) {
	m := newTestModel()
	m = typeText(t, m, "2,1")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "2,1")

	m, cmd := press(t, m, tea.KeyEnter)
	if !m.Busy || cmd == nil {
		t.Fatalf("enter: busy %v, cmd %v", m.Busy, cmd)
	}
	if !strings.Contains(m.View(), "computing") {
		t.Error("busy view does not say computing")
	}

	next, _ := m.Update(cmd())
	m = next.(LRModel)
	if m.Busy || m.Err != nil || m.Result == nil {
		t.Fatalf("after result: busy %v, err %v", m.Busy, m.Err)
	}
	if m.Result.Total != 8 || len(m.Result.Coefficients) != 7 {
		t.Errorf("result total %d, %d shapes", m.Result.Total, len(m.Result.Coefficients))
	}

	for range 10 {
		m, _ = press(t, m, tea.KeyDown)
	}
	if m.Cursor != 6 {
		t.Errorf("cursor = %d, want it clamped to 6", m.Cursor)
	}
	m, _ = press(t, m, tea.KeyUp)
	if !strings.Contains(m.View(), "[8 fillings, 7 shapes]") {
		t.Errorf("view:\n%s", m.View())
	}

	m = typeText(t, m, "c")
	if !m.ShowCombine || m.Combined == "" {
		t.Fatalf("combine view: show %v, drawing %q", m.ShowCombine, m.Combined)
	}
	if !strings.Contains(m.View(), "combined 2,1 ⊗ 2,1") {
		t.Errorf("combine view:\n%s", m.View())
	}
}

func TestLRModelErrors(t *testing.T) {
	m := newTestModel()
	m = typeText(t, m, "1,2")
	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil || !errors.Is(m.Err, errors.ErrCodeInvalidPartition) {
		t.Fatalf("invalid first field: cmd %v, err %v", cmd, m.Err)
	}
	if !strings.Contains(m.View(), "✗") {
		t.Errorf("error view:\n%s", m.View())
	}

	m = newTestModel()
	m = typeText(t, m, "1")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "13")
	m, cmd = press(t, m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	next, _ := m.Update(cmd())
	m = next.(LRModel)
	if !errors.Is(m.Err, errors.ErrCodeLimitExceeded) {
		t.Errorf("oversized second field error = %v", m.Err)
	}
}
