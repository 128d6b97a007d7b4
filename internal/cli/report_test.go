package cli

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/domino/pkg/domino"
	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/partition"
)

func TestReportError(t *testing.T) {
	_, notTileable := domino.Fill(partition.Partition{3})
	_, notPartition := partition.Validate("1,2")

	tests := []struct {
		name     string
		err      error
		message  string
		hint     string
		wantHint bool
	}{
		{"not tileable", notTileable, errors.UserMessage(notTileable), "corners and holes", true},
		{"not a partition", notPartition, errors.UserMessage(notPartition), "weakly decreasing", true},
		{"limit", errors.New(errors.ErrCodeLimitExceeded, "second partition has 13 boxes, the limit is 12"), "the limit is 12", "[limits]", true},
		{"internal", errors.New(errors.ErrCodeInternal, "encode tableau"), "encode tableau", "", false},
		{"plain", stderrors.New("unknown command \"fil\""), "unknown command", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ReportError(&buf, tt.err)
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if !strings.Contains(lines[0], iconError) || !strings.Contains(lines[0], tt.message) {
				t.Errorf("error line = %q, want %q", lines[0], tt.message)
			}
			if tt.wantHint != (len(lines) == 2) {
				t.Fatalf("ReportError wrote %d lines, want hint %v:\n%s", len(lines), tt.wantHint, buf.String())
			}
			if tt.wantHint && !strings.Contains(lines[1], tt.hint) {
				t.Errorf("hint = %q, want %q", lines[1], tt.hint)
			}
		})
	}
}
