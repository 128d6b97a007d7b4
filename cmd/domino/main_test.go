package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/domino/pkg/errors"
)

func runArgs(t *testing.T, ctx context.Context, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	code = run(ctx, args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"transpose", []string{"transpose", "4,2"}, exitOK, "2,2,1,1\n", ""},
		{"verbose", []string{"-v", "transpose", "3"}, exitOK, "1,1,1\n", ""},
		{"not a partition", []string{"fill", "2,3"}, exitFailure, "", "not a partition"},
		{"not tileable", []string{"fill", "3"}, exitFailure, "", "corners and holes"},
		{"over the box limit", []string{"lr", "1", "13"}, exitFailure, "", "[limits]"},
		{"unknown command", []string{"fil", "4,2"}, exitFailure, "", "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(t, context.Background(), tt.args...)
			if code != tt.wantCode {
				t.Fatalf("run(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, _, stderr := runArgs(t, ctx, "fill", "4,2")
	if code != exitInterrupted {
		t.Errorf("run with a cancelled context = %d, want %d", code, exitInterrupted)
	}
	if strings.Contains(stderr, "✗") {
		t.Errorf("interrupted run reported an error: %q", stderr)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{context.Canceled, exitInterrupted},
		{fmt.Errorf("fill: %w", context.Canceled), exitInterrupted},
		{errors.New(errors.ErrCodeNotDominoTileable, "no inner pair"), exitFailure},
		{context.DeadlineExceeded, exitFailure},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
