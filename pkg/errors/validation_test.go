package errors

import (
	"strings"
	"testing"
)

func TestValidatePartitionText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single part", "3", false},
		{"several parts", "3,2,1", false},
		{"spaces", " 4, 2 , 2 ", false},
		{"trailing comma", "2,1,", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("1,", MaxInputLength), true},
		{"letters", "3,a", true},
		{"negative", "3,-1", true},
		{"decimal", "2.5", true},
		{"newline", "3\n2", true},
		{"null byte", "3\x002", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartitionText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePartitionText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPartition) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPartition)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("svg", "svg", "text"); err != nil {
		t.Errorf("ValidateFormat(svg) = %v", err)
	}
	err := ValidateFormat("gif", "svg", "text")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateFormat(gif) = %v, want %v", err, ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "svg, text") {
		t.Errorf("message %q does not list allowed formats", err.Error())
	}
}
