package buildinfo

import (
	"strings"
	"testing"
)

func TestCacheScope(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.0", "none"
	if got := CacheScope(); got != "v1.2.0" {
		t.Errorf("CacheScope() = %q, want v1.2.0", got)
	}

	Commit = "0123456789abcdef"
	if got := CacheScope(); got != "v1.2.0-0123456" {
		t.Errorf("CacheScope() = %q, want v1.2.0-0123456", got)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q", Template())
	}
	if Current().Version != Version {
		t.Errorf("Current().Version = %q, want %q", Current().Version, Version)
	}
}
