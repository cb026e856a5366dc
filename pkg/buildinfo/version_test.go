package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v0.3.0", "abc123", "2026-01-02T03:04:05Z"

	if got, want := Template(), "{{.Name}} v0.3.0 (commit abc123, built 2026-01-02T03:04:05Z)\n"; got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
	for _, want := range []string{"version: v0.3.0", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(String(), want) {
			t.Errorf("String() = %q, missing %q", String(), want)
		}
	}
}
