package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const testChart = `
width = 320
height = 200

[viewport.max]
left = 0
right = 10
bottom = 0
top = 100

[axes.bottom]
name = "time"

[axes.left]
lines = true
`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , json ", []string{"svg", "json"}},
		{"empty items dropped", "png,,", []string{"png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		count  int
		want   string
	}{
		{"default next to input", "", "charts/latency.toml", "svg", 1, "charts/latency.svg"},
		{"single format uses output", "out.png", "latency.toml", "png", 1, "out.png"},
		{"multiple formats strip known ext", "out/chart.svg", "latency.toml", "json", 2, "out/chart.json"},
		{"multiple formats keep base", "out/chart", "latency.toml", "pdf", 3, "out/chart.pdf"},
		{"unknown ext kept", "out/chart.v2", "latency.toml", "svg", 2, "out/chart.v2.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.input, tt.format, tt.count)
			if got != filepath.FromSlash(tt.want) && got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %d) = %q, want %q",
					tt.output, tt.input, tt.format, tt.count, got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	input := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(input, []byte(testChart), 0o644); err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(dir, "out", "axes")

	cmd := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	cmd.SetArgs([]string{"render", input, "-f", "svg,json", "-o", base})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte(">time</text>")) {
		t.Errorf("svg output missing root element or axis name:\n%s", svg)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("json output is not valid JSON:\n%s", data)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "cache", "chartaxes"))
	if err != nil || len(entries) == 0 {
		t.Errorf("expected cached artifacts, got %d entries (err = %v)", len(entries), err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(input, []byte(testChart), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing config", []string{"render", filepath.Join(dir, "missing.toml"), "--no-cache"}, "FILE_NOT_FOUND"},
		{"bad format", []string{"render", input, "-f", "gif", "--no-cache"}, "INVALID_FORMAT"},
		{"bad scale", []string{"render", input, "-f", "png", "--scale", "-1", "--no-cache"}, "scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
