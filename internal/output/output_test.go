package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/logsift/logsift/internal/tree"
)

var sample = []tree.Template{
	{Pattern: "accepted login from %ipv4%", Count: 42},
	{Pattern: "shutdown requested", Count: 1},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"table", FormatTable},
		{"", FormatText},
		{"bogus", FormatText},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWriteTemplatesText(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatText).WriteTemplates(sample); err != nil {
		t.Fatalf("WriteTemplates() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "42  accepted login from %ipv4%") {
		t.Errorf("text output missing first template:\n%s", got)
	}
	if !strings.Contains(got, "1  shutdown requested") {
		t.Errorf("text output missing second template:\n%s", got)
	}
	// Buffer is not a terminal; no escape codes.
	if strings.Contains(got, "\033[") {
		t.Errorf("unexpected color codes in non-TTY output:\n%s", got)
	}
}

func TestWriteTemplatesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).WriteTemplates(sample); err != nil {
		t.Fatalf("WriteTemplates() error = %v", err)
	}

	var got []tree.Template
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].Pattern != sample[0].Pattern || got[0].Count != 42 {
		t.Errorf("decoded = %+v, want %+v", got, sample)
	}
}

func TestWriteTemplatesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatTable).WriteTemplates(sample); err != nil {
		t.Fatalf("WriteTemplates() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "COUNT") || !strings.Contains(got, "PATTERN") {
		t.Errorf("table output missing header:\n%s", got)
	}
	if !strings.Contains(got, "shutdown requested") {
		t.Errorf("table output missing row:\n%s", got)
	}
}

func TestColorizePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "placeholder",
			pattern: "from %ipv4% port",
			want:    "from " + colorCyan + "%ipv4%" + colorReset + " port",
		},
		{
			name:    "wildcard",
			pattern: "user=<*> ok",
			want:    "user=" + colorYellow + "<*>" + colorReset + " ok",
		},
		{
			name:    "plain text unchanged",
			pattern: "shutdown requested",
			want:    "shutdown requested",
		},
		{
			name:    "lone percent is literal",
			pattern: "disk 99% full",
			want:    "disk 99% full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorizePattern(tt.pattern); got != tt.want {
				t.Errorf("colorizePattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestWriteTemplatesTextColorAlways(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, FormatText)
	w.SetColorMode(ColorAlways)
	if err := w.WriteTemplates(sample); err != nil {
		t.Fatalf("WriteTemplates() error = %v", err)
	}
	if !strings.Contains(buf.String(), colorCyan+"%ipv4%"+colorReset) {
		t.Errorf("forced color output missing highlighted placeholder:\n%q", buf.String())
	}
}
