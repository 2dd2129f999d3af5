// Package output provides formatted output rendering for mined log
// templates. It supports text, JSON, and table formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/logsift/logsift/internal/tree"
)

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
	color  ColorMode
}

// New creates a new output Writer. Text output highlights pattern
// variables when the destination is a terminal.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format, color: ColorAuto}
}

// SetColorMode overrides automatic color detection.
func (wr *Writer) SetColorMode(mode ColorMode) {
	wr.color = mode
}

// WriteTemplates outputs mined templates in the configured format.
func (wr *Writer) WriteTemplates(templates []tree.Template) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(templates)
	case FormatTable:
		return wr.writeTable(templates)
	default:
		return wr.writeText(templates)
	}
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (wr *Writer) writeText(templates []tree.Template) error {
	colorize := shouldColorize(wr.color, wr.w)
	for _, t := range templates {
		pattern := t.Pattern
		if colorize {
			pattern = colorizePattern(pattern)
		}
		fmt.Fprintf(wr.w, "%6d  %s\n", t.Count, pattern)
	}
	return nil
}

func (wr *Writer) writeTable(templates []tree.Template) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNT\tPATTERN")
	fmt.Fprintln(tw, "-----\t-------")

	for _, t := range templates {
		fmt.Fprintf(tw, "%d\t%s\n", t.Count, t.Pattern)
	}

	return tw.Flush()
}
