package output

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Auto-detect based on TTY
	ColorAlways                  // Always use colors
	ColorNever                   // Never use colors
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// shouldColorize determines if output should be colorized based on mode and TTY detection.
func shouldColorize(mode ColorMode, w interface{}) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
	return false
}

// colorizePattern highlights the variable parts of a template pattern:
// detected-syntax placeholders ("%ipv4%", "%posint%", ...) in cyan and
// free wildcards ("<*>") in yellow. Literal text keeps the default color.
func colorizePattern(pattern string) string {
	var b strings.Builder
	rest := pattern
	for rest != "" {
		pct := strings.IndexByte(rest, '%')
		wild := strings.Index(rest, "<*>")

		if pct < 0 && wild < 0 {
			b.WriteString(rest)
			break
		}
		if wild >= 0 && (pct < 0 || wild < pct) {
			b.WriteString(rest[:wild])
			b.WriteString(colorYellow + "<*>" + colorReset)
			rest = rest[wild+len("<*>"):]
			continue
		}

		// A lone '%' with no closing mark is literal text.
		end := strings.IndexByte(rest[pct+1:], '%')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		span := rest[pct : pct+end+2]
		b.WriteString(rest[:pct])
		b.WriteString(colorCyan + span + colorReset)
		rest = rest[pct+end+2:]
	}
	return b.String()
}
