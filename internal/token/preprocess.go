package token

import (
	"strings"

	"github.com/logsift/logsift/internal/syntax"
)

// Preprocess substitutes multi-word date formats directly in the character
// stream, before tokenization. Only syntaxes that legitimately span several
// words belong here; everything else is safer to detect per word.
//
// At each position RFC3164 is tried before RFC5424; the first match wins and
// only the matched span is replaced.
func Preprocess(line string) string {
	var out strings.Builder
	out.Grow(len(line))

	b := []byte(line)
	for i := 0; i < len(b); {
		if n, ok := syntax.DateRFC3164(b[i:]); ok {
			out.WriteString(DateRFC3164)
			i += n
			continue
		}
		if n, ok := syntax.DateRFC5424(b[i:]); ok {
			out.WriteString(DateRFC5424)
			i += n
			continue
		}
		out.WriteByte(b[i])
		i++
	}
	return out.String()
}
