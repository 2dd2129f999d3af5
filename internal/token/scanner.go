package token

import (
	"github.com/logsift/logsift/internal/syntax"
)

// Scanner iterates over the tokens of one preprocessed line.
//
// Tokens pending from a composite expansion are returned before any further
// input is consumed.
type Scanner struct {
	rest    string
	pending queue
}

// NewScanner returns a scanner over the given line.
func NewScanner(line string) *Scanner {
	return &Scanner{rest: line}
}

// Next returns the next token of the line, or nil when the line is
// exhausted. It returns ErrQueueOverflow if a composite expansion exceeds
// the pending queue capacity.
func (s *Scanner) Next() (*Token, error) {
	if t := s.pending.pop(); t != nil {
		return t, nil
	}

	i := 0
	for i < len(s.rest) && isSpace(s.rest[i]) {
		i++
	}
	begin := i
	for i < len(s.rest) && !isSpace(s.rest[i]) {
		i++
	}
	if begin == i {
		s.rest = ""
		return nil, nil
	}

	word := s.rest[begin:i]
	s.rest = s.rest[i:]

	t := New(word)
	if word[0] == Marker {
		// Already in placeholder form; never re-detected.
		return t, nil
	}
	if err := s.detect(t, true); err != nil {
		return nil, err
	}
	return t, nil
}

// detect runs the syntax recognizers against the token text in fixed order
// and rewrites matches to their placeholder.
//
// The order matters: 24-hour time and duration overlap with each other and
// with plain integers, so the narrower shapes are tested first. A word
// matches only when consumed in full; the one exception is the composite
// ipv4/prefixlen check, which is only attempted in stacked mode.
func (s *Scanner) detect(t *Token, stacked bool) error {
	word := []byte(t.Text)

	if n, ok := syntax.PosInt(word); ok && n == len(word) {
		t.Text = PosInt
		t.Special = true
		return nil
	}
	if n, ok := syntax.Time24hr(word); ok && n == len(word) {
		t.Text = Time24hr
		t.Special = true
		return nil
	}
	if n, ok := syntax.Duration(word); ok && n == len(word) {
		t.Text = Duration
		t.Special = true
		return nil
	}
	if n, ok := syntax.IPv4(word); ok {
		if n == len(word) {
			t.Text = IPv4
			t.Special = true
			return nil
		}
		if stacked && word[n] == '/' {
			rest := word[n+1:]
			if m, ok := syntax.PosInt(rest); ok && m == len(rest) {
				t.Text = IPv4
				t.Subword = true
				t.Special = true

				// LIFO: the slash is popped before the prefix length.
				pl := New(PosInt)
				pl.Subword = true
				pl.Special = true
				if err := s.pending.push(pl); err != nil {
					return err
				}
				sep := New("/")
				sep.Subword = true
				return s.pending.push(sep)
			}
		}
	}
	return nil
}

// Detect re-runs syntax detection on a token whose text was rewritten by the
// refiner. Composite expansion is disabled: a refined fragment must map to a
// single value.
func Detect(t *Token) {
	var s Scanner
	// With stacked mode off, detect never touches the pending queue.
	_ = s.detect(t, false)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' || c == '\n'
}
