// Package token turns preprocessed log lines into token values.
//
// A token is one whitespace-delimited word, possibly rewritten to a typed
// placeholder by syntax detection. Composite shapes (ipv4/prefixlen) expand
// into several tokens via a small bounded pending queue.
package token

// Placeholder texts produced by syntax detection. A word that already starts
// with the marker byte is assumed to be a placeholder and is never
// re-detected.
const (
	Marker = '%'

	PosInt      = "%posint%"
	Time24hr    = "%time-24hr%"
	Duration    = "%duration%"
	IPv4        = "%ipv4%"
	DateRFC3164 = "%date-rfc3164%"
	DateRFC5424 = "%date-rfc5424%"
)

// Token is one observed value at a tree position.
type Token struct {
	// Text is the literal or placeholder text.
	Text string

	// Occurs counts how many times this exact text was seen at one tree
	// position.
	Occurs int

	// Subword marks values produced by splitting a longer value; they are
	// never re-split on common affixes.
	Subword bool

	// Special marks placeholder values produced by syntax detection; the
	// refiner must not decompose them as ordinary text.
	Special bool
}

// New returns a token for the given text with an occurrence count of one.
func New(text string) *Token {
	return &Token{Text: text, Occurs: 1}
}

// IsPlaceholder reports whether the token text denotes a typed placeholder.
func (t *Token) IsPlaceholder() bool {
	return len(t.Text) > 0 && t.Text[0] == Marker
}
