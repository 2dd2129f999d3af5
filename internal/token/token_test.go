package token

import "testing"

// collect drains a scanner into a token slice.
func collect(t *testing.T, line string) []*Token {
	t.Helper()
	s := NewScanner(line)
	var tokens []*Token
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if tok == nil {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func texts(tokens []*Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestScannerWords(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain words", "connection from host", []string{"connection", "from", "host"}},
		{"extra whitespace", "  a \t b  ", []string{"a", "b"}},
		{"empty line", "", nil},
		{"blank line", "   \t ", nil},
		{"integer", "status 200", []string{"status", PosInt}},
		{"time", "at 22:14:15 done", []string{"at", Time24hr, "done"}},
		{"duration", "took 1:02:03", []string{"took", Duration}},
		{"ipv4", "from 192.168.0.1 port", []string{"from", IPv4, "port"}},
		{"placeholder passthrough", "%date-rfc3164% up", []string{DateRFC3164, "up"}},
		{"partial ipv4 stays literal", "10.0.0.1x", []string{"10.0.0.1x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(collect(t, tt.line))
			if len(got) != len(tt.want) {
				t.Fatalf("tokens = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScannerIPv4Prefixlen(t *testing.T) {
	tokens := collect(t, "net 10.0.0.0/24 up")

	want := []string{"net", IPv4, "/", PosInt, "up"}
	got := texts(tokens)
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// The expanded tokens are all subwords; the address and prefix length
	// are special.
	for _, i := range []int{1, 2, 3} {
		if !tokens[i].Subword {
			t.Errorf("token[%d] (%q) not marked subword", i, tokens[i].Text)
		}
	}
	if !tokens[1].Special || !tokens[3].Special {
		t.Error("address and prefix length should be special")
	}
	if tokens[2].Special {
		t.Error("slash separator should not be special")
	}
}

func TestScannerSpecialFlag(t *testing.T) {
	tokens := collect(t, "200")
	if len(tokens) != 1 || !tokens[0].Special || tokens[0].Text != PosInt {
		t.Fatalf("tokens = %+v, want one special %q", tokens, PosInt)
	}

	tokens = collect(t, "hello")
	if len(tokens) != 1 || tokens[0].Special {
		t.Fatalf("tokens = %+v, want one non-special literal", tokens)
	}
}

func TestQueueOverflow(t *testing.T) {
	var q queue
	for i := 0; i < queueSize; i++ {
		if err := q.push(New("x")); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if err := q.push(New("x")); err != ErrQueueOverflow {
		t.Fatalf("push beyond capacity: err = %v, want ErrQueueOverflow", err)
	}
}

func TestDetectRefined(t *testing.T) {
	tok := New("404")
	tok.Subword = true
	Detect(tok)
	if tok.Text != PosInt || !tok.Special {
		t.Errorf("Detect(404) = %+v, want special %q", tok, PosInt)
	}

	tok = New("alice")
	Detect(tok)
	if tok.Text != "alice" || tok.Special {
		t.Errorf("Detect(alice) = %+v, want unchanged literal", tok)
	}

	// Stacked shapes are not expanded during refinement.
	tok = New("10.0.0.0/24")
	Detect(tok)
	if tok.Text != "10.0.0.0/24" {
		t.Errorf("Detect(10.0.0.0/24) = %q, want unchanged", tok.Text)
	}
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			"rfc3164",
			"Oct 11 22:14:15 host su: auth failure",
			"%date-rfc3164% host su: auth failure",
		},
		{
			"rfc5424",
			"2003-10-11T22:14:15.003Z host app started",
			"%date-rfc5424% host app started",
		},
		{
			"no date",
			"plain message 42",
			"plain message 42",
		},
		{
			"mid-line date",
			"ts=2003-10-11T22:14:15Z ok",
			"ts=%date-rfc5424% ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.line); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
