package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/logsift/logsift/internal/token"
)

// Print writes the diagnostic tree dump: depth-first, one line per value,
// children after a node's own values and before its sibling. The format is
// structurally stable but not machine-parseable.
func (t *Tree) Print(w io.Writer) {
	t.print(w, t.root, 0)
}

func (t *Tree) print(w io.Writer, id NodeID, level int) {
	for id != None {
		n := t.at(id)

		printIndent(w, level, 'l')
		printValue(w, n.values[0])
		if n.terminal > 0 {
			fmt.Fprintf(w, " [nterm %d]", n.terminal)
		}
		fmt.Fprintln(w)

		for _, v := range n.values[1:] {
			printIndent(w, level, 'v')
			printValue(w, v)
			fmt.Fprintln(w)
		}

		t.print(w, n.child, level+1)
		id = n.sibling
	}
}

func printIndent(w io.Writer, level int, indicator rune) {
	fmt.Fprintf(w, "%2d%c:%s", level, indicator, strings.Repeat("   ", level))
}

func printValue(w io.Writer, v *token.Token) {
	fmt.Fprint(w, v.Text)
	if v.Subword {
		fmt.Fprint(w, " {subword}")
	}
	if v.Occurs > 1 {
		fmt.Fprintf(w, " {%d}", v.Occurs)
	}
}
