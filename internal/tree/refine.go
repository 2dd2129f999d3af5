package tree

import (
	"sort"

	"github.com/logsift/logsift/internal/token"
)

// Refine runs the one-shot post-build pass: chain collapsing, common
// prefix/suffix disjoining and duplicate squashing, depth-first with
// children visited before siblings.
//
// Refine is idempotent: a second run over an already-refined tree finds
// nothing left to change.
func (t *Tree) Refine() {
	t.refine(t.root)
}

func (t *Tree) refine(id NodeID) {
	if id == None {
		return
	}
	// Chains only collapse when the level holds a single node; decided
	// once per level.
	lone := t.at(id).sibling == None
	for id != None {
		if lone {
			t.collapseChain(id)
		}
		t.disjoinAffixes(id)
		t.squashValues(id)
		t.refine(t.at(id).child)
		id = t.at(id).sibling
	}
}

// collapseChain repeatedly merges id with its only child while both are
// single-valued whole words. The child's text joins the node's with a space,
// the child's terminal count and child pointer are adopted, and the child
// node is released.
//
// The root never collapses (its value is synthetic), and subword values are
// exempt: their neighbors are fragments of one original word, and the affix
// structure the disjoiner built must survive a second pass unchanged.
func (t *Tree) collapseChain(id NodeID) {
	n := t.at(id)
	if n.parent == None {
		return
	}
	for {
		if len(n.values) != 1 || n.values[0].Subword {
			return
		}
		cid := n.child
		if cid == None {
			return
		}
		c := t.at(cid)
		if c.sibling != None || len(c.values) != 1 || c.values[0].Subword {
			return
		}
		// Placeholders are never combined into literal text.
		if n.values[0].IsPlaceholder() || c.values[0].IsPlaceholder() {
			return
		}

		log.Debugf("collapse: %q + %q", n.values[0].Text, c.values[0].Text)
		n.values[0].Text = n.values[0].Text + " " + c.values[0].Text
		n.terminal = c.terminal
		n.child = c.child
		if c.child != None {
			t.at(c.child).parent = id
		}
		t.release(cid)
	}
}

// disjoinAffixes splits a common literal prefix and/or suffix shared by all
// of a node's values into separate subword nodes, then re-runs syntax
// detection on the shortened cores.
func (t *Tree) disjoinAffixes(id NodeID) {
	n := t.at(id)
	if len(n.values) == 1 || n.values[0].Subword {
		return
	}
	// Stripping affixes rewrites every value; a placeholder among them must
	// not be decomposed as ordinary text.
	for _, v := range n.values {
		if v.Special {
			return
		}
	}

	base := n.values[0].Text
	lenPrefix := len(base)
	lenSuffix := len(base)
	for _, v := range n.values[1:] {
		w := v.Text
		if lenPrefix > 0 {
			j := 0
			for j < lenPrefix && j < len(w) && w[j] == base[j] {
				j++
			}
			if j < lenPrefix {
				lenPrefix = j
			}
		}
		if lenSuffix > 0 {
			jmax := lenSuffix
			if len(w) < jmax {
				jmax = len(w)
			}
			j := 0
			for j < jmax && w[len(w)-j-1] == base[len(base)-j-1] {
				j++
			}
			if j < lenSuffix {
				lenSuffix = j
			}
		}
	}

	// Guard against chopping inside a delimited field: scan the candidate
	// prefix from its end backwards for boundary characters. A matched
	// quote/bracket pair whose closer falls inside the suffix window snaps
	// both lengths to the delimiters; a bare '=' or ':' extends the prefix
	// to end right after it (key=value fields).
scan:
	for j := lenPrefix - 1; j >= 0; j-- {
		switch c := base[j]; c {
		case '"', '\'', '[', '(', '<':
			if newSuffix, ok := matchingTerm(base, lenSuffix, closer(c)); ok {
				lenSuffix = newSuffix
				lenPrefix = j + 1
				break scan
			}
		case '=', ':':
			lenPrefix = j + 1
		}
	}

	if lenPrefix == 0 && lenSuffix == 0 {
		return
	}
	log.Debugf("disjoin: base=%q prefix=%d suffix=%d values=%d", base, lenPrefix, lenSuffix, len(n.values))
	t.disjoin(id, lenPrefix, lenSuffix)
}

// matchingTerm searches the suffix window of word backwards from the end for
// term. On a hit it returns the new suffix length, placing the suffix start
// exactly at the closing character.
func matchingTerm(word string, lenSuffix int, term byte) (int, bool) {
	for i := 0; i < lenSuffix; i++ {
		if word[len(word)-i-1] == term {
			return i + 1, true
		}
	}
	return 0, false
}

func closer(open byte) byte {
	switch open {
	case '[':
		return ']'
	case '(':
		return ')'
	case '<':
		return '>'
	}
	return open // quotes close themselves
}

// disjoin rewrites the node in place: it keeps the prefix (so links from
// parent and siblings stay valid), pushes the stripped value cores down into
// a new child, and hangs the suffix below that. All touched values become
// subwords and the cores go through non-stacked syntax re-detection.
//
// When prefix and suffix overlap (the {"end","eend"} case) the suffix strip
// clamps at zero, leaving an empty core value. A documented limitation of
// the heuristic, kept as-is.
func (t *Tree) disjoin(id NodeID, lenPrefix, lenSuffix int) {
	base := t.at(id).values[0].Text
	core := id

	if lenPrefix > 0 {
		pfx := token.New(base[:lenPrefix])
		pfx.Subword = true
		core = t.alloc(pfx)

		n := t.at(id)
		c := t.at(core)
		c.values, n.values = n.values, c.values
		c.child = n.child
		c.parent = id
		n.child = core
		if c.child != None {
			t.at(c.child).parent = core
		}
		for _, v := range c.values {
			v.Text = v.Text[lenPrefix:]
		}
	}

	if lenSuffix > 0 {
		sfx := token.New(base[len(base)-lenSuffix:])
		sfx.Subword = true
		sid := t.alloc(sfx)

		c := t.at(core)
		s := t.at(sid)
		s.child = c.child
		s.parent = core
		if s.child != None {
			t.at(s.child).parent = sid
		}
		c.child = sid
		for _, v := range c.values {
			cut := len(v.Text) - lenSuffix
			if cut < 0 {
				cut = 0
			}
			v.Text = v.Text[:cut]
		}
	}

	cn := t.at(core)
	for _, v := range cn.values {
		v.Subword = true
		token.Detect(v)
	}
	t.squashValues(core)
}

// squashValues sorts a node's values by text and merges equal runs, summing
// occurrence counts. Duplicates only arise after value texts were rewritten.
func (t *Tree) squashValues(id NodeID) {
	n := t.at(id)
	if len(n.values) == 1 {
		return
	}
	sort.Slice(n.values, func(i, j int) bool {
		return n.values[i].Text < n.values[j].Text
	})
	out := n.values[:1]
	for _, v := range n.values[1:] {
		last := out[len(out)-1]
		if v.Text == last.Text {
			last.Occurs += v.Occurs
		} else {
			out = append(out, v)
		}
	}
	n.values = out
}
