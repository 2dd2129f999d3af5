package tree

import (
	"github.com/logsift/logsift/internal/token"
)

// Insert tokenizes one preprocessed line and walks/extends the tree with its
// token sequence. A line that yields no tokens records nothing. The only
// error condition is pending-queue overflow during tokenization, which
// aborts the run.
func (t *Tree) Insert(line string) error {
	s := token.NewScanner(line)

	// One-token lookahead: branch merging needs to know what follows the
	// current token before deciding where it goes.
	next, err := s.Next()
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}

	cur := t.root
	for next != nil {
		wi := next
		next, err = s.Next()
		if err != nil {
			return err
		}
		cur = t.addToLevel(cur, wi, next)
	}
	t.at(cur).terminal++
	return nil
}

// addToLevel places wi under parent and returns the node it landed in.
// next is the lookahead token, nil when the line ends after wi.
func (t *Tree) addToLevel(parent NodeID, wi, next *token.Token) NodeID {
	// Exact text match against any existing alternative at this level.
	prev := None
	for id := t.at(parent).child; id != None; id = t.at(id).sibling {
		if v := findValue(t.at(id), wi.Text); v != nil {
			v.Occurs++
			return id
		}
		prev = id
	}

	// Lookahead merge: if some existing branch continues with exactly the
	// token that follows wi, the branches reconverge one step later and wi
	// is just another alternative value there. Only a sole-valued follower
	// qualifies; multi-valued followers are not generalized over. When the
	// line ends at wi, the matching follower is "no follower at all".
	for id := t.at(parent).child; id != None; id = t.at(id).sibling {
		cid := t.at(id).child
		if next == nil {
			if cid != None {
				continue
			}
		} else {
			if cid == None {
				continue
			}
			cn := t.at(cid)
			if len(cn.values) != 1 || cn.values[0].Text != next.Text {
				continue
			}
		}
		n := t.at(id)
		n.values = append(n.values, wi)
		return id
	}

	// A genuinely new alternative next position: new last sibling.
	id := t.alloc(wi)
	t.at(id).parent = parent
	if prev == None {
		t.at(parent).child = id
	} else {
		t.at(prev).sibling = id
	}
	return id
}

// findValue returns the node's value with the given text, or nil.
func findValue(n *node, text string) *token.Token {
	for _, v := range n.values {
		if v.Text == text {
			return v
		}
	}
	return nil
}
