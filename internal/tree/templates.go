package tree

import "sort"

// Template is one refined line shape: the pattern along a root-to-terminal
// path, and how many input lines ended on it.
type Template struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
}

// Templates flattens the tree into a template list, one entry per node with
// a nonzero terminal count. Positions holding several alternative values
// render as the wildcard "<*>"; subword positions join the preceding segment
// without a space. Sorted by count descending, then pattern.
func (t *Tree) Templates() []Template {
	var out []Template

	var walk func(id NodeID, prefix string)
	walk = func(id NodeID, prefix string) {
		for ; id != None; id = t.at(id).sibling {
			n := t.at(id)

			seg := "<*>"
			if len(n.values) == 1 {
				seg = n.values[0].Text
			}

			pat := seg
			if prefix != "" {
				if n.values[0].Subword {
					pat = prefix + seg
				} else {
					pat = prefix + " " + seg
				}
			}

			if n.terminal > 0 {
				out = append(out, Template{Pattern: pat, Count: n.terminal})
			}
			walk(n.child, pat)
		}
	}
	walk(t.at(t.root).child, "")

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}
