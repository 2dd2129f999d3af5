// Package tree implements the structure trie at the heart of logsift.
//
// Every path from the root represents a token sequence shared by the input
// lines that reach it; each position holds the alternative token values
// observed there. The tree is built incrementally, one line at a time, and
// refined once afterwards into a compact generalized template tree.
//
// Nodes live in an arena and are addressed by stable IDs, so the relinking
// the refiner performs (inserting affix nodes, collapsing chains) is plain
// index reassignment.
package tree

import (
	"github.com/tliron/commonlog"

	"github.com/logsift/logsift/internal/token"
)

var log = commonlog.GetLogger("logsift.tree")

// NodeID addresses a node in the tree's arena.
type NodeID int32

// None is the null node reference.
const None NodeID = -1

// rootText is the synthetic value of the root node.
const rootText = "[ROOT]"

type node struct {
	parent   NodeID
	sibling  NodeID
	child    NodeID
	terminal int // number of lines whose token sequence ends here
	values   []*token.Token
}

// Tree owns all state for one analysis run. It is not safe for concurrent
// use; a run is strictly single-threaded.
type Tree struct {
	nodes []node
	free  []NodeID
	root  NodeID
}

// New returns an empty tree holding only the synthetic root.
func New() *Tree {
	t := &Tree{root: None}
	t.root = t.alloc(token.New(rootText))
	return t
}

// Root returns the root node ID.
func (t *Tree) Root() NodeID { return t.root }

func (t *Tree) at(id NodeID) *node { return &t.nodes[id] }

// alloc creates a node holding v as its sole value. Pointers into the arena
// are invalidated by alloc; callers re-fetch via at().
func (t *Tree) alloc(v *token.Token) NodeID {
	fresh := node{parent: None, sibling: None, child: None, values: []*token.Token{v}}
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = fresh
		return id
	}
	t.nodes = append(t.nodes, fresh)
	return NodeID(len(t.nodes) - 1)
}

// release returns a node to the free list.
func (t *Tree) release(id NodeID) {
	t.nodes[id] = node{parent: None, sibling: None, child: None}
	t.free = append(t.free, id)
}

// NodeCount returns the number of live nodes, the root included.
func (t *Tree) NodeCount() int {
	return len(t.nodes) - len(t.free)
}

// TerminalSum returns terminal counts summed over all nodes. After a build
// this equals the number of inserted lines that produced tokens; a refine
// pass may reduce it when chain collapsing discards an interior terminal.
func (t *Tree) TerminalSum() int {
	sum := 0
	var walk func(id NodeID)
	walk = func(id NodeID) {
		for ; id != None; id = t.at(id).sibling {
			sum += t.at(id).terminal
			walk(t.at(id).child)
		}
	}
	walk(t.root)
	return sum
}
