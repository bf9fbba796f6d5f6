package bplus

import (
	"fmt"
	"strings"
)

// DebugString renders the tree level by level, one line per depth, each node
// shown as its bracketed key list. It is not safe to call concurrently with
// any mutator: unlike Find, RangeFind and the mutators it takes no latches,
// ported from a diagnostic the original index printed straight to stdout.
// Use it only in tests or single-threaded tooling.
func (t *Tree[K]) DebugString() string {
	if t.root == nil {
		return ""
	}

	var b strings.Builder
	level := []*node[K]{t.root}
	for len(level) > 0 {
		var next []*node[K]
		for _, n := range level {
			b.WriteByte('[')
			for i, k := range n.keys {
				if i > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "%v", k)
			}
			b.WriteString("] ")
			if !n.isLeaf {
				next = append(next, n.children...)
			}
		}
		b.WriteByte('\n')
		level = next
	}
	return b.String()
}
