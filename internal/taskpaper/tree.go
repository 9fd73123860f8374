package taskpaper

import "strings"

// Tree is the document tree. Nodes live in an arena slice and refer to each
// other by index, with a sentinel root at index 0 (kind root, indent -1).
// Children keep insertion order, which is document order.
type Tree struct {
	nodes []treeNode
}

type treeNode struct {
	line     Line
	parent   int
	children []int
}

const rootIndex = 0

// Parse builds the document tree for an entire document. Nesting is
// reconstructed purely from indent deltas relative to the previously
// appended node:
//
//   - equal indent: sibling of the previous node
//   - greater indent: child of the previous node, whatever the jump size
//   - smaller indent: child of the first ancestor of the previous node
//     whose indent is strictly smaller than the new line's
//
// Inconsistent ("ragged") indentation is never rejected.
func Parse(text string) *Tree {
	t := &Tree{
		nodes: []treeNode{{
			line:   Line{Kind: KindRoot, Indent: -1},
			parent: -1,
		}},
	}

	// A terminating newline is a line ending, not an extra empty line;
	// splitting would otherwise yield a trailing empty node that leaks a
	// bare "\n" into the notes downstream.
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	prev := rootIndex
	for number, raw := range lines {
		raw = strings.TrimSuffix(raw, "\r")
		line := ParseLine(raw, number)

		var parent int
		switch {
		case line.Indent == t.nodes[prev].line.Indent:
			parent = t.nodes[prev].parent
		case line.Indent > t.nodes[prev].line.Indent:
			parent = prev
		default:
			parent = prev
			for line.Indent <= t.nodes[parent].line.Indent {
				parent = t.nodes[parent].parent
			}
		}

		idx := len(t.nodes)
		t.nodes = append(t.nodes, treeNode{line: line, parent: parent})
		t.nodes[parent].children = append(t.nodes[parent].children, idx)
		prev = idx
	}
	return t
}

// Len returns the number of document nodes, excluding the sentinel root.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// hasProjectAncestor reports whether any ancestor of node i, excluding the
// root, is a project-kind node.
func (t *Tree) hasProjectAncestor(i int) bool {
	for p := t.nodes[i].parent; p != rootIndex && p >= 0; p = t.nodes[p].parent {
		if t.nodes[p].line.Kind == KindProject {
			return true
		}
	}
	return false
}

// parentIsTask reports whether the direct parent of node i is a task-kind
// node. The sentinel root is never task-kind.
func (t *Tree) parentIsTask(i int) bool {
	return t.nodes[t.nodes[i].parent].line.Kind == KindTask
}
