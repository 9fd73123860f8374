package taskpaper

import "testing"

const nestedDoc = "Project:\n" +
	"\t- a\n" +
	"\t\t- b\n" +
	"\t\t\t- c\n" +
	"\t- d\n" +
	"\tHeading:\n" +
	"\t- e"

func TestParse_Nesting(t *testing.T) {
	tree := Parse(nestedDoc)
	if tree.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", tree.Len())
	}

	// Index 0 is the sentinel root, document nodes follow in line order.
	wantParents := map[string]string{
		"a":       "Project",
		"b":       "a",
		"c":       "b",
		"d":       "Project", // dedent across two levels
		"Heading": "Project",
		"e":       "Project",
	}
	for i := 1; i < len(tree.nodes); i++ {
		n := tree.nodes[i]
		wantParent, ok := wantParents[n.line.Text]
		if !ok {
			continue
		}
		if got := tree.nodes[n.parent].line.Text; got != wantParent {
			t.Errorf("parent of %q = %q, want %q", n.line.Text, got, wantParent)
		}
	}
}

func TestParse_RootSentinel(t *testing.T) {
	tree := Parse("Project:")
	root := tree.nodes[rootIndex]
	if root.line.Kind != KindRoot || root.line.Indent != -1 {
		t.Errorf("root = kind %q indent %d", root.line.Kind, root.line.Indent)
	}
	if len(root.children) != 1 {
		t.Errorf("root children = %d, want 1", len(root.children))
	}
}

// Every attached node is strictly deeper than its parent, even with ragged
// indentation.
func TestParse_DepthInvariant(t *testing.T) {
	docs := []string{
		nestedDoc,
		// Ragged: note indented two levels under a task at one.
		"Project:\n\t- task\n\t\t\tdeep note\n\t- next",
		// Indent jump larger than one.
		"Project:\n\t\t\t- jumped\n\t- back",
	}
	for _, doc := range docs {
		tree := Parse(doc)
		for i := 1; i < len(tree.nodes); i++ {
			n := tree.nodes[i]
			parentIndent := tree.nodes[n.parent].line.Indent
			if n.line.Indent <= parentIndent {
				t.Errorf("doc %q: node %q indent %d not deeper than parent indent %d",
					doc, n.line.Text, n.line.Indent, parentIndent)
			}
		}
	}
}

// Flattening reproduces document order exactly.
func TestFlatten_DocumentOrder(t *testing.T) {
	tree := Parse(nestedDoc)
	nodes, err := tree.Flatten()
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != tree.Len() {
		t.Fatalf("len(nodes) = %d, want %d", len(nodes), tree.Len())
	}
	for i, n := range nodes {
		if n.Line.Number != i {
			t.Errorf("nodes[%d].Number = %d, want %d", i, n.Line.Number, i)
		}
	}
}

// A terminating newline must not create an extra empty node; blank lines
// inside the document still do.
func TestParse_TrailingNewline(t *testing.T) {
	tests := []struct {
		text string
		n    int
	}{
		{"Project:", 1},
		{"Project:\n", 1},
		{"Project:\n\t- task\n", 2},
		{"Project:\n\n\t- task\n", 3}, // interior blank line survives
		{"Project:\n\n", 2},           // only the final empty line is dropped
		{"", 0},
	}
	for _, tt := range tests {
		if got := Parse(tt.text).Len(); got != tt.n {
			t.Errorf("Parse(%q).Len() = %d, want %d", tt.text, got, tt.n)
		}
	}
}

func TestParse_CRLF(t *testing.T) {
	tree := Parse("Project:\r\n\t- task\r\n")
	nodes, err := tree.Flatten()
	if err != nil {
		t.Fatal(err)
	}
	if nodes[0].Line.Text != "Project" || nodes[1].Line.Text != "task" {
		t.Errorf("nodes = %+v", nodes)
	}
}
