package taskpaper

import "fmt"

// Role is the semantic category of a node, derived from its kind plus its
// ancestor chain. It is computed, never stored.
type Role string

// Node roles.
const (
	RoleProject       Role = "project"
	RoleHeading       Role = "heading"
	RoleToDo          Role = "to-do"
	RoleChecklistItem Role = "checklist-item"
	RoleNote          Role = "note"
)

// Node is one entry of the flattened document: the line record together
// with its resolved role.
type Node struct {
	Line Line
	Role Role
}

// Flatten returns the document nodes in pre-order, which reproduces
// document order exactly. The sentinel root is not emitted. This ordering
// is the contract every downstream consumer relies on.
//
// Role rules:
//
//   - project kind with no project ancestor: project
//   - project kind under a project: heading
//   - task kind whose parent is not a task: to-do
//   - task kind whose parent is a task: checklist-item, at any depth
//   - note or empty kind: note
//
// The rules are exhaustive over the four line kinds; a kind outside them is
// an internal invariant violation and fails loudly instead of dropping the
// node.
func (t *Tree) Flatten() ([]Node, error) {
	nodes := make([]Node, 0, t.Len())
	var walk func(i int) error
	walk = func(i int) error {
		if i != rootIndex {
			role, err := t.roleOf(i)
			if err != nil {
				return err
			}
			nodes = append(nodes, Node{Line: t.nodes[i].line, Role: role})
		}
		for _, child := range t.nodes[i].children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(rootIndex); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (t *Tree) roleOf(i int) (Role, error) {
	line := t.nodes[i].line
	switch line.Kind {
	case KindProject:
		if t.hasProjectAncestor(i) {
			return RoleHeading, nil
		}
		return RoleProject, nil
	case KindTask:
		if t.parentIsTask(i) {
			return RoleChecklistItem, nil
		}
		return RoleToDo, nil
	case KindNote, KindEmpty:
		return RoleNote, nil
	}
	return "", fmt.Errorf("taskpaper: line %d: unrecognized node kind %q", line.Number+1, line.Kind)
}
