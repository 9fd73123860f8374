package things

import (
	"fmt"

	"github.com/villert/popthings/internal/apperr"
	"github.com/villert/popthings/internal/dates"
	"github.com/villert/popthings/internal/taskpaper"
)

// specialTags maps template tag names with date semantics to their Things
// attribute names. All other tag names pass through as plain labels with
// their values discarded.
var specialTags = map[string]string{
	"due":   "deadline",
	"start": "when",
}

// noteTarget is an object whose notes can accumulate free text: a Project
// or a ToDo.
type noteTarget interface {
	AddNote(text string)
}

// FromTree assembles the Things projects described by a document tree.
//
// The assembler folds over the flattened node sequence carrying the current
// project and the last note-capable object. A heading, to-do, checklist
// item, or note that appears before any valid container exists is a
// structural error that aborts the whole conversion; nothing is silently
// dropped.
func FromTree(tree *taskpaper.Tree) ([]*Project, error) {
	nodes, err := tree.Flatten()
	if err != nil {
		return nil, err
	}

	var projects []*Project
	var current *Project
	var lastNotes noteTarget

	for _, n := range nodes {
		switch n.Role {
		case taskpaper.RoleProject:
			when, deadline, tags := splitTags(n.Line.Tags)
			p := &Project{
				Title:    n.Line.Text,
				When:     when,
				Deadline: deadline,
				Tags:     tags,
				Items:    []Item{},
			}
			projects = append(projects, p)
			current = p
			lastNotes = p

		case taskpaper.RoleHeading:
			if current == nil {
				return nil, structuralErr(n, "heading before any project")
			}
			current.Items = append(current.Items, &Heading{Title: n.Line.Text})

		case taskpaper.RoleToDo:
			if current == nil {
				return nil, structuralErr(n, "to-do before any project")
			}
			when, deadline, tags := splitTags(n.Line.Tags)
			td := &ToDo{
				Title:          n.Line.Text,
				When:           when,
				Deadline:       deadline,
				Tags:           tags,
				ChecklistItems: []ChecklistItem{},
			}
			current.Items = append(current.Items, td)
			lastNotes = td

		case taskpaper.RoleChecklistItem:
			td := lastToDo(current)
			if td == nil {
				return nil, structuralErr(n, "checklist item without a to-do")
			}
			td.ChecklistItems = append(td.ChecklistItems, ChecklistItem{Title: n.Line.Text})

		case taskpaper.RoleNote:
			if lastNotes == nil {
				return nil, structuralErr(n, "note before any project")
			}
			lastNotes.AddNote(n.Line.Text)

		default:
			return nil, fmt.Errorf("things: line %d: unhandled role %q", n.Line.Number+1, n.Role)
		}
	}
	return projects, nil
}

func structuralErr(n taskpaper.Node, msg string) error {
	return fmt.Errorf("things: line %d: %s: %w", n.Line.Number+1, msg, apperr.ErrStructure)
}

// lastToDo returns the most recently appended to-do of the project, or nil.
// Checklist items attach here regardless of their indent depth.
func lastToDo(p *Project) *ToDo {
	if p == nil || len(p.Items) == 0 {
		return nil
	}
	td, ok := p.Items[len(p.Items)-1].(*ToDo)
	if !ok {
		return nil
	}
	return td
}

// splitTags resolves the special date tags and collects the remaining tag
// names. Duplicate special tags keep the last occurrence; a valueless
// special tag leaves the attribute unset.
func splitTags(tags []taskpaper.Tag) (when, deadline string, names []string) {
	for _, tag := range tags {
		attr, special := specialTags[tag.Name]
		if !special {
			names = append(names, tag.Name)
			continue
		}
		if !tag.HasValue {
			continue
		}
		resolved := dates.Resolve(tag.Value)
		switch attr {
		case "when":
			when = resolved
		case "deadline":
			deadline = resolved
		}
	}
	return when, deadline, names
}
