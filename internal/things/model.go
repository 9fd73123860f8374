// Package things builds and serializes the Things JSON import payload from
// a parsed TaskPaper document tree.
//
// The payload schema is documented at
// https://culturedcode.com/things/support/articles/2803573/
package things

import "encoding/json"

// Item is a payload object that can appear under a project: a Heading or a
// ToDo.
type Item interface {
	item()
}

// Project is a top-level Things project. Items holds its headings and
// to-dos in document order.
type Project struct {
	Title    string
	Notes    string
	When     string
	Deadline string
	Area     string
	Tags     []string
	Items    []Item
}

// ToDo is a Things to-do with an optional checklist.
type ToDo struct {
	Title          string
	Notes          string
	When           string
	Deadline       string
	Tags           []string
	ChecklistItems []ChecklistItem
}

// Heading is a section heading inside a project. It carries a title only.
type Heading struct {
	Title string
}

// ChecklistItem is one checklist entry of a to-do.
type ChecklistItem struct {
	Title string
}

func (*ToDo) item()    {}
func (*Heading) item() {}

type envelope struct {
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

// Empty scalar attributes are omitted entirely rather than emitted as null
// or "", but the items and checklist-items containers are always present,
// even when empty.

func (p *Project) MarshalJSON() ([]byte, error) {
	attrs := struct {
		Title    string   `json:"title"`
		Notes    string   `json:"notes,omitempty"`
		When     string   `json:"when,omitempty"`
		Deadline string   `json:"deadline,omitempty"`
		Tags     []string `json:"tags,omitempty"`
		Area     string   `json:"area,omitempty"`
		Items    []Item   `json:"items"`
	}{p.Title, p.Notes, p.When, p.Deadline, p.Tags, p.Area, p.Items}
	if attrs.Items == nil {
		attrs.Items = []Item{}
	}
	return json.Marshal(envelope{Type: "project", Attributes: attrs})
}

func (t *ToDo) MarshalJSON() ([]byte, error) {
	attrs := struct {
		Title          string          `json:"title"`
		Notes          string          `json:"notes,omitempty"`
		When           string          `json:"when,omitempty"`
		Deadline       string          `json:"deadline,omitempty"`
		Tags           []string        `json:"tags,omitempty"`
		ChecklistItems []ChecklistItem `json:"checklist-items"`
	}{t.Title, t.Notes, t.When, t.Deadline, t.Tags, t.ChecklistItems}
	if attrs.ChecklistItems == nil {
		attrs.ChecklistItems = []ChecklistItem{}
	}
	return json.Marshal(envelope{Type: "to-do", Attributes: attrs})
}

func (h *Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{
		Type:       "heading",
		Attributes: struct {
			Title string `json:"title"`
		}{h.Title},
	})
}

func (c ChecklistItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{
		Type:       "checklist-item",
		Attributes: struct {
			Title string `json:"title"`
		}{c.Title},
	})
}

// addNote appends text to an object's notes, joined with a newline when
// notes already has content.
func addNote(notes *string, text string) {
	if *notes != "" {
		*notes += "\n" + text
		return
	}
	*notes = text
}

// AddNote appends a note line to the project's notes.
func (p *Project) AddNote(text string) { addNote(&p.Notes, text) }

// AddNote appends a note line to the to-do's notes.
func (t *ToDo) AddNote(text string) { addNote(&t.Notes, text) }
