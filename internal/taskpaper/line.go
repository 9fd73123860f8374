// Package taskpaper parses tab-indented TaskPaper outline documents into a
// document tree and classifies each node by its structural role.
package taskpaper

import (
	"regexp"
	"strings"
)

// Kind is the syntactic category of a line, determined from the line text
// alone without any structural context.
type Kind string

// Line kinds.
const (
	KindProject Kind = "project"
	KindTask    Kind = "task"
	KindNote    Kind = "note"
	KindEmpty   Kind = "empty"
	KindRoot    Kind = "root"
)

var (
	taskRe    = regexp.MustCompile(`^(\t*)- (.+)$`)
	projectRe = regexp.MustCompile(`^(\t*)\s*(.*\S):$`)
	noteRe    = regexp.MustCompile(`^(\t*)(.*)$`)
)

// Line is the parsed record of one document line. It is immutable once
// created.
type Line struct {
	Raw    string
	Kind   Kind
	Indent int
	Text   string
	Tags   []Tag
	Number int // 0-based position in the document
}

// ParseLine classifies one raw line of text. number is the 0-based line
// position in the document.
//
// A line starting with "- " after its indentation is a task; this is checked
// before the project pattern so that "- Task:" is never read as a project.
// A line ending in ":" is a project. Any other non-blank line is a note,
// and a blank line is empty. Every line classifies into exactly one kind,
// so there is no failure outcome.
func ParseLine(raw string, number int) Line {
	body, annotation := splitAnnotation(raw)
	tags := ParseTags(annotation)

	line := Line{Raw: raw, Tags: tags, Number: number}

	if m := taskRe.FindStringSubmatch(body); m != nil {
		line.Kind = KindTask
		line.Indent = len(m[1])
		line.Text = m[2]
		return line
	}
	if m := projectRe.FindStringSubmatch(body); m != nil && !strings.HasPrefix(m[2], "- ") {
		line.Kind = KindProject
		line.Indent = len(m[1])
		line.Text = m[2]
		return line
	}
	if strings.TrimSpace(body) == "" {
		line.Kind = KindEmpty
		return line
	}
	m := noteRe.FindStringSubmatch(body)
	line.Kind = KindNote
	line.Indent = len(m[1])
	line.Text = m[2]
	return line
}

// splitAnnotation separates the line body from the trailing tag run. The tag
// run starts at the first occurrence of " @"; the body is right-trimmed and
// the annotation keeps its leading space so tag matching sees the boundary.
func splitAnnotation(raw string) (body, annotation string) {
	i := strings.Index(raw, " @")
	if i < 0 {
		return raw, ""
	}
	return strings.TrimRight(raw[:i], " \t"), raw[i:]
}
